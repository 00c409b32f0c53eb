package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldSource is the structured log field key naming which path produced
	// an answer (quick_prompt or search).
	FieldSource = "answer_source"
	// FieldPromptID is the structured log field key for a quick prompt id.
	FieldPromptID = "prompt_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// AnswerFields builds the standard fields describing how an answer was
// produced. Blank values are omitted, so a search answer carries no prompt id.
func AnswerFields(source, promptID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSource, Value: source},
		StringField{Key: FieldPromptID, Value: promptID},
	)
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithAnswerFields attaches the answer provenance fields to the logger.
func WithAnswerFields(logger *zap.Logger, source, promptID string) *zap.Logger {
	return WithFields(logger, AnswerFields(source, promptID)...)
}
