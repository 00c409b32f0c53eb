// Package chat keeps the state of one interactive assistant session: the
// recent free-text queries and the shortcut mapping into the quick prompt
// catalog. The answering itself is delegated to the search engine.
package chat

import (
	"go.uber.org/zap"

	"github.com/aps270195/cv-assistant/internal/cv"
	"github.com/aps270195/cv-assistant/internal/jobfit"
	"github.com/aps270195/cv-assistant/internal/logger"
	"github.com/aps270195/cv-assistant/internal/prompts"
	"github.com/aps270195/cv-assistant/internal/search"
)

// DefaultHistorySize is how many recent queries a session keeps by default.
const DefaultHistorySize = 3

type Session struct {
	record      *cv.Record
	logger      *zap.Logger
	historySize int
	recent      []string
}

// NewSession creates a session over the given record. A historySize of zero
// or less falls back to the default. A nil logger is replaced with a no-op
// one.
func NewSession(record *cv.Record, log *zap.Logger, historySize int) *Session {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}

	return &Session{
		record:      record,
		logger:      logger.WithFields(log),
		historySize: historySize,
	}
}

// Respond answers a free-text message. Literal quick-prompt phrases get the
// canned response; everything else goes through the scoring engine. The query
// is remembered either way.
func (s *Session) Respond(query string) string {
	s.remember(query)

	if prompt, ok := prompts.MatchLiteral(query); ok {
		logger.WithAnswerFields(s.logger, "quick_prompt", prompt.ID).
			Debug("answering from quick prompt catalog")
		return prompt.Response
	}

	logger.WithAnswerFields(s.logger, "search", "").Debug("answering from search engine",
		zap.String("query_preview", logger.TruncateForLog(query, 80)),
	)

	return search.Answer(query, s.record)
}

// QuickPrompt answers directly from the catalog, returning the canonical
// query for display along with the canned response.
func (s *Session) QuickPrompt(id string) (prompts.QuickPrompt, bool) {
	prompt, ok := prompts.ByID(id)
	if !ok {
		s.logger.Debug("quick prompt not found", zap.String(logger.FieldPromptID, id))
	}
	return prompt, ok
}

// AnalyzeJobFit scores a job description against the session's record and
// returns the rendered fit report.
func (s *Session) AnalyzeJobFit(description string) string {
	s.logger.Debug("analyzing job fit",
		zap.String("description_preview", logger.TruncateForLog(description, 80)),
	)
	return jobfit.Analyze(description, s.record)
}

// Recent returns the remembered queries, newest first.
func (s *Session) Recent() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *Session) remember(query string) {
	s.recent = append([]string{query}, s.recent...)
	if len(s.recent) > s.historySize {
		s.recent = s.recent[:s.historySize]
	}
}
