// Package input resolves free text supplied to a command either inline or
// through a file.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source describes where a piece of text comes from.
type Source struct {
	// Name is used in error messages to give more context about the text.
	Name string
	// Value is an inline text value provided via arguments or flags.
	Value string
	// File points to a file containing the text. When set it takes
	// precedence over Value. The special value "-" reads standard input.
	File string
}

// Load returns the resolved text from the provided source. When File is set
// it takes precedence over Value. The returned text is always trimmed. An
// error is returned when neither File nor Value contain usable text.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "text"
	}

	file := strings.TrimSpace(src.File)
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading %s from stdin: %w", name, err)
		}
		src.Value = string(data)
	} else if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		src.Value = string(data)
	}

	text := strings.TrimSpace(src.Value)
	if text == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not provided", name)
	}

	return text, nil
}
