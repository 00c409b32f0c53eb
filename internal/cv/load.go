package cv

import (
	"fmt"

	"github.com/spf13/viper"
)

// FromFile loads a resume record from a YAML file and validates it. The
// loader keeps its own viper instance so it never clashes with the CLI
// configuration.
func FromFile(path string) (*Record, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading cv file %q: %w", path, err)
	}

	var record Record
	if err := v.Unmarshal(&record); err != nil {
		return nil, fmt.Errorf("decoding cv file %q: %w", path, err)
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("validating cv file %q: %w", path, err)
	}

	return &record, nil
}
