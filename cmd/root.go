package cmd

import (
	"errors"
	"log"

	"github.com/aps270195/cv-assistant/internal/cv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "cv-assistant"
)

type Config struct {
	CVFile string        `mapstructure:"cv-file"`
	Chat   *ChatConfig   `mapstructure:"chat"`
	Export *ExportConfig `mapstructure:"export"`
}

type ChatConfig struct {
	HistorySize int `mapstructure:"history-size"`
}

type ExportConfig struct {
	Output string `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-assistant is a chat-style cli that answers questions about Aditya's CV and scores job descriptions against it",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("cv-file", "CV_ASSISTANT_CV_FILE"); err != nil {
		log.Fatalf("binding CV_ASSISTANT_CV_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-assistant.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The assistant works with zero configuration. Only an explicitly
	// requested config file is allowed to fail hard.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// loadRecord returns the resume record every command answers from: the
// record from the configured cv-file when set, otherwise the built-in one.
func loadRecord(config *Config, logger *zap.Logger) *cv.Record {
	if config == nil || config.CVFile == "" {
		return cv.Default()
	}

	record, err := cv.FromFile(config.CVFile)
	if err != nil {
		logger.Fatal("loading cv file", zap.Error(err), zap.String("cv_file", config.CVFile))
	}

	logger.Info("loaded cv record from file",
		zap.String("cv_file", config.CVFile),
		zap.String("name", record.Name),
	)

	return record
}
