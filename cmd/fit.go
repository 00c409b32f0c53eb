package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/aps270195/cv-assistant/internal/input"
	"github.com/aps270195/cv-assistant/internal/jobfit"
	"github.com/aps270195/cv-assistant/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var fitCmd = &cobra.Command{
	Use:   "fit [job description]",
	Short: "Analyze how well the CV fits a job description",
	Long: "Analyzes a pasted job description against the CV with a deterministic keyword scan and prints a " +
		"markdown fit report. The description can be given inline, via --file, or piped through --file -.",
	Run: func(cmd *cobra.Command, args []string) {
		fit(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(fitCmd)

	fitCmd.Flags().StringP("file", "f", "", "file with the job description ('-' reads stdin)")
}

func fit(cmd *cobra.Command, args []string) {
	log0, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log0.Fatal("getting a config", zap.Error(err))
	}

	description, err := input.Load(input.Source{
		Name:  "job description",
		Value: strings.Join(args, " "),
		File:  cmd.Flag("file").Value.String(),
	})
	if err != nil {
		log0.Fatal(
			"loading job description",
			zap.Error(err),
			zap.String("hint", "pass the description inline, via --file, or pipe it with --file -"),
		)
	}

	record := loadRecord(config, log0)

	keywords := jobfit.ExtractKeywords(description)
	log0.Debug("extracted job description keywords",
		zap.Int("count", len(keywords)),
		zap.Strings("keywords", keywords),
	)

	fmt.Println(jobfit.Analyze(description, record))
}
