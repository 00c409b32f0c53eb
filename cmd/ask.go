package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/aps270195/cv-assistant/internal/logger"
	"github.com/aps270195/cv-assistant/internal/search"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot question about the CV",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ask(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func ask(question string) {
	log0, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log0.Fatal("getting a config", zap.Error(err))
	}

	record := loadRecord(config, log0)

	log0.Debug("answering question",
		zap.String("query_preview", logger.TruncateForLog(question, 80)),
	)

	fmt.Println(search.Answer(question, record))
}
