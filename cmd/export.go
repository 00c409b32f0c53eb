package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/aps270195/cv-assistant/internal/cv"
	"github.com/aps270195/cv-assistant/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the CV as a plain-text document",
	Run: func(cmd *cobra.Command, _ []string) {
		export(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "", "output file ('-' writes to stdout)")
}

func export(cmd *cobra.Command) {
	log0, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log0.Fatal("getting a config", zap.Error(err))
	}

	record := loadRecord(config, log0)

	output := cmd.Flag("output").Value.String()
	if output == "" && config.Export != nil {
		output = config.Export.Output
	}
	if output == "" {
		output = cv.DefaultExportFilename
	}

	content := cv.RenderText(record) + "\n"

	if output == "-" {
		fmt.Print(content)
		return
	}

	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		log0.Fatal("writing cv export", zap.Error(err), zap.String("filename", output))
	}

	log0.Info("exported cv", zap.String("filename", output), zap.Int("bytes", len(content)))
}
