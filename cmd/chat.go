package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aps270195/cv-assistant/internal/chat"
	"github.com/aps270195/cv-assistant/internal/input"
	"github.com/aps270195/cv-assistant/internal/logger"
	"github.com/aps270195/cv-assistant/internal/prompts"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptAsk     = "Ask a question"
	PromptQuick   = "Quick prompts"
	PromptRecent  = "Recent queries"
	PromptJobFit  = "Job fit analysis"
	PromptExit    = "Exit"
	PromptBack    = "back"
	promptGoodbye = "Bye! Feel free to come back with more questions about Aditya."
)

var errExit = errors.New("exit requested")

var menu = promptui.Select{
	Label: "What would you like to do?",
	Items: []string{PromptAsk, PromptQuick, PromptRecent, PromptJobFit, PromptExit},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session about the CV",
	Run: func(cmd *cobra.Command, _ []string) {
		runChat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().Bool("no-delay", false, "answer immediately, without the short thinking pause")
}

// runChat is the main interactive loop of the assistant.
func runChat(cmd *cobra.Command) {
	ctx := context.Background()

	log0, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		log0.Fatal("getting a config", zap.Error(err))
	}

	record := loadRecord(config, log0)

	historySize := 0
	if config.Chat != nil {
		historySize = config.Chat.HistorySize
	}

	session := chat.NewSession(record, log0, historySize)

	delay := chat.ThinkingDelay
	if cmd.Flag("no-delay").Value.String() == "true" {
		delay = 0
	}

	log0.Info("starting the cv assistant", zap.String("version", version), zap.String("cv_name", record.Name))
	fmt.Printf("What do you want to know about %s?\n\n", record.Name)

	for {
		_, action, err := menu.Run()
		if err != nil {
			log0.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, session, delay, log0); err != nil {
			if errors.Is(err, errExit) {
				fmt.Println(promptGoodbye)
				return
			}
			log0.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(ctx context.Context, action string, session *chat.Session, delay time.Duration, log0 *zap.Logger) error {
	switch action {
	case PromptAsk:
		return askInSession(ctx, session, delay)
	case PromptQuick:
		return quickPrompt(ctx, session, delay)
	case PromptRecent:
		return replayRecent(ctx, session, delay)
	case PromptJobFit:
		return analyzeJob(session)
	case PromptExit:
		log0.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func askInSession(ctx context.Context, session *chat.Session, delay time.Duration) error {
	question := promptui.Prompt{Label: "You"}

	text, err := question.Run()
	if err != nil {
		return err
	}

	return respond(ctx, session, text, delay)
}

func quickPrompt(ctx context.Context, session *chat.Session, delay time.Duration) error {
	items := make([]string, 0, len(prompts.Catalog)+1)
	for _, p := range prompts.Catalog {
		items = append(items, p.Label)
	}

	selection := promptui.Select{
		Label: "Choose a topic and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := selection.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	for _, p := range prompts.Catalog {
		if p.Label != selected {
			continue
		}

		prompt, ok := session.QuickPrompt(p.ID)
		if !ok {
			return fmt.Errorf("there is no such quick prompt id %s", p.ID)
		}

		fmt.Printf("\nYou: %s\n\n", prompt.Query)
		if err := chat.Think(ctx, delay); err != nil {
			return err
		}
		fmt.Println(prompt.Response)
		fmt.Println()
		return nil
	}

	return fmt.Errorf("invalid quick prompt selection: %s", selected)
}

func replayRecent(ctx context.Context, session *chat.Session, delay time.Duration) error {
	recent := session.Recent()
	if len(recent) == 0 {
		fmt.Println("No recent queries yet.")
		return nil
	}

	selection := promptui.Select{
		Label: "Recent queries",
		Items: append(recent, PromptBack),
	}

	_, selected, err := selection.Run()
	if err != nil {
		return err
	}

	if selected == PromptBack {
		return nil
	}

	return respond(ctx, session, selected, delay)
}

func respond(ctx context.Context, session *chat.Session, text string, delay time.Duration) error {
	answer := session.Respond(text)

	if err := chat.Think(ctx, delay); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(answer)
	fmt.Println()
	return nil
}

func analyzeJob(session *chat.Session) error {
	question := promptui.Prompt{Label: "Paste the job description (or a path to a file with it)"}

	text, err := question.Run()
	if err != nil {
		return err
	}

	report, err := jobFitReport(session, text)
	if err != nil {
		return err
	}
	if report == "" {
		fmt.Println("Nothing to analyze. Paste a job description or a path to a file with it.")
		return nil
	}

	fmt.Println()
	fmt.Println(report)
	fmt.Println()
	return nil
}

// jobFitReport resolves the pasted text and runs the analysis. An empty paste
// yields an empty report so the chat loop simply continues. A short line that
// points at an existing file is treated as a file path, anything else as the
// description itself.
func jobFitReport(session *chat.Session, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	description, err := input.Load(input.Source{Name: "job description", Value: text, File: fileIfExists(text)})
	if err != nil {
		return "", fmt.Errorf("loading job description: %w", err)
	}

	return session.AnalyzeJobFit(description), nil
}

func fileIfExists(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.ContainsAny(trimmed, " \n") {
		return ""
	}
	if _, err := os.Stat(trimmed); err != nil {
		return ""
	}
	return trimmed
}
