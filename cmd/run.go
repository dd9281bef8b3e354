package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/export"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/profile"
)

const (
	PromptYes         = "Yes, ask me more questions"
	PromptSkip        = "Skip and generate recommendations"
	PromptShowAgain   = "Show recommendations again"
	PromptDumpToFile  = "Dump report to file"
	PromptExportExcel = "Export report to Excel"
	PromptStartOver   = "Start over"
	PromptExit        = "Exit"
)

var errExit = errors.New("exit requested")

var actions = []string{PromptShowAgain, PromptDumpToFile, PromptExportExcel, PromptStartOver, PromptExit}

// asker is the part of the terminal UI the questionnaire needs.
type asker interface {
	Select(label string, items []string) (string, error)
	Prompt(label string) (string, error)
}

type promptAsker struct{}

func (promptAsker) Select(label string, items []string) (string, error) {
	s := promptui.Select{Label: label, Items: items, Size: len(items)}
	_, choice, err := s.Run()
	return choice, err
}

func (promptAsker) Prompt(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return profile.ErrEmptyAnswer
			}
			return nil
		},
	}
	return p.Run()
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fill in the questionnaire and get recommendations",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the interactive command for the cli.
func run() {
	ctx := context.Background()

	a := setup(ctx)

	a.logger.Info("starting the questionnaire", zap.String("version", version))

	if err := interact(ctx, a, promptAsker{}, os.Stdout); err != nil {
		if errors.Is(err, errExit) || errors.Is(err, promptui.ErrInterrupt) {
			return
		}
		a.logger.Fatal("exiting", zap.Error(err))
	}
}

// setup builds the logger and the application shared by all commands that recommend.
func setup(ctx context.Context) *application {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	a, err := newApplication(ctx, config, zl)
	if err != nil {
		zl.Fatal("preparing recommendations", zap.Error(err))
	}
	return a
}

func interact(ctx context.Context, a *application, ask asker, out io.Writer) error {
	for {
		p, err := collectProfile(ask, profile.NewSession(nil), a.logger)
		if err != nil {
			return err
		}

		report := a.recommend(ctx, p)
		render(out, report)

		err = actionLoop(ask, a, report, out)
		if errors.Is(err, errStartOver) {
			a.logger.Info("starting over")
			continue
		}
		return err
	}
}

var errStartOver = errors.New("start over requested")

// collectProfile walks the session from the core form to a finalized profile.
func collectProfile(ask asker, session *profile.Session, log *zap.Logger) (*profile.Profile, error) {
	for {
		in, err := askInput(ask)
		if err != nil {
			return nil, err
		}

		err = session.SaveProfile(in)
		var invalid *profile.ValidationError
		if errors.As(err, &invalid) {
			log.Warn("please fill in all the fields", zap.Strings("missing", invalid.Fields))
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	log.Info("profile saved")

	choice, err := ask.Select("For a more accurate analysis, do you wish to provide more information?", []string{PromptYes, PromptSkip})
	if err != nil {
		return nil, err
	}

	if choice == PromptSkip {
		if err := session.Skip(); err != nil {
			return nil, err
		}
		return session.Profile()
	}

	if err := session.AskMore(); err != nil {
		return nil, err
	}

	for {
		index, question, ok := session.Current()
		if !ok {
			break
		}
		_, total := session.Progress()

		answer, err := ask.Prompt(fmt.Sprintf("Question %d/%d: %s", index+1, total, question))
		if err != nil {
			return nil, err
		}
		if err := session.Answer(answer); err != nil {
			if errors.Is(err, profile.ErrEmptyAnswer) {
				log.Warn("please enter an answer before submitting")
				continue
			}
			return nil, err
		}
	}
	log.Info("all questions have been answered")

	return session.Profile()
}

func askInput(ask asker) (profile.Input, error) {
	var in profile.Input

	education, err := ask.Select("Educational Background", profile.EducationLabels())
	if err != nil {
		return in, err
	}
	in.Education = education

	fields := []struct {
		label string
		dst   *string
	}{
		{"Interests (e.g., AI, Data Science, Engineering)", &in.Interests},
		{"Technical Skills (e.g., Python, SQL, Machine Learning)", &in.TechSkills},
		{"Soft Skills (e.g., Communication, Teamwork)", &in.SoftSkills},
	}
	for _, f := range fields {
		value, err := ask.Prompt(f.label)
		if err != nil {
			return in, err
		}
		*f.dst = value
	}

	return in, nil
}

func actionLoop(ask asker, a *application, report *export.Report, out io.Writer) error {
	for {
		action, err := ask.Select("What next?", actions)
		if err != nil {
			return err
		}

		if err := handleAction(action, a, report, out); err != nil {
			return err
		}
	}
}

func handleAction(action string, a *application, report *export.Report, out io.Writer) error {
	switch action {
	case PromptShowAgain:
		render(out, report)
		return nil
	case PromptDumpToFile:
		filename, err := report.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		a.logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExportExcel:
		filename, err := report.ToExcel(excelPath(a.config.Export.Dir, report.SessionID))
		if err != nil {
			return fmt.Errorf("export report to excel: %w", err)
		}
		a.logger.Info("exported report to excel", zap.String("filename", filename))
		return nil
	case PromptStartOver:
		return errStartOver
	case PromptExit:
		a.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func excelPath(dir, sessionID string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", app, sessionID))
}
