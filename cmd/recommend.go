package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/profile"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend jobs and courses for a profile stored in a YAML or JSON file",
	Run: func(cmd *cobra.Command, _ []string) {
		recommendFromFile(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("profile", "p", "", "profile file (.yaml, .yml or .json)")
	recommendCmd.Flags().Bool("dump", false, "also dump the report to a temporary JSON file")
	recommendCmd.Flags().Bool("excel", false, "also export the report to an Excel workbook in export.dir")
	recommendCmd.MarkFlagRequired("profile")
}

func recommendFromFile(cmd *cobra.Command) {
	ctx := context.Background()

	a := setup(ctx)

	path, _ := cmd.Flags().GetString("profile")
	p, err := loadProfile(path)
	if err != nil {
		a.logger.Fatal("loading profile", zap.String("path", path), zap.Error(err))
	}

	report := a.recommend(ctx, p)
	render(os.Stdout, report)

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		if err := handleAction(PromptDumpToFile, a, report, os.Stdout); err != nil {
			a.logger.Fatal("exiting", zap.Error(err))
		}
	}
	if excel, _ := cmd.Flags().GetBool("excel"); excel {
		if err := handleAction(PromptExportExcel, a, report, os.Stdout); err != nil {
			a.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func loadProfile(path string) (*profile.Profile, error) {
	in, err := profile.LoadInput(path)
	if err != nil {
		return nil, err
	}
	return profile.New(in)
}
