package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testreport.dev/pkg/testreport/internal/domain"
)

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [inputs...]",
		Short: "Print a per-suite table of test results",
		Long:  summaryLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Summary(cmd.Context(), domain.SummaryArgs{
				LoadArgs: loadArgs(args),
				Title:    viper.GetString(reportTitleKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
