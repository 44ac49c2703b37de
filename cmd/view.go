package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testreport.dev/pkg/testreport/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [inputs...]",
		Short: "Browse test results in the terminal",
		Long:  viewLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				LoadArgs: loadArgs(args),
				Title:    viper.GetString(reportTitleKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
