package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testreport.dev/pkg/testreport/internal/domain"
	m "testreport.dev/pkg/testreport/internal/model"
)

var renderOutputFlag string
var renderDescriptionFlag string
var renderLangFlag string
var renderAssetsFlag string

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [inputs...]",
		Short: "Render test results into an HTML report",
		Long:  renderLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Render(cmd.Context(), domain.RenderArgs{
				LoadArgs:    loadArgs(args),
				Output:      m.Path(viper.GetString(outputConfigKey)),
				Title:       viper.GetString(reportTitleKey),
				Description: viper.GetString(reportDescriptionKey),
				Lang:        viper.GetString(reportLangKey),
			})
		},
	}

	configureRenderFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func configureRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&renderOutputFlag, outputFlagName, "o", defaultOutput, "path of the HTML report")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringVarP(&renderDescriptionFlag, descriptionFlagName, "d", defaultDescription, "description shown under the title")
	bindFlagToConfig(cmd.Flags().Lookup(descriptionFlagName), reportDescriptionKey)

	cmd.Flags().StringVar(&renderLangFlag, langFlagName, defaultLang, "language of the report labels (en, zh)")
	bindFlagToConfig(cmd.Flags().Lookup(langFlagName), reportLangKey)

	cmd.Flags().StringVar(&renderAssetsFlag, assetsFlagName, defaultAssetsDir, "directory holding css/ and js/ (default: built-in assets)")
	bindFlagToConfig(cmd.Flags().Lookup(assetsFlagName), assetsDirKey)
}
