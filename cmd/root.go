// Package cmd provides the root command and CLI setup for testreport.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"testreport.dev/pkg/testreport/internal/adapter"
	"testreport.dev/pkg/testreport/internal/controller"
	"testreport.dev/pkg/testreport/internal/domain"
	m "testreport.dev/pkg/testreport/internal/model"
)

var fsAdapter adapter.ReportFSAdapter
var inputResolver adapter.InputResolver
var resultLoader adapter.ResultLoader
var ui controller.UI

// workflow is built on first use, once flags and config are parsed, so the
// emitter sees the final asset directory. Tests replace it with a mock.
var workflow domain.Workflow

// excludePatterns is a root-level flag that filters input files for every command.
var excludePatterns []string

// parallelFlag bounds the number of input files decoded at once.
var parallelFlag int

// titleFlag is the heading of the report, summary and browser.
var titleFlag string

var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalReportFSAdapter()
	inputResolver = adapter.NewLocalInputResolver()
	resultLoader = adapter.NewLocalResultLoader(fsAdapter)
}

const inputPatternsHelp = `Inputs may be files, directories or doublestar globs:
  - results.xml          a single JUnit report
  - ./reports            every result file below a directory
  - "build/**/*.json"    go test -json streams and result documents
With no inputs the current directory is scanned.`

const rootLongDescription = `testreport renders test results (JUnit XML, go test -json streams or
YAML/JSON result documents) into a single HTML report with summary counts,
a pie chart and collapsible per-case detail.

` + inputPatternsHelp

const renderLongDescription = `Render the given inputs into an HTML report. The css/ and js/ asset
directories the report references are written next to it.

` + inputPatternsHelp

const summaryLongDescription = `Print a per-suite table of the given inputs.

` + inputPatternsHelp

const viewLongDescription = `Browse suites and cases of the given inputs in the terminal. When
stdout is not a terminal the summary table is printed instead.

` + inputPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "testreport",
		Short:        "Render test results as an HTML report",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if workflow == nil {
				workflow = newWorkflow()
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude input files matching a doublestar glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of input files loaded in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), loadParallelKey)

	cmd.PersistentFlags().StringVarP(&titleFlag, titleFlagName, "t", defaultTitle, "report title")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(titleFlagName), reportTitleKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newWorkflow() domain.Workflow {
	emitter := adapter.NewLocalReportEmitter(fsAdapter, m.Path(viper.GetString(assetsDirKey)))

	return domain.NewWorkflow(
		inputResolver,
		resultLoader,
		emitter,
		ui,
		domain.WithGenerator(generatorName()),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// parseInputs returns the input patterns, defaulting to the current directory.
func parseInputs(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}

	inputs := make([]string, len(args))
	copy(inputs, args)

	return inputs
}

// loadArgs reads the input selection shared by every command.
func loadArgs(args []string) domain.LoadArgs {
	return domain.LoadArgs{
		Patterns: parseInputs(args),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Parallel: viper.GetInt(loadParallelKey),
	}
}
