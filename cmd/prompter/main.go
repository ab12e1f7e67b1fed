package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/prompter/cmd"
	"github.com/mutagen-io/prompter/pkg/configuration"
	"github.com/mutagen-io/prompter/pkg/prompting"
)

// runSample runs the introductory sample program using the specified prompter,
// printing its conclusion to the specified output.
func runSample(prompter *prompting.Prompter, output io.Writer) error {
	// Ask the questions.
	age, err := prompter.PromptForInt("How old are you? ")
	if err != nil {
		return err
	}
	year, err := prompter.PromptForInt("What year were you born? ")
	if err != nil {
		return err
	}

	// Print the conclusion.
	_, err = fmt.Fprintf(output, "Then, we must be in the year %d or %d\n", age+year, age+year+1)
	return err
}

// rootMain is the entry point for the root command.
func rootMain(_ *cobra.Command, _ []string) error {
	// Load configuration.
	settings, err := loadConfiguration()
	if err != nil {
		return err
	}

	// Create the prompter. The sample always reads standard input as a stream.
	prompter, err := newPrompter(settings, os.Stdout, false)
	if err != nil {
		return err
	}

	// Run the sample.
	return runSample(prompter, os.Stdout)
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:   "prompter",
	Short: "prompter asks for your age and birth year and tells you what year it is",
	Long: `prompter demonstrates retry-until-valid prompting. Run without a command, it
asks two questions and prints a conclusion. Use "prompter ask" to prompt for a
single typed value from a shell script.`,
	Args:         cmd.DisallowArguments,
	Run:          cmd.Mainify(rootMain),
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configurationFile is the path of the YAML configuration file. If empty,
	// the default path is used.
	configurationFile string
	// environmentFile is the path of a dotenv file to load.
	environmentFile string
	// errorMessage overrides the error message shown after invalid input.
	errorMessage string
	// encoding overrides the input text encoding.
	encoding string
	// logLevel overrides the log level.
	logLevel string
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. The sample is designed to be launched
	// by double-clicking as well as from a console.
	cobra.MousetrapHelpText = ""

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Wire up configuration flags, which are shared with subcommands.
	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.SortFlags = false
	persistentFlags.StringVarP(&rootConfiguration.errorMessage, "error-message", "e", "", "Specify the message shown after invalid input")
	persistentFlags.StringVar(&rootConfiguration.encoding, "encoding", "", "Specify the text encoding of standard input (e.g. utf-8, iso-8859-1)")
	persistentFlags.StringVarP(&rootConfiguration.configurationFile, "configuration-file", "c", "", "Specify a YAML configuration file (defaults to ~/"+configuration.ConfigurationName+")")
	persistentFlags.StringVar(&rootConfiguration.environmentFile, "environment-file", "", "Specify a dotenv file with PROMPTER_* variables")
	persistentFlags.StringVar(&rootConfiguration.logLevel, "log-level", "", "Specify the log level (disabled|error|warn|info|debug|trace)")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		askCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Check if a Windows terminal compatibility fix is required.
	if !cmd.PerformingShellCompletion {
		cmd.HandleTerminalCompatibility()
	}

	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
