package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wheelibin/berlinuhr/internal/berlinclock"
	"github.com/wheelibin/berlinuhr/internal/config"
	"github.com/wheelibin/berlinuhr/internal/constants"
	"github.com/wheelibin/berlinuhr/internal/scenario"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

var ErrScenariosFailed = errors.New("scenarios failed")

// App holds the CLI application state.
type App struct {
	root       *cobra.Command
	viper      *viper.Viper
	configFile string

	config    *config.Config
	logger    *log.Logger
	logFile   io.Closer
	converter *berlinclock.TimeConverter
}

func NewApp() *App {
	a := &App{viper: viper.New()}

	a.root = &cobra.Command{
		Use:   "berlinuhr",
		Short: "Show a time the way the Berlin clock does",
		Long: `berlinuhr converts HH:mm:ss times into the lamps of the Berlin clock
(Mengenlehreuhr) and runs clock scenarios written in Gherkin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default search: /etc/berlinuhr, $HOME/.config/berlinuhr, .)")
	flags.String("log-level", "info", "debug, info, warn, error or fatal")
	flags.Int("workers", constants.DefaultWorkers, "number of scenarios run at the same time")
	_ = a.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.viper.BindPFlag(config.KeyWorkers, flags.Lookup("workers"))

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.convertCmd())
	a.root.AddCommand(a.runCmd())

	return a
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.ReadConfig(a.viper, a.configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, logFile, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = logger
	a.logFile = logFile
	a.converter = berlinclock.NewTimeConverter(logger, cfg.LineSeparator)
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "berlinuhr %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert HH:mm:ss",
		Short:   "Print the lamps for a time",
		Example: "  berlinuhr convert 13:17:01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lamps, err := a.converter.ConvertTime(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lamps)
			return nil
		},
	}
}

func (a *App) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE.feature...",
		Short: "Run clock scenarios from feature files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := scenario.NewRunner(a.logger, a.converter, a.config.LineSeparator, a.config.Workers)

			failed := 0
			for _, path := range args {
				feature, err := readFeature(path)
				if err != nil {
					return err
				}
				report := runner.RunFeature(feature)
				printReport(cmd.OutOrStdout(), path, report)
				failed += len(report.Failed())
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d", ErrScenariosFailed, failed)
			}
			return nil
		},
	}
}

func readFeature(path string) (*scenario.Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening feature file: %w", err)
	}
	defer f.Close()

	feature, err := scenario.ParseFeature(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return feature, nil
}

// SetArgs replaces os.Args for the next Execute, used by tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) SetOutput(stdout io.Writer, stderr io.Writer) {
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}
