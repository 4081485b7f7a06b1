package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/bstr/foundation/core/error"
	mdwlog "github.com/msto63/bstr/foundation/core/log"
	"github.com/msto63/bstr/pkg/core/config"
	"github.com/msto63/bstr/pkg/core/logging"
)

var (
	cfgFile   string
	outputFmt string
	logLevel  string
	verbose   bool

	appConfig *config.Config
	logger    *mdwlog.Logger
	cmdTimer  *mdwlog.Timer
)

var rootCmd = &cobra.Command{
	Use:   "bstr",
	Short: "bstr - Werkzeug für Byte-Strings",
	Long: `bstr arbeitet auf Byte-Strings: Suchen, Zerlegen, Ersetzen und Trimmen
auf Byte-Ebene, UTF-8-Kodierung einzelner Zeichen und das Parsen von
Ganzzahlen in den Basen 2 bis 36.

Ein Argument "-" liest den Text von der Standardeingabe.

Konfiguration:
  --config, $BSTR_CONFIG, ./bstr.toml, ./bstr.yaml, ~/.config/bstr/config.toml

Exit-Status:
  0  Erfolg
  1  Allgemeiner Fehler
  2  Ungültige Eingabe (Parsen, Kodierung, Strings)
  3  Fehlerhafte Konfiguration`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the CLI with the process arguments and returns the exit status
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes one command line against the given streams and returns the
// exit status. Flag values from earlier runs are reset first.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	resetFlags(rootCmd)
	appConfig, logger, cmdTimer = nil, nil, nil

	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	printError(stderr, err)
	if cmdTimer != nil {
		cmdTimer.Stop()
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return 1
	}
	if logger != nil {
		logger.LogError(err)
	}
	return mdwErr.Code().ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $BSTR_CONFIG oder ./bstr.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", config.OutputText, "Ausgabeformat (text, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log-Level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setup loads the configuration, applies flag overrides and creates the logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.General.Output = outputFmt
	}
	if cmd.Flags().Changed("log-level") {
		cfg.General.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	logger = logging.FromConfig("bstr", cfg, verbose, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", logging.KV(
		"path", cfg.Path(),
		"output", cfg.General.Output,
		"base", cfg.Defaults.Base,
	))

	cmdTimer = logger.StartTimer(cmd.Name()).WithField("args", len(args))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if cmdTimer != nil {
		cmdTimer.Stop()
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.LoadFromEnv()
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// printError writes "error [CODE]: message" for structured errors and
// "error: message" otherwise
func printError(w io.Writer, err error) {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		fmt.Fprintf(w, "error [%s]: %v\n", mdwErr.Code(), err)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
