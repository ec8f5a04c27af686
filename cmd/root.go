package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hagezi/controld-renamer/config"
	"github.com/hagezi/controld-renamer/controld"
	"github.com/hagezi/controld-renamer/rename"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *controld.Client
	operations *rename.Operations

	// Command flags
	dryRun bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "controld-renamer",
	Short: "A tool to prefix Control D folder names",
	Long: `controld-renamer renames the folders (groups) of one or more Control D
profiles, prepending a fixed prefix to every folder name that does not
already carry it. Folders that carry the prefix are skipped, so re-running
the tool is a no-op.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version information shown by the version flag
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "log renames without performing them")

	// Add subcommands
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Rename.DryRun = dryRun
	}

	// Create Control D client
	client, err = controld.NewClient(cfg.Token, logger)
	if err != nil {
		return fmt.Errorf("failed to create Control D client: %w", err)
	}

	operations = rename.NewOperations(client, logger)
	operations.SetPrefix(cfg.Rename.Prefix)
	operations.SetDryRun(cfg.Rename.DryRun)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
