// Package cmd contains all CLI commands for brandwatch.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/brandwatch/internal/config"
	"github.com/f3rmion/brandwatch/internal/source"
	"github.com/f3rmion/brandwatch/internal/tui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brandwatch",
	Short: "Brand monitoring - see how people feel about a brand",
	Long: `brandwatch looks up how often a brand is mentioned and how those
mentions split between positive, negative and neutral sentiment.

Results come from a demo source by default: every brand gets the same
built-in counts. Point --source http --endpoint at a running
'brandwatch serve' to fetch them from a backend instead.

Running 'brandwatch' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/brandwatch)")
	flags.Bool("verbose", false, "verbose output")
	flags.Duration("delay", 0, "artificial delay before a search resolves (default from config, 500ms)")
	flags.String("source", "", "result source: demo or http")
	flags.String("endpoint", "", "backend URL for the http source")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("delay", flags.Lookup("delay"))
	viper.BindPFlag("source", flags.Lookup("source"))
	viper.BindPFlag("endpoint", flags.Lookup("endpoint"))
}

// initConfig reads in .env and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: could not load .env:", err)
	}

	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("BRANDWATCH")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings loads config.yaml from the config directory and applies
// flag and environment overrides on top.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("using default config: %v", err)
		}
		cfg = config.Default()
	}

	if d := viper.GetDuration("delay"); d > 0 {
		cfg.Delay = d
	}
	if s := viper.GetString("source"); s != "" {
		cfg.Source = s
	}
	if e := viper.GetString("endpoint"); e != "" {
		cfg.Endpoint = e
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newFetcher builds the result source selected by cfg.
func newFetcher(cfg *config.Config) (source.Fetcher, error) {
	switch cfg.Source {
	case config.SourceHTTP:
		return source.NewHTTP(cfg.Endpoint)
	case config.SourceDemo:
		return source.NewDemoWith(cfg.Demo), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// setupTUILogging sends log output to a file when verbose, and
// nowhere otherwise, so it cannot corrupt the TUI.
func setupTUILogging() (io.Closer, error) {
	if !viper.GetBool("verbose") {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	dir := getConfigDir()
	if err := config.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, "brandwatch.log"), "brandwatch")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// runTUI launches the interactive TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	logFile, err := setupTUILogging()
	if err != nil {
		return err
	}
	defer logFile.Close()

	app := tui.NewApp(fetcher, cfg)
	defer app.Shutdown()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
