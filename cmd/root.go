package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cyberbull/startupdocs/internal/config"
	"github.com/cyberbull/startupdocs/internal/engine"
	"github.com/cyberbull/startupdocs/internal/history"
	"github.com/cyberbull/startupdocs/internal/pipeline"
	"github.com/cyberbull/startupdocs/internal/session"
	"github.com/cyberbull/startupdocs/internal/template"
)

var (
	cfgPath  string
	logLevel string

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "startupdocs",
	Short: "startupdocs generates startup business documents with an LLM",
	Long: `startupdocs turns structured form input into business documents
(business plans, funding proposals, pitch decks, ...) through a single
language-model call.

Commands:
  startupdocs generate   Generate one document from the command line
  startupdocs serve      Run the form web UI and JSON API
  startupdocs types      List document types, tones, and fields`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file; the config's logging level applies
// unless the --log flag was set explicitly.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if !rootCmd.PersistentFlags().Changed("log") && cfg.Logging.Level != "" {
		if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
			log.SetLevel(level)
		}
	}
	return cfg, nil
}

// app bundles the wired core shared by the serve and generate commands.
type app struct {
	cfg      *config.Config
	registry *template.Registry
	pipeline *pipeline.Pipeline
	sessions *session.Manager
	db       *history.DB
}

func buildApp(cfg *config.Config) (*app, error) {
	var (
		registry *template.Registry
		err      error
	)
	if cfg.Templates.Path != "" {
		registry, err = template.LoadRegistryFile(cfg.Templates.Path)
	} else {
		registry, err = template.LoadRegistry()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	adapter, err := engine.New(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine adapter: %w", err)
	}

	a := &app{cfg: cfg, registry: registry}

	var factory history.Factory
	switch cfg.History.Backend {
	case "sqlite":
		db, err := history.OpenDB(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		a.db = db
		factory = func(sessionID string) (history.Store, error) {
			return db.Session(sessionID), nil
		}
	case "memory", "":
		factory = func(string) (history.Store, error) {
			return history.NewMemory(), nil
		}
	default:
		return nil, fmt.Errorf("unknown history backend: %s", cfg.History.Backend)
	}

	a.sessions = session.NewManager(factory, cfg.Session.TTL.Std(), log)
	a.pipeline = pipeline.New(registry, adapter, config.GenerateTimeout, log)
	return a, nil
}

func (a *app) close() {
	a.sessions.Stop()
	if a.db != nil {
		_ = a.db.Close()
	}
}
