package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradecoach/internal/catalog"
	"tradecoach/internal/config"
	"tradecoach/internal/generator"
	"tradecoach/internal/logging"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2024-03-01"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Catalog *catalog.Catalog
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "tradecoach",
		Short: "Trading psychology coach - practice reading a trader's emotions",
		Long: `tradecoach generates synthetic trading sessions in which a simulated trader
acts under an emotional state, then scores your read of that state.

Generate a scenario, study the decisions, and submit an assessment of the
dominant emotion, the behaviors it caused, and your advice to the trader.

Use 'tradecoach coach' for an interactive round.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dir, _ := cmd.Flags().GetString("config"); dir != "" && dir != app.Config.Dir {
				cfg, err := config.Load(dir)
				if err != nil {
					return err
				}
				app.Config = cfg
				app.Logger = logging.NewLoggerWithConfig(LogConfig(cfg))
			}

			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return app.loadCatalog()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/tradecoach)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addScenarioCommands(rootCmd, app)
	addCoachCommands(rootCmd, app)
	addCatalogCommands(rootCmd, app)
	addSimulateCommands(rootCmd, app)
	addServeCommands(rootCmd, app)

	return rootCmd
}

// LogConfig maps the logging section of cfg onto a logger configuration.
func LogConfig(cfg *config.Config) logging.LogConfig {
	return logging.LogConfig{
		Level:      cfg.Logging.Level,
		Console:    cfg.Logging.Console,
		File:       cfg.Logging.File,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	}
}

// loadCatalog reads the configured catalog file, or the built-in one.
func (app *App) loadCatalog() error {
	if app.Catalog != nil {
		return nil
	}
	path := app.Config.Generator.CatalogFile
	if path == "" {
		app.Catalog = catalog.Default()
		return nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	app.Logger.Debug().Str("path", path).Int("traders", len(c.Traders)).Int("scenarios", len(c.Scenarios)).Msg("Catalog loaded")
	app.Catalog = c
	return nil
}

// generatorOptions builds generator options from configuration. A non-zero
// seed overrides the configured one.
func (app *App) generatorOptions(seed uint64) generator.Options {
	g := app.Config.Generator
	if seed == 0 {
		seed = g.Seed
	}
	opts := generator.DefaultOptions()
	opts.Catalog = app.Catalog
	opts.Rand = generator.NewRand(seed)
	opts.Logger = app.Logger
	opts.RandomDecisions = generator.Range{Min: g.RandomMinDecisions, Max: g.RandomMaxDecisions}
	opts.CustomDecisions = generator.Range{Min: g.CustomMinDecisions, Max: g.CustomMaxDecisions}
	opts.SecondarySessionProbability = g.SecondarySessionProbability
	return opts
}

// output returns an Output that honours the configured colour setting.
func (app *App) output(cmd *cobra.Command) *Output {
	return NewOutput(cmd).WithColor(app.Config.UI.ColorEnabled)
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("tradecoach v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Run: func(cmd *cobra.Command, args []string) {
			output := app.output(cmd)
			path := config.Path(app.Config.Dir)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": path})
			} else {
				output.Println(path)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.output(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if err := app.Catalog.Validate(); err != nil {
				output.Error("Catalog validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	g := cfg.Generator
	output.Bold("Generator")
	if g.Seed == 0 {
		output.Printf("  Seed:              %s\n", output.DimText("random"))
	} else {
		output.Printf("  Seed:              %d\n", g.Seed)
	}
	if g.CatalogFile == "" {
		output.Printf("  Catalog:           %s\n", output.DimText("built-in"))
	} else {
		output.Printf("  Catalog:           %s\n", g.CatalogFile)
	}
	output.Printf("  Random decisions:  %d-%d\n", g.RandomMinDecisions, g.RandomMaxDecisions)
	output.Printf("  Custom decisions:  %d-%d\n", g.CustomMinDecisions, g.CustomMaxDecisions)
	output.Printf("  Second session:    %s\n", FormatRate(g.SecondarySessionProbability))
	output.Println()

	output.Bold("Server")
	output.Printf("  Address:           %s\n", cfg.Server.Addr)
	output.Printf("  Mode:              %s\n", cfg.Server.Mode)
	if cfg.Server.RateLimit > 0 {
		output.Printf("  Rate limit:        %.1f/s (burst %d)\n", cfg.Server.RateLimit, cfg.Server.Burst)
	}
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:             %s\n", cfg.Logging.Level)
	output.Printf("  Console:           %v\n", cfg.Logging.Console)
	output.Printf("  File:              %v\n", cfg.Logging.File)
	if cfg.Logging.File {
		output.Printf("  File path:         %s\n", cfg.Logging.FilePath)
	}
}
