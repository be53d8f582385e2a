package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kerbaras/mangatracker/pkg/app"
	"github.com/kerbaras/mangatracker/pkg/config"
	"github.com/kerbaras/mangatracker/pkg/data"
	"github.com/kerbaras/mangatracker/pkg/integrations"
	"github.com/kerbaras/mangatracker/pkg/services"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	controller *services.LibraryController
	logFile    *os.File
)

var rootCmd = &cobra.Command{
	Use:   "mangatracker",
	Short: "A manga reading list dashboard",
	Long:  "Browse, filter and export your manga reading list from a TUI or the command line",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		if err := setupLogger(cfg, cmd == cmd.Root()); err != nil {
			return err
		}

		controller, err = buildController(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if controller != nil {
			controller.Close()
			controller = nil
		}
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(controller)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("library", "", "Seed the library from a JSON export")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warning or error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and lets explicit flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("library") {
		c.LibraryFile, _ = flags.GetString("library")
	}
	if flags.Changed("log-level") {
		c.LogLevel, _ = flags.GetString("log-level")
		if _, err := config.ParseLevel(c.LogLevel); err != nil {
			return nil, err
		}
	}
	if flags.Changed("raw-csv") {
		c.RawCSV, _ = flags.GetBool("raw-csv")
	}

	return c, nil
}

// setupLogger installs the default slog logger. The TUI owns the terminal, so
// it only logs when a log file is configured.
func setupLogger(c *config.Config, tui bool) error {
	level, err := config.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if tui {
		w = io.Discard
		if c.LogFile != "" {
			f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			logFile = f
			w = f
		}
	}

	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return nil
}

// buildController seeds the session store and wires the exporters.
func buildController(c *config.Config) (*services.LibraryController, error) {
	entries := data.DefaultEntries()
	if c.LibraryFile != "" {
		raw, err := os.ReadFile(c.LibraryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read library file: %w", err)
		}
		entries, err = integrations.ParseJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.LibraryFile, err)
		}
	}

	db, err := data.InitDuckDB("")
	if err != nil {
		return nil, err
	}
	repo := data.NewRepository(db)
	if err := repo.Seed(entries); err != nil {
		repo.Close()
		return nil, err
	}

	count, err := repo.Count()
	if err != nil {
		repo.Close()
		return nil, err
	}
	slog.Info("library loaded", slog.Int("entries", count), slog.String("source", librarySource(c)))

	return services.NewLibraryControllerWithConfig(services.ControllerConfig{
		Repository:  repo,
		DownloadDir: c.ExportDir,
		RawCSV:      c.RawCSV,
	}), nil
}

func librarySource(c *config.Config) string {
	if c.LibraryFile == "" {
		return "built-in"
	}
	return c.LibraryFile
}
