// cmd/pharmacy/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ammerola/pharmacy-inventory/internal/adapters/jsonfile"
	"github.com/ammerola/pharmacy-inventory/internal/adapters/spreadsheet"
	"github.com/ammerola/pharmacy-inventory/internal/core/services"
	"github.com/ammerola/pharmacy-inventory/internal/handlers"
	"github.com/ammerola/pharmacy-inventory/internal/pkg/config"
	"github.com/ammerola/pharmacy-inventory/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	dataFile := flag.String("data", "", "Path to the JSON data file (overrides PHARMACY_DATA_FILE)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pharmacy %s (built %s, %s)\n", Version, BuildTime, GoVersion)
		return
	}

	// Bootstrap logger until configuration is loaded
	bootstrap, _ := logger.NewLogger(&logger.LogConfig{Level: "warn", Format: "text", Output: "stderr"})

	cfg, err := config.Load(bootstrap.Logger)
	if err != nil {
		bootstrap.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.Storage.DataFile = *dataFile
	}

	log, err := logger.SetupLogger(&logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		Output:         cfg.App.LogOutput,
		Color:          cfg.Form.Color,
		ServiceName:    cfg.App.Name,
		ServiceVersion: Version,
		Environment:    cfg.App.Environment,
	})
	if err != nil {
		bootstrap.Warn("log output unavailable, logging disabled",
			slog.String("output", cfg.App.LogOutput),
			slog.String("error", err.Error()))
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, sessionID := logger.NewSessionContext(ctx)
	ctx = logger.WithDataFile(ctx, cfg.Storage.DataFile)

	log.InfoContext(ctx, "starting pharmacy inventory form",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("session_id", sessionID),
	)

	if err := run(ctx, cfg, log.Logger); err != nil {
		log.ErrorContext(ctx, "form session failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.InfoContext(ctx, "form session ended")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store := jsonfile.NewStore(nil, &jsonfile.Config{
		Path:        cfg.Storage.DataFile,
		AtomicWrite: cfg.Storage.AtomicWrite,
	}, log)

	// Create the data file up front so a bad path is reported before the
	// first prompt.
	if _, err := store.Load(ctx); err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}

	controller := services.NewFormController(store, log)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptFor(cfg.Form.Color),
		HistoryFile:       cfg.Form.HistoryFile,
		AutoComplete:      handlers.NewCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer rl.Close()

	go func() {
		<-ctx.Done()
		rl.Close()
	}()

	form := handlers.NewFormHandler(controller, rl.Stdout(), handlers.FormHandlerConfig{
		Exporter:   spreadsheet.NewWorkbook(log),
		ExportPath: cfg.ExportPath,
		Color:      cfg.Form.Color,
	}, log)

	return handlers.NewTerminal(form, rl, rl.Stdout()).Run(ctx)
}

func promptFor(useColor bool) string {
	if !useColor {
		return "pharmacy> "
	}
	c := color.New(color.FgCyan, color.Bold)
	c.EnableColor()
	return c.Sprint("pharmacy") + "> "
}
