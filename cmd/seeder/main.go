// cmd/seeder/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/ammerola/pharmacy-inventory/internal/adapters/jsonfile"
	"github.com/ammerola/pharmacy-inventory/internal/adapters/spreadsheet"
	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/core/ports"
	"github.com/ammerola/pharmacy-inventory/internal/core/services"
	"github.com/ammerola/pharmacy-inventory/internal/pkg/config"
	"github.com/ammerola/pharmacy-inventory/internal/pkg/logger"
)

// sampleItems are added when no workbook is given
var sampleItems = []domain.Fields{
	{Name: "Aspirin", Price: "5.50", Quantity: "120", Category: "Pain Relief", Discount: "0", ExpiryDate: "2026-01-01"},
	{Name: "Ibuprofen 200mg", Price: "7.25", Quantity: "80", Category: "Pain Relief", Discount: "5", ExpiryDate: "2026-08-15"},
	{Name: "Paracetamol 500mg", Price: "3.99", Quantity: "200", Category: "Pain Relief", Discount: "0", ExpiryDate: "2027-02-28"},
	{Name: "Amoxicillin 250mg", Price: "12.75", Quantity: "40", Category: "Antibiotic", Discount: "0", ExpiryDate: "2026-05-31"},
	{Name: "Cetirizine 10mg", Price: "6.40", Quantity: "65", Category: "Allergy", Discount: "10", ExpiryDate: "2027-11-30"},
	{Name: "Loratadine 10mg", Price: "8.10", Quantity: "50", Category: "Allergy", Discount: "0", ExpiryDate: "2027-04-30"},
	{Name: "Vitamin C 1000mg", Price: "9.99", Quantity: "150", Category: "Vitamin", Discount: "15", ExpiryDate: "2028-01-31"},
	{Name: "Vitamin D3", Price: "11.49", Quantity: "90", Category: "Vitamin", Discount: "0", ExpiryDate: "2027-09-30"},
	{Name: "Omeprazole 20mg", Price: "14.20", Quantity: "30", Category: "Digestive", Discount: "5", ExpiryDate: "2026-12-31"},
	{Name: "Saline Nasal Spray", Price: "4.75", Quantity: "45", Category: "Cold & Flu", Discount: "0", ExpiryDate: "2026-10-31"},
}

// result summarizes a seeding run
type result struct {
	Added   int
	Skipped []skippedRow
}

type skippedRow struct {
	Row    int
	Name   string
	Reason string
}

func main() {
	dataFile := flag.String("data", "", "Path to the JSON data file (overrides PHARMACY_DATA_FILE)")
	xlsxPath := flag.String("xlsx", "", "Workbook to import instead of the built-in samples")
	reset := flag.Bool("reset", false, "Empty the data file before seeding")
	flag.Parse()

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
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Output:      "stderr",
		ServiceName: "pharmacy-seeder",
		Environment: cfg.App.Environment,
	})
	if err != nil {
		bootstrap.Warn("log output unavailable, logging disabled",
			slog.String("output", "stderr"),
			slog.String("error", err.Error()))
	}
	defer log.Close()

	ctx, _ := logger.NewSessionContext(context.Background())
	ctx = logger.WithDataFile(ctx, cfg.Storage.DataFile)

	store := jsonfile.NewStore(nil, &jsonfile.Config{
		Path:        cfg.Storage.DataFile,
		AtomicWrite: cfg.Storage.AtomicWrite,
	}, log.Logger)

	if *reset {
		if err := store.Save(ctx, nil); err != nil {
			log.ErrorContext(ctx, "failed to reset data file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	rows := sampleItems
	if *xlsxPath != "" {
		rows, err = loadWorkbook(ctx, spreadsheet.NewWorkbook(log.Logger), *xlsxPath)
		if err != nil {
			log.ErrorContext(ctx, "failed to import workbook", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	res, err := seed(ctx, services.NewFormController(store, log.Logger), rows)
	if err != nil {
		log.ErrorContext(ctx, "seeding aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report(res, cfg.Storage.DataFile)
}

func loadWorkbook(ctx context.Context, importer ports.RecordImporter, path string) ([]domain.Fields, error) {
	rows, err := importer.Import(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no item rows", path)
	}
	return rows, nil
}

// seed adds each row through the form controller so imported rows get the
// same validation as typed input. Invalid rows are skipped; storage
// failures abort.
func seed(ctx context.Context, form ports.FormService, rows []domain.Fields) (result, error) {
	var res result

	for i, row := range rows {
		_, err := form.Add(ctx, row)
		if err == nil {
			res.Added++
			continue
		}

		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			res.Skipped = append(res.Skipped, skippedRow{
				Row:    i + 1,
				Name:   row.Name,
				Reason: verr.Message(),
			})
			continue
		}

		return res, fmt.Errorf("row %d: %w", i+1, err)
	}

	return res, nil
}

func report(res result, path string) {
	color.New(color.FgGreen, color.Bold).Printf("Seeded %d item(s)", res.Added)
	fmt.Printf(" into %s\n", path)

	if len(res.Skipped) == 0 {
		return
	}

	warn := color.New(color.FgYellow)
	warn.Printf("Skipped %d invalid row(s):\n", len(res.Skipped))
	for _, s := range res.Skipped {
		fmt.Printf("  row %d (%q): %s\n", s.Row, s.Name, s.Reason)
	}
}
