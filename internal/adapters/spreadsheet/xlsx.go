// internal/adapters/spreadsheet/xlsx.go
package spreadsheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/core/ports"
)

// SheetName is the worksheet written by Export
const SheetName = "Inventory"

// Headers are the export column titles, in column order
var Headers = []string{
	"Item Name", "Price", "Quantity", "Category", "Discount (%)", "Expiry Date", "Stock Value",
}

var hundred = decimal.NewFromInt(100)

// Workbook exports and imports the record list as xlsx
type Workbook struct {
	logger *slog.Logger
}

// Statically assert that *Workbook implements both spreadsheet ports.
var (
	_ ports.RecordExporter = (*Workbook)(nil)
	_ ports.RecordImporter = (*Workbook)(nil)
)

// NewWorkbook creates a new xlsx adapter
func NewWorkbook(logger *slog.Logger) *Workbook {
	return &Workbook{
		logger: logger.With(slog.String("component", "xlsx")),
	}
}

// Export writes one header row and one row per record to path
func (w *Workbook) Export(ctx context.Context, records []domain.Record, path string) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range Headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, record := range records {
		row := sheet.AddRow()
		row.AddCell().SetString(record.Name)
		row.AddCell().SetFloat(record.Price)
		row.AddCell().SetInt(record.Quantity)
		row.AddCell().SetString(record.Category)
		row.AddCell().SetFloat(record.Discount)
		row.AddCell().SetString(record.ExpiryDate)

		value, _ := StockValue(record).Float64()
		row.AddCell().SetFloat(value)
	}

	for i := range Headers {
		sheet.SetColWidth(i+1, i+1, 18)
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to write workbook %s: %w", path, err)
	}

	w.logger.InfoContext(ctx, "inventory exported",
		slog.String("path", path),
		slog.Int("rows", len(records)))

	return nil
}

// Import reads the first worksheet of path, skipping the header row and
// blank rows. The first six columns map to the form inputs in order.
func (w *Workbook) Import(ctx context.Context, path string) ([]domain.Fields, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no worksheets", path)
	}

	var rows []domain.Fields
	rowIdx := 0

	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		// Skip header row
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		fields := parseRow(r)
		if !fields.IsEmpty() {
			rows = append(rows, fields)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	w.logger.InfoContext(ctx, "workbook imported",
		slog.String("path", path),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// StockValue is price * quantity reduced by the discount percentage,
// rounded to cents
func StockValue(r domain.Record) decimal.Decimal {
	price := decimal.NewFromFloat(r.Price)
	quantity := decimal.NewFromInt(int64(r.Quantity))
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(r.Discount).Div(hundred))

	return price.Mul(quantity).Mul(factor).Round(2)
}

func parseRow(r *xlsx.Row) domain.Fields {
	get := func(i int) string {
		c := r.GetCell(i)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.String())
	}

	return domain.Fields{
		Name:       get(0),
		Price:      strings.TrimPrefix(get(1), "$"),
		Quantity:   get(2),
		Category:   get(3),
		Discount:   strings.TrimSuffix(get(4), "%"),
		ExpiryDate: get(5),
	}
}
