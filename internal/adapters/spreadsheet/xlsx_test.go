package spreadsheet_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/pharmacy-inventory/internal/adapters/spreadsheet"
	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/test/helpers"
)

func TestWorkbook_Export(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(helpers.CreateTempDir(t), "inventory.xlsx")
	records := helpers.CreateTestRecords(3)

	wb := spreadsheet.NewWorkbook(helpers.TestLogger())
	require.NoError(t, wb.Export(ctx, records, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, spreadsheet.SheetName, sheet.Name)
	assert.Equal(t, len(records)+1, sheet.MaxRow)

	header, err := sheet.Row(0)
	require.NoError(t, err)
	for i, title := range spreadsheet.Headers {
		assert.Equal(t, title, header.GetCell(i).String())
	}

	first, err := sheet.Row(1)
	require.NoError(t, err)
	assert.Equal(t, records[0].Name, first.GetCell(0).String())
	assert.Equal(t, records[0].ExpiryDate, first.GetCell(5).String())
}

func TestWorkbook_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(helpers.CreateTempDir(t), "roundtrip.xlsx")
	records := []domain.Record{
		helpers.CreateTestRecord(),
		helpers.CreateTestRecord(func(r *domain.Record) {
			r.Name = "Amoxicillin"
			r.Price = 12.75
			r.Quantity = 3
			r.Category = "Antibiotic"
			r.Discount = 15
			r.ExpiryDate = "2027-03-31"
		}),
	}

	wb := spreadsheet.NewWorkbook(helpers.TestLogger())
	require.NoError(t, wb.Export(ctx, records, path))

	rows, err := wb.Import(ctx, path)
	require.NoError(t, err)
	require.Len(t, rows, len(records))

	for i, row := range rows {
		parsed, err := row.Parse()
		require.NoError(t, err)
		assert.Equal(t, records[i], parsed)
	}
}

func TestWorkbook_ImportSkipsBlankRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(helpers.CreateTempDir(t), "input.xlsx")

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sheet1")
	require.NoError(t, err)

	addRow := func(values ...string) {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().SetString(v)
		}
	}
	addRow("Name", "Price", "Qty", "Category", "Discount", "Expiry")
	addRow("Aspirin", "$5.50", "10", "Pain", "5%", "2026-01-01")
	addRow("", "", "", "", "", "")
	addRow("Broken", "abc", "1", "Misc", "0", "2026-01-01")
	require.NoError(t, file.Save(path))

	rows, err := spreadsheet.NewWorkbook(helpers.TestLogger()).Import(ctx, path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, domain.Fields{
		Name:       "Aspirin",
		Price:      "5.50",
		Quantity:   "10",
		Category:   "Pain",
		Discount:   "5",
		ExpiryDate: "2026-01-01",
	}, rows[0])
	assert.Equal(t, "abc", rows[1].Price, "invalid rows are returned for validation upstream")
}

func TestWorkbook_ImportMissingFile(t *testing.T) {
	_, err := spreadsheet.NewWorkbook(helpers.TestLogger()).
		Import(context.Background(), filepath.Join(helpers.CreateTempDir(t), "absent.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}

func TestStockValue(t *testing.T) {
	tests := []struct {
		name   string
		record domain.Record
		want   string
	}{
		{
			name:   "no_discount",
			record: domain.Record{Price: 5.5, Quantity: 10},
			want:   "55",
		},
		{
			name:   "ten_percent_off",
			record: domain.Record{Price: 2.99, Quantity: 3, Discount: 10},
			want:   "8.07",
		},
		{
			name:   "discount_over_hundred_goes_negative",
			record: domain.Record{Price: 10, Quantity: 1, Discount: 150},
			want:   "-5",
		},
		{
			name:   "zero_quantity",
			record: domain.Record{Price: 10, Quantity: 0, Discount: 20},
			want:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spreadsheet.StockValue(tt.record)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Expected: %s, Got: %s", tt.want, got)
		})
	}
}
