// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/pharmacy-inventory/internal/adapters/jsonfile"
	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/pkg/config"
)

// TestDataFile is the data file path used by in-memory stores
const TestDataFile = "/data/pharmacy_data.json"

// TestStore bundles a JSON store with its in-memory filesystem
type TestStore struct {
	Store *jsonfile.Store
	Fs    afero.Fs
	Path  string
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestStore creates a JSON store on an in-memory filesystem, seeded
// with the given records. With no records the data file does not exist yet.
func SetupTestStore(t *testing.T, records ...domain.Record) *TestStore {
	t.Helper()

	fs := afero.NewMemMapFs()
	store := jsonfile.NewStore(fs, &jsonfile.Config{
		Path:        TestDataFile,
		AtomicWrite: true,
	}, TestLogger())

	if len(records) > 0 {
		require.NoError(t, store.Save(context.Background(), records), "Failed to seed test store")
	}

	return &TestStore{
		Store: store,
		Fs:    fs,
		Path:  TestDataFile,
	}
}

// ReadData returns the raw content of the store's data file
func (s *TestStore) ReadData(t *testing.T) string {
	t.Helper()

	data, err := afero.ReadFile(s.Fs, s.Path)
	require.NoError(t, err, "Failed to read data file")
	return string(data)
}

// WriteData replaces the raw content of the store's data file
func (s *TestStore) WriteData(t *testing.T, content string) {
	t.Helper()

	require.NoError(t, s.Fs.MkdirAll("/data", 0o755))
	require.NoError(t, afero.WriteFile(s.Fs, s.Path, []byte(content), 0o644))
}

// Records loads the current collection
func (s *TestStore) Records(t *testing.T) []domain.Record {
	t.Helper()

	records, err := s.Store.Load(context.Background())
	require.NoError(t, err, "Failed to load records")
	return records
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "pharmacy-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			LogOutput:   "stderr",
			Debug:       true,
		},
		Storage: config.StorageConfig{
			DataFile:    TestDataFile,
			AtomicWrite: true,
		},
		Form: config.FormConfig{
			ExportDir: os.TempDir(),
			Color:     false,
		},
	}
}

// CreateTestFields creates a valid set of form inputs
func CreateTestFields(overrides ...func(*domain.Fields)) domain.Fields {
	fields := domain.Fields{
		Name:       "Aspirin",
		Price:      "5.50",
		Quantity:   "10",
		Category:   "Pain",
		Discount:   "0",
		ExpiryDate: "2026-01-01",
	}

	for _, override := range overrides {
		override(&fields)
	}

	return fields
}

// CreateTestRecord creates a test record
func CreateTestRecord(overrides ...func(*domain.Record)) domain.Record {
	record := domain.Record{
		Name:       "Aspirin",
		Price:      5.5,
		Quantity:   10,
		Category:   "Pain",
		Discount:   0,
		ExpiryDate: "2026-01-01",
	}

	for _, override := range overrides {
		override(&record)
	}

	return record
}

// CreateTestRecords creates multiple distinct test records
func CreateTestRecords(count int) []domain.Record {
	records := make([]domain.Record, count)

	categories := []string{"Pain", "Antibiotic", "Vitamin", "Allergy"}

	for i := 0; i < count; i++ {
		records[i] = CreateTestRecord(func(r *domain.Record) {
			r.Name = fmt.Sprintf("Test Medicine %d", i+1)
			r.Category = categories[i%len(categories)]
			r.Price = float64(2 + i)
			r.Quantity = 10 * (i + 1)
			r.Discount = float64(i % 3 * 5)
			r.ExpiryDate = fmt.Sprintf("2027-%02d-01", i%12+1)
		})
	}

	return records
}

// CreateTempDir creates a temporary directory removed at test end
func CreateTempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "pharmacy-test-*")
	require.NoError(t, err, "Failed to create temp dir")

	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	return dir
}
