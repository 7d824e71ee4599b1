package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"

	"github.com/ammerola/pharmacy-inventory/internal/adapters/jsonfile"
	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/core/services"
	"github.com/ammerola/pharmacy-inventory/test/helpers"
)

func newBenchStore(b *testing.B, count int) *jsonfile.Store {
	b.Helper()

	store := jsonfile.NewStore(afero.NewMemMapFs(), &jsonfile.Config{
		Path:        helpers.TestDataFile,
		AtomicWrite: true,
	}, helpers.TestLogger())

	if err := store.Save(context.Background(), helpers.CreateTestRecords(count)); err != nil {
		b.Fatalf("failed to seed store: %v", err)
	}
	return store
}

func BenchmarkStore(b *testing.B) {
	ctx := context.Background()

	for _, size := range []int{10, 100, 1000} {
		store := newBenchStore(b, size)
		records := helpers.CreateTestRecords(size)

		b.Run(fmt.Sprintf("Load/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = store.Load(ctx)
			}
		})

		b.Run(fmt.Sprintf("Save/%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = store.Save(ctx, records)
			}
		})
	}
}

func BenchmarkFormController(b *testing.B) {
	ctx := context.Background()

	b.Run("Search", func(b *testing.B) {
		form := services.NewFormController(newBenchStore(b, 500), helpers.TestLogger())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = form.Search(ctx, fmt.Sprintf("Test Medicine %d", i%500+1))
		}
	})

	b.Run("Add", func(b *testing.B) {
		form := services.NewFormController(newBenchStore(b, 100), helpers.TestLogger())
		fields := helpers.CreateTestFields()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = form.Add(ctx, fields)
		}
	})

	b.Run("SearchUpdate", func(b *testing.B) {
		form := services.NewFormController(newBenchStore(b, 100), helpers.TestLogger())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			name := fmt.Sprintf("Test Medicine %d", i%100+1)
			_, _ = form.Search(ctx, name)
			_, _ = form.Update(ctx, form.Displayed().Set(domain.FieldNameQuantity, fmt.Sprint(i)))
		}
	})
}

func BenchmarkFieldsParse(b *testing.B) {
	fields := helpers.CreateTestFields()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = fields.Parse()
	}
}
