// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/record_store.go -destination=record_store_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/spreadsheet.go -destination=spreadsheet_mock.go -package=mocks
