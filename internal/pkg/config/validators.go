// internal/pkg/config/validators.go
package config

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	validLogFormats = []string{"json", "text"}
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogOutputs = []string{"stdout", "stderr", "discard", "none"}
)

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	// Validate required fields using reflection
	if err := validateRequiredFields(cfg); err != nil {
		return err
	}

	if !contains(validLogFormats, cfg.App.LogFormat) {
		return fmt.Errorf("log format must be one of %s, got %q",
			strings.Join(validLogFormats, ", "), cfg.App.LogFormat)
	}

	if !contains(validLogLevels, strings.ToLower(cfg.App.LogLevel)) {
		return fmt.Errorf("log level must be one of %s, got %q",
			strings.Join(validLogLevels, ", "), cfg.App.LogLevel)
	}

	if out := cfg.App.LogOutput; out != "" && !contains(validLogOutputs, out) {
		if path, ok := strings.CutPrefix(out, "file:"); !ok || strings.TrimSpace(path) == "" {
			return fmt.Errorf("log output must be one of %s or file:<path>, got %q",
				strings.Join(validLogOutputs, ", "), out)
		}
	}

	if strings.HasSuffix(cfg.Storage.DataFile, "/") {
		return fmt.Errorf("data file %q is a directory", cfg.Storage.DataFile)
	}

	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// validateRequiredFields uses reflection to check required struct tags
func validateRequiredFields(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return validateStruct(v, "")
}

func validateStruct(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		fieldName := fieldType.Name

		if prefix != "" {
			fieldName = prefix + "." + fieldName
		}

		// Check for required tag
		if required := fieldType.Tag.Get("required"); required == "true" {
			if isZeroValue(field) {
				return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, fieldName)
			}
		}

		// Recursively check nested structs
		if field.Kind() == reflect.Struct {
			if err := validateStruct(field, fieldName); err != nil {
				return err
			}
		}
	}

	return nil
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
