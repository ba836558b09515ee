// Package config provides configuration management for the edge analysis tools.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/scenario"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)
	v.RegisterValidation("weekday", validateWeekday)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateWeekday validates a weekday name
func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := weekdayNames[fl.Field().String()]
	return ok
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	a := cfg.Analysis

	if a.CompositeConfidence > a.HighConfidenceThreshold {
		return fmt.Errorf("composite_confidence_threshold (%.2f) cannot exceed high_confidence_threshold (%.2f)",
			a.CompositeConfidence, a.HighConfidenceThreshold)
	}

	if err := analysis.Bands(a.TemperatureBands).Validate(); err != nil {
		return fmt.Errorf("invalid temperature_bands: %w", err)
	}
	if err := analysis.Bands(a.ConfidenceBands).Validate(); err != nil {
		return fmt.Errorf("invalid confidence_bands: %w", err)
	}

	known := make(map[string]bool)
	for _, s := range scenario.Catalog(scenario.DefaultThresholds()) {
		known[s.Name] = true
	}
	for _, name := range a.DisabledScenarios {
		if !known[name] {
			return fmt.Errorf("disabled_scenarios references unknown scenario %q", name)
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Port == 0 {
		return fmt.Errorf("metrics.port is required when metrics are enabled")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var msg strings.Builder
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			msg.WriteString(fmt.Sprintf("- Field '%s' is required\n", field))
		case "min", "max":
			msg.WriteString(fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag))
		case "gt", "gte", "lt", "lte":
			msg.WriteString(fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag))
		case "environment":
			msg.WriteString(fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field))
		case "loglevel":
			msg.WriteString(fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field))
		case "weekday":
			msg.WriteString(fmt.Sprintf("- Field '%s' must be a weekday name, got '%v'\n", field, value))
		case "oneof":
			msg.WriteString(fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value))
		default:
			msg.WriteString(fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag))
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", msg.String())
}
