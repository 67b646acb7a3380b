package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// IsIso8601 accepts RFC3339 timestamps, e.g. "2025-06-01T00:00:00Z".
func IsIso8601(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}
