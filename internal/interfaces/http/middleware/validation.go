package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/purchase-system/backend/internal/domain/bom"
)

// SetupValidator registers custom validation rules with gin's binding
// validator. Call once at startup, before routes are served.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("line_status", validateLineStatus)
	}
}

func validateLineStatus(fl validator.FieldLevel) bool {
	return bom.LineStatus(fl.Field().String()).IsValid()
}
