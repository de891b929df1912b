package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation("currency_code", isCurrencyCode)
	}
}

// isCurrencyCode accepts three ASCII letters in any case, e.g. "usd" or "EUR".
// Catalog membership is checked by the services.
func isCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
