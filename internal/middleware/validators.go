package middleware

import (
	"fmt"

	"github.com/SscSPs/crm_pos_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain binding rules to gin's validator engine.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("paymentmethod", validatePaymentMethod); err != nil {
		return fmt.Errorf("register paymentmethod rule: %w", err)
	}
	if err := v.RegisterValidation("dealstage", validateDealStage); err != nil {
		return fmt.Errorf("register dealstage rule: %w", err)
	}
	return nil
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return domain.PaymentMethod(fl.Field().String()).IsValid()
}

func validateDealStage(fl validator.FieldLevel) bool {
	return domain.DealStage(fl.Field().String()).IsValid()
}
