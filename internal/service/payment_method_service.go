package service

import (
	"strings"

	"github.com/nextup-mentor/nextup-api/internal/models"
	"github.com/nextup-mentor/nextup-api/pkg/config"
)

// PaymentMethodService lists the manual payment channels.
type PaymentMethodService struct {
	methods []models.PaymentMethod
}

// NewPaymentMethodService builds the method list once from configuration.
// Channels without a number are left out.
func NewPaymentMethodService(cfg config.PaymentConfig) *PaymentMethodService {
	var methods []models.PaymentMethod
	if cfg.BkashNumber != "" {
		methods = append(methods, models.PaymentMethod{
			Code: models.PaymentMethodBkash, Name: "bKash", Label: "Personal",
			Number: cfg.BkashNumber, CopyValue: copyValue(cfg.BkashNumber),
		})
	}
	if cfg.NagadNumber != "" {
		methods = append(methods, models.PaymentMethod{
			Code: models.PaymentMethodNagad, Name: "Nagad", Label: "Personal",
			Number: cfg.NagadNumber, CopyValue: copyValue(cfg.NagadNumber),
		})
	}
	if cfg.BankAccountNumber != "" {
		methods = append(methods, models.PaymentMethod{
			Code: models.PaymentMethodBank, Name: "Bank Transfer", Label: "Account No.",
			Number: cfg.BankAccountNumber, CopyValue: copyValue(cfg.BankAccountNumber),
			BankName: cfg.BankName, Branch: cfg.BankBranch, AccountName: cfg.BankAccountName,
		})
	}
	return &PaymentMethodService{methods: methods}
}

// List returns a copy of the configured methods.
func (s *PaymentMethodService) List() []models.PaymentMethod {
	out := make([]models.PaymentMethod, len(s.methods))
	copy(out, s.methods)
	return out
}

func copyValue(number string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(number)
}
