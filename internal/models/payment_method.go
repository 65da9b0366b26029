package models

// PaymentMethod describes where a student sends a manual payment.
type PaymentMethod struct {
	Code        PaymentMethodCode `json:"code"`
	Name        string            `json:"name"`
	Label       string            `json:"label"`
	Number      string            `json:"number"`
	CopyValue   string            `json:"copy_value"`
	BankName    string            `json:"bank_name,omitempty"`
	Branch      string            `json:"branch,omitempty"`
	AccountName string            `json:"account_name,omitempty"`
}
