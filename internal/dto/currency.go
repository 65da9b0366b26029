package dto

// CurrencyState describes the display unit selected by a client.
type CurrencyState struct {
	Currency string  `json:"currency"`
	Symbol   string  `json:"symbol"`
	EURRate  float64 `json:"eur_rate"`
}
