package entity

// Tipos de método de pago. GIRO es el débito directo bancario de Singapur.
const (
	PaymentTypeGIRO       = "GIRO"
	PaymentTypeCreditCard = "Credit Card"
)

// PaymentMethod método de pago del cliente. Los campos de tarjeta y de cuenta
// bancaria son mutuamente excluyentes según Type.
type PaymentMethod struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`

	// Solo Credit Card
	CardType   string `json:"card_type,omitempty"` // Visa, MasterCard
	LastFour   string `json:"last_four,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"` // M/YY

	// Solo GIRO
	BankName        string `json:"bank_name,omitempty"` // DBS, OCBC, UOB
	AccountLastFour string `json:"account_last_four,omitempty"`

	IsDefault bool `json:"is_default"`
}
