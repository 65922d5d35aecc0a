package entity

import "time"

// Estados de cuenta. El dataset sintético solo genera cuentas activas.
const (
	AccountStatusActive = "Active"
)

// Customer representa un cliente del comercializador de energía.
type Customer struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"` // formato Singapur: +65XXXXXXXX
	Email             string    `json:"email"`
	Address           string    `json:"address"`
	JoinedDate        time.Time `json:"joined_date"`
	PreferredLanguage string    `json:"preferred_language"` // English, Mandarin, Malay, Tamil
	AccountStatus     string    `json:"account_status"`
}
