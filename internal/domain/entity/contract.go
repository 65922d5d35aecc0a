package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de plan ofrecidos en el mercado abierto de electricidad de Singapur.
const (
	PlanFixedPrice  = "Fixed Price Plan"
	PlanDiscountOff = "Discount Off Tariff"
	PlanPeakOffPeak = "Peak/Off-Peak Plan"
	PlanGreenEnergy = "Green Energy Plan"
)

// ContractStatusActive todos los contratos generados están vigentes.
const ContractStatusActive = "Active"

// Contract contrato de suministro eléctrico de un cliente.
type Contract struct {
	ID                    string          `json:"id"`
	CustomerID            string          `json:"customer_id"`
	CustomerName          string          `json:"customer_name"`
	StartDate             time.Time       `json:"start_date"`
	EndDate               time.Time       `json:"end_date"` // start + term_months * 30 días
	TermMonths            int             `json:"term_months"`
	PlanType              string          `json:"plan_type"`
	Rate                  decimal.Decimal `json:"rate"` // $/kWh, 4 decimales
	Status                string          `json:"status"`
	AutoRenewal           bool            `json:"auto_renewal"`
	GreenEnergyPercentage int             `json:"green_energy_percentage"` // 100 en plan verde; 0/20/50 en el resto
}
