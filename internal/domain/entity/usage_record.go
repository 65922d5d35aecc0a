package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageRecord consumo diario derivado de la factura del mes.
// PeakKWh y OffPeakKWh solo se registran en planes Peak/Off-Peak.
type UsageRecord struct {
	CustomerID     string           `json:"customer_id"`
	ContractID     string           `json:"contract_id"`
	Date           time.Time        `json:"date"`
	TotalKWh       decimal.Decimal  `json:"total_kwh"`
	PeakKWh        *decimal.Decimal `json:"peak_kwh"`
	OffPeakKWh     *decimal.Decimal `json:"off_peak_kwh"`
	CarbonOffsetKg decimal.Decimal  `json:"carbon_offset_kg"` // total * 0.4 * (% verde / 100)
}
