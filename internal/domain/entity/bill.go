package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura mensual.
const (
	BillStatusPaid   = "Paid"
	BillStatusUnpaid = "Unpaid"
)

// BillCharges desglose de cargos regulados de una factura (2 decimales).
// Subtotal es la suma de los componentes; GST se aplica sobre el subtotal.
type BillCharges struct {
	EnergyCharge           decimal.Decimal `json:"energy_charge"`
	MarketSupportFee       decimal.Decimal `json:"market_support_fee"`
	PowerGridCharge        decimal.Decimal `json:"power_grid_charge"`
	TransmissionLossCharge decimal.Decimal `json:"transmission_loss_charge"`
	EMCCharge              decimal.Decimal `json:"emc_charge"`
	PSOCharge              decimal.Decimal `json:"pso_charge"`
	Subtotal               decimal.Decimal `json:"subtotal"`
	GST                    decimal.Decimal `json:"gst"`
}

// Bill factura mensual derivada de un contrato.
type Bill struct {
	ID                 string          `json:"id"`
	ContractID         string          `json:"contract_id"`
	CustomerID         string          `json:"customer_id"`
	BillDate           time.Time       `json:"bill_date"`
	DueDate            time.Time       `json:"due_date"`
	BillingPeriodStart time.Time       `json:"billing_period_start"`
	BillingPeriodEnd   time.Time       `json:"billing_period_end"`
	UsageKWh           decimal.Decimal `json:"usage_kwh"`
	Charges            BillCharges     `json:"charges"`
	TotalAmount        decimal.Decimal `json:"total_amount"` // subtotal + gst, suma exacta de los redondeados
	Status             string          `json:"status"`
	PaymentDue         time.Time       `json:"payment_due"`
}
