package mockdata

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/voltia-api/internal/domain/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Vista de muestra: un subconjunto legible del dataset que se incluye en el
// snapshot para inspección manual. Las claves JSON son etiquetas de pantalla,
// no nombres de campo de API.

// SampleCustomer ficha legible de un cliente de muestra.
type SampleCustomer struct {
	Customer      string              `json:"Customer"`
	ID            string              `json:"ID"`
	Phone         string              `json:"Phone"`
	Email         string              `json:"Email"`
	Address       string              `json:"Address"`
	Contracts     []SampleContract    `json:"Contracts"`
	CurrentBill   []SampleBillDetail  `json:"Current Bill"`
	PreviousBill  []SampleBillSummary `json:"Previous Bill"`
	Usage         []SampleUsage       `json:"Usage"`
	PaymentMethod []SamplePayment     `json:"Payment Method"`
}

// SampleContract resumen de contrato.
type SampleContract struct {
	ID          string `json:"ID"`
	Plan        string `json:"Plan"`
	Term        string `json:"Term"`
	Rate        string `json:"Rate"`
	Status      string `json:"Status"`
	StartDate   string `json:"Start Date"`
	EndDate     string `json:"End Date"`
	AutoRenewal string `json:"Auto Renewal"`
	GreenEnergy string `json:"Green Energy"`
}

// SampleBillDetail factura del mes en curso con desglose.
type SampleBillDetail struct {
	BillID       string `json:"Bill ID"`
	Period       string `json:"Period"`
	Usage        string `json:"Usage"`
	EnergyCharge string `json:"Energy Charge"`
	GridCharge   string `json:"Grid Charge"`
	OtherCharges string `json:"Other Charges"`
	GST          string `json:"GST"`
	Total        string `json:"Total"`
	Status       string `json:"Status"`
	DueDate      string `json:"Due Date"`
}

// SampleBillSummary factura del mes anterior, compacta.
type SampleBillSummary struct {
	BillID string `json:"Bill ID"`
	Period string `json:"Period"`
	Usage  string `json:"Usage"`
	Total  string `json:"Total"`
	Status string `json:"Status"`
}

// SampleUsage consumo de un día. Peak/Off-Peak solo en planes punta/valle;
// Carbon Offset solo cuando el contrato tiene porcentaje verde.
type SampleUsage struct {
	Date         string `json:"Date"`
	Usage        string `json:"Usage"`
	Peak         string `json:"Peak,omitempty"`
	OffPeak      string `json:"Off-Peak,omitempty"`
	CarbonOffset string `json:"Carbon Offset,omitempty"`
}

// SamplePayment método de pago, forma tarjeta o forma GIRO.
type SamplePayment struct {
	Type    string `json:"Type"`
	Card    string `json:"Card,omitempty"`
	Expiry  string `json:"Expiry,omitempty"`
	Bank    string `json:"Bank,omitempty"`
	Account string `json:"Account,omitempty"`
}

const dateLayout = "2006-01-02"

// buildSample elige 3 clientes al azar y arma su ficha legible: hasta 2
// contratos, factura actual y anterior por contrato, últimos 7 días de
// consumo y método de pago.
func (g *Generator) buildSample(ds *Dataset) []SampleCustomer {
	p := message.NewPrinter(language.English)

	n := 3
	if len(ds.Customers) < n {
		n = len(ds.Customers)
	}
	out := make([]SampleCustomer, 0, n)

	for _, idx := range g.rng.Perm(len(ds.Customers))[:n] {
		customer := ds.Customers[idx]
		card := SampleCustomer{
			Customer:      customer.Name,
			ID:            customer.ID,
			Phone:         customer.Phone,
			Email:         customer.Email,
			Address:       customer.Address,
			Contracts:     []SampleContract{},
			CurrentBill:   []SampleBillDetail{},
			PreviousBill:  []SampleBillSummary{},
			Usage:         []SampleUsage{},
			PaymentMethod: []SamplePayment{},
		}

		var contracts []entity.Contract
		for _, c := range ds.Contracts {
			if c.CustomerID == customer.ID {
				contracts = append(contracts, c)
			}
		}
		if len(contracts) > 2 {
			contracts = contracts[:2]
		}

		for _, contract := range contracts {
			autoRenewal := "No"
			if contract.AutoRenewal {
				autoRenewal = "Yes"
			}
			card.Contracts = append(card.Contracts, SampleContract{
				ID:          contract.ID,
				Plan:        contract.PlanType,
				Term:        p.Sprintf("%d months", contract.TermMonths),
				Rate:        "$" + contract.Rate.String() + "/kWh",
				Status:      contract.Status,
				StartDate:   contract.StartDate.Format(dateLayout),
				EndDate:     contract.EndDate.Format(dateLayout),
				AutoRenewal: autoRenewal,
				GreenEnergy: p.Sprintf("%d%%", contract.GreenEnergyPercentage),
			})

			var bills []entity.Bill
			for _, b := range ds.BillingHistory {
				if b.ContractID == contract.ID {
					bills = append(bills, b)
				}
			}
			sort.Slice(bills, func(i, j int) bool { return bills[i].BillDate.After(bills[j].BillDate) })

			if len(bills) > 0 {
				current := bills[0]
				other := current.Charges.MarketSupportFee.
					Add(current.Charges.TransmissionLossCharge).
					Add(current.Charges.EMCCharge).
					Add(current.Charges.PSOCharge)
				card.CurrentBill = append(card.CurrentBill, SampleBillDetail{
					BillID:       current.ID,
					Period:       current.BillingPeriodStart.Format(dateLayout) + " to " + current.BillingPeriodEnd.Format(dateLayout),
					Usage:        current.UsageKWh.String() + " kWh",
					EnergyCharge: money(p, current.Charges.EnergyCharge),
					GridCharge:   money(p, current.Charges.PowerGridCharge),
					OtherCharges: money(p, other),
					GST:          money(p, current.Charges.GST),
					Total:        money(p, current.TotalAmount),
					Status:       current.Status,
					DueDate:      current.PaymentDue.Format(dateLayout),
				})
			}
			if len(bills) > 1 {
				prev := bills[1]
				card.PreviousBill = append(card.PreviousBill, SampleBillSummary{
					BillID: prev.ID,
					Period: prev.BillingPeriodStart.Format(dateLayout) + " to " + prev.BillingPeriodEnd.Format(dateLayout),
					Usage:  prev.UsageKWh.String() + " kWh",
					Total:  money(p, prev.TotalAmount),
					Status: prev.Status,
				})
			}

			var usage []entity.UsageRecord
			for _, u := range ds.UsageData {
				if u.ContractID == contract.ID {
					usage = append(usage, u)
				}
			}
			sort.Slice(usage, func(i, j int) bool { return usage[i].Date.After(usage[j].Date) })
			if len(usage) > 7 {
				usage = usage[:7]
			}
			for _, u := range usage {
				row := SampleUsage{
					Date:  u.Date.Format(dateLayout),
					Usage: u.TotalKWh.String() + " kWh",
				}
				if u.PeakKWh != nil {
					row.Peak = u.PeakKWh.String() + " kWh"
					row.OffPeak = u.OffPeakKWh.String() + " kWh"
				}
				if !u.CarbonOffsetKg.IsZero() {
					row.CarbonOffset = u.CarbonOffsetKg.String() + " kg"
				}
				card.Usage = append(card.Usage, row)
			}
		}

		for _, pm := range ds.PaymentMethods {
			if pm.CustomerID != customer.ID {
				continue
			}
			if pm.Type == entity.PaymentTypeCreditCard {
				card.PaymentMethod = append(card.PaymentMethod, SamplePayment{
					Type:   pm.Type,
					Card:   pm.CardType + " ending in " + pm.LastFour,
					Expiry: pm.ExpiryDate,
				})
			} else {
				card.PaymentMethod = append(card.PaymentMethod, SamplePayment{
					Type:    pm.Type,
					Bank:    pm.BankName,
					Account: "ending in " + pm.AccountLastFour,
				})
			}
		}

		out = append(out, card)
	}
	return out
}

// money formatea un monto en dólares con separador de miles y 2 decimales.
func money(p *message.Printer, d decimal.Decimal) string {
	f, _ := d.Float64()
	return p.Sprintf("$%.2f", f)
}
