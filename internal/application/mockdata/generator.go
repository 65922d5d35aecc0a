// Package mockdata genera el dataset sintético que sirve de "base de datos"
// al backend del agente: clientes, contratos de energía, facturas, consumo
// diario y métodos de pago, todos cruzados y consistentes entre sí.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/voltia-api/internal/domain/entity"
	"github.com/tu-usuario/voltia-api/internal/domain/tariff"
	"golang.org/x/text/language"
)

// Dataset dataset completo en memoria. Todas las listas son inmutables tras
// la generación, salvo Appointments, que crece bajo demanda (ver backend).
type Dataset struct {
	RunID          string                 `json:"run_id"`
	GeneratedAt    time.Time              `json:"generated_at"`
	Customers      []entity.Customer      `json:"customers"`
	Contracts      []entity.Contract      `json:"contracts"`
	BillingHistory []entity.Bill          `json:"billing_history"`
	UsageData      []entity.UsageRecord   `json:"usage_data"`
	PaymentMethods []entity.PaymentMethod `json:"payment_methods"`
	Appointments   []entity.Appointment   `json:"appointments"`
	SampleData     []SampleCustomer       `json:"sample_data"`
}

// Options parámetros de generación. Seed 0 usa el reloj (dataset distinto en
// cada arranque); un seed fijo produce un dataset reproducible para tests.
type Options struct {
	Customers int
	Contracts int
	Seed      int64
	Now       time.Time // cero = time.Now()
}

// Generator construye el dataset a partir de un RNG sembrado.
type Generator struct {
	rng *rand.Rand
	opt Options
	now time.Time
}

// Idiomas preferidos de atención. Las etiquetas BCP 47 identifican el idioma;
// la etiqueta de Singapur para chino se presenta como "Mandarin".
var preferredLanguages = []struct {
	Tag   language.Tag
	Label string
}{
	{language.English, "English"},
	{language.Chinese, "Mandarin"},
	{language.Malay, "Malay"},
	{language.Tamil, "Tamil"},
}

var (
	planTypes     = []string{entity.PlanFixedPrice, entity.PlanDiscountOff, entity.PlanPeakOffPeak, entity.PlanGreenEnergy}
	contractTerms = []int{12, 24} // términos más comunes, en meses
	cardTypes     = []string{"Visa", "MasterCard"}
	giroBanks     = []string{"DBS", "OCBC", "UOB"}
)

// NewGenerator construye el generador.
func NewGenerator(opt Options) *Generator {
	seed := opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		opt: opt,
		now: now,
	}
}

// Generate construye todas las entidades y la vista de muestra.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{
		RunID:        uuid.New().String(),
		GeneratedAt:  g.now,
		Appointments: []entity.Appointment{},
	}

	g.generateCustomers(ds)
	g.generateContractsAndBilling(ds)
	g.generatePaymentMethods(ds)
	ds.SampleData = g.buildSample(ds)

	return ds
}

func (g *Generator) generateCustomers(ds *Dataset) {
	ds.Customers = make([]entity.Customer, 0, g.opt.Customers)
	for i := 0; i < g.opt.Customers; i++ {
		lang := preferredLanguages[g.rng.Intn(len(preferredLanguages))]
		ds.Customers = append(ds.Customers, entity.Customer{
			ID:    fmt.Sprintf("CUST%04d", i),
			Name:  fmt.Sprintf("Customer %d", i),
			Phone: fmt.Sprintf("+65%08d", i),
			Email: fmt.Sprintf("customer%d@example.com", i),
			Address: fmt.Sprintf("Block %d, #%d-%d, Singapore %d",
				g.intn(1, 999), g.intn(1, 20), g.intn(1, 99), g.intn(100000, 999999)),
			JoinedDate:        g.now.AddDate(0, 0, -g.rng.Intn(731)),
			PreferredLanguage: lang.Label,
			AccountStatus:     entity.AccountStatusActive,
		})
	}
}

func (g *Generator) generateContractsAndBilling(ds *Dataset) {
	ds.Contracts = make([]entity.Contract, 0, g.opt.Contracts)
	for i := 0; i < g.opt.Contracts; i++ {
		customer := ds.Customers[g.rng.Intn(len(ds.Customers))]
		plan := planTypes[g.rng.Intn(len(planTypes))]
		term := contractTerms[g.rng.Intn(len(contractTerms))]
		start := g.now.AddDate(0, 0, -g.intn(30, 365))

		greenPct := 100
		if plan != entity.PlanGreenEnergy {
			greenPct = []int{0, 20, 50}[g.rng.Intn(3)]
		}

		contract := entity.Contract{
			ID:                    fmt.Sprintf("CONT%04d", i),
			CustomerID:            customer.ID,
			CustomerName:          customer.Name,
			StartDate:             start,
			EndDate:               start.AddDate(0, 0, term*30),
			TermMonths:            term,
			PlanType:              plan,
			Rate:                  decimal.NewFromFloat(g.uniform(0.18, 0.30)).Round(4), // $/kWh
			Status:                entity.ContractStatusActive,
			AutoRenewal:           true,
			GreenEnergyPercentage: greenPct,
		}
		ds.Contracts = append(ds.Contracts, contract)

		g.generateBillingForContract(ds, contract)
	}
}

// generateBillingForContract emite las facturas de los últimos 2 meses (cuando
// el contrato ya existía) y el consumo diario que respalda cada factura.
func (g *Generator) generateBillingForContract(ds *Dataset, contract entity.Contract) {
	for month := 0; month < 2; month++ {
		billDate := g.now.AddDate(0, 0, -30*month)
		if !billDate.After(contract.StartDate) {
			continue
		}

		// Consumo medio de un hogar en Singapur, con factor estacional
		baseUsage := g.uniform(300.0, 800.0)
		seasonalFactor := 1.0 + 0.15*float64(month%2)
		monthlyUsage := decimal.NewFromFloat(baseUsage * seasonalFactor).Round(2)

		charges, total := tariff.Calculate(monthlyUsage, contract.Rate)

		status := entity.BillStatusUnpaid // mes en curso
		if month > 0 {
			status = entity.BillStatusPaid
		}

		ds.BillingHistory = append(ds.BillingHistory, entity.Bill{
			ID:                 fmt.Sprintf("BILL%04d", len(ds.BillingHistory)),
			ContractID:         contract.ID,
			CustomerID:         contract.CustomerID,
			BillDate:           billDate,
			DueDate:            billDate.AddDate(0, 0, 21),
			BillingPeriodStart: billDate.AddDate(0, 0, -30),
			BillingPeriodEnd:   billDate,
			UsageKWh:           monthlyUsage,
			Charges:            charges,
			TotalAmount:        total,
			Status:             status,
			PaymentDue:         billDate.AddDate(0, 0, 21),
		})

		g.generateDailyUsage(ds, contract, billDate, monthlyUsage)
	}
}

// generateDailyUsage reparte el consumo mensual en 30 días hacia atrás desde
// la fecha de factura, con jitter ±10% por día. En planes Peak/Off-Peak el
// día se divide 70/30 entre horas punta y valle.
func (g *Generator) generateDailyUsage(ds *Dataset, contract entity.Contract, billDate time.Time, monthlyUsage decimal.Decimal) {
	dailyMean, _ := monthlyUsage.Div(decimal.NewFromInt(30)).Float64()
	green := decimal.NewFromInt(int64(contract.GreenEnergyPercentage)).Div(decimal.NewFromInt(100))

	for day := 0; day < 30; day++ {
		date := billDate.AddDate(0, 0, -day)

		var total decimal.Decimal
		var peak, offPeak *decimal.Decimal
		if contract.PlanType == entity.PlanPeakOffPeak {
			p := decimal.NewFromFloat(dailyMean * 0.7 * g.uniform(0.9, 1.1)).Round(2)
			op := decimal.NewFromFloat(dailyMean * 0.3 * g.uniform(0.9, 1.1)).Round(2)
			peak, offPeak = &p, &op
			total = p.Add(op)
		} else {
			total = decimal.NewFromFloat(dailyMean * g.uniform(0.9, 1.1)).Round(2)
		}

		ds.UsageData = append(ds.UsageData, entity.UsageRecord{
			CustomerID:     contract.CustomerID,
			ContractID:     contract.ID,
			Date:           date,
			TotalKWh:       total,
			PeakKWh:        peak,
			OffPeakKWh:     offPeak,
			CarbonOffsetKg: total.Mul(decimal.NewFromFloat(0.4)).Mul(green).Round(2),
		})
	}
}

// generatePaymentMethods asigna exactamente un método de pago por cliente.
func (g *Generator) generatePaymentMethods(ds *Dataset) {
	ds.PaymentMethods = make([]entity.PaymentMethod, 0, len(ds.Customers))
	for _, customer := range ds.Customers {
		pm := entity.PaymentMethod{
			ID:         fmt.Sprintf("PAY%04d", len(ds.PaymentMethods)),
			CustomerID: customer.ID,
			IsDefault:  true,
		}
		if g.rng.Intn(2) == 0 {
			pm.Type = entity.PaymentTypeCreditCard
			pm.CardType = cardTypes[g.rng.Intn(len(cardTypes))]
			pm.LastFour = fmt.Sprintf("%d", g.intn(1000, 9999))
			pm.ExpiryDate = fmt.Sprintf("%d/%d", g.intn(1, 12), g.intn(23, 28))
		} else {
			pm.Type = entity.PaymentTypeGIRO
			pm.BankName = giroBanks[g.rng.Intn(len(giroBanks))]
			pm.AccountLastFour = fmt.Sprintf("%d", g.intn(1000, 9999))
		}
		ds.PaymentMethods = append(ds.PaymentMethods, pm)
	}
}

// intn entero uniforme en [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// uniform real uniforme en [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
