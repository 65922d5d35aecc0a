package mockdata_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/voltia-api/internal/application/mockdata"
	"github.com/tu-usuario/voltia-api/internal/domain/entity"
	"github.com/tu-usuario/voltia-api/internal/domain/tariff"
)

// Dataset reproducible para todos los tests del paquete.
func buildDataset(t *testing.T) *mockdata.Dataset {
	t.Helper()
	g := mockdata.NewGenerator(mockdata.Options{
		Customers: 50,
		Contracts: 100,
		Seed:      42,
		Now:       time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
	})
	return g.Generate()
}

func buildSmallDataset(t *testing.T, customers, contracts int) *mockdata.Dataset {
	t.Helper()
	g := mockdata.NewGenerator(mockdata.Options{
		Customers: customers,
		Contracts: contracts,
		Seed:      7,
		Now:       time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
	})
	return g.Generate()
}

func TestGenerate_TamanosYFormatosDeID(t *testing.T) {
	ds := buildDataset(t)

	require.Len(t, ds.Customers, 50)
	require.Len(t, ds.Contracts, 100)
	assert.Len(t, ds.PaymentMethods, 50, "exactamente un método de pago por cliente")
	assert.Empty(t, ds.Appointments, "las citas empiezan vacías y crecen bajo demanda")
	assert.NotEmpty(t, ds.RunID)

	first := ds.Customers[0]
	assert.Equal(t, "CUST0000", first.ID)
	assert.Equal(t, "Customer 0", first.Name)
	assert.Equal(t, "+6500000000", first.Phone)
	assert.Equal(t, "customer0@example.com", first.Email)
	assert.Equal(t, entity.AccountStatusActive, first.AccountStatus)

	for i, c := range ds.Contracts {
		assert.Equal(t, fmt.Sprintf("CONT%04d", i), c.ID)
	}
	for i, b := range ds.BillingHistory {
		assert.Equal(t, fmt.Sprintf("BILL%04d", i), b.ID)
	}
}

// TestGenerate_IntegridadReferencial toda entidad derivada apunta a una
// entidad existente: contratos y pagos a clientes, facturas y consumo a
// contratos.
func TestGenerate_IntegridadReferencial(t *testing.T) {
	ds := buildDataset(t)

	customerIDs := map[string]bool{}
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	contractIDs := map[string]bool{}
	for _, c := range ds.Contracts {
		contractIDs[c.ID] = true
		require.True(t, customerIDs[c.CustomerID], "contrato %s apunta a cliente inexistente %s", c.ID, c.CustomerID)
	}
	for _, pm := range ds.PaymentMethods {
		require.True(t, customerIDs[pm.CustomerID], "método de pago %s apunta a cliente inexistente", pm.ID)
	}
	for _, b := range ds.BillingHistory {
		require.True(t, contractIDs[b.ContractID], "factura %s apunta a contrato inexistente", b.ID)
		require.True(t, customerIDs[b.CustomerID], "factura %s apunta a cliente inexistente", b.ID)
	}
	for _, u := range ds.UsageData {
		require.True(t, contractIDs[u.ContractID], "consumo apunta a contrato inexistente %s", u.ContractID)
		require.True(t, customerIDs[u.CustomerID], "consumo apunta a cliente inexistente %s", u.CustomerID)
	}
}

func TestGenerate_ContratosCoherentes(t *testing.T) {
	ds := buildDataset(t)

	for _, c := range ds.Contracts {
		assert.Contains(t, []int{12, 24}, c.TermMonths)
		assert.Equal(t, c.StartDate.AddDate(0, 0, c.TermMonths*30), c.EndDate,
			"fin de contrato = inicio + term_months * 30 días")
		assert.Equal(t, entity.ContractStatusActive, c.Status)
		assert.True(t, c.AutoRenewal)

		rate, _ := c.Rate.Float64()
		assert.GreaterOrEqual(t, rate, 0.18)
		assert.LessOrEqual(t, rate, 0.30)

		if c.PlanType == entity.PlanGreenEnergy {
			assert.Equal(t, 100, c.GreenEnergyPercentage)
		} else {
			assert.Contains(t, []int{0, 20, 50}, c.GreenEnergyPercentage)
		}
	}
}

// TestGenerate_FacturasCuadran cada factura reproduce exactamente el desglose
// tarifario de su contrato y cumple total = subtotal + GST.
func TestGenerate_FacturasCuadran(t *testing.T) {
	ds := buildDataset(t)
	require.NotEmpty(t, ds.BillingHistory)

	contractsByID := map[string]entity.Contract{}
	for _, c := range ds.Contracts {
		contractsByID[c.ID] = c
	}

	for _, b := range ds.BillingHistory {
		contract := contractsByID[b.ContractID]

		wantCharges, wantTotal := tariff.Calculate(b.UsageKWh, contract.Rate)
		require.True(t, b.TotalAmount.Equal(wantTotal), "total de %s no coincide con la tarifa", b.ID)
		require.True(t, b.Charges.Subtotal.Equal(wantCharges.Subtotal), "subtotal de %s", b.ID)
		require.True(t, b.TotalAmount.Equal(b.Charges.Subtotal.Add(b.Charges.GST)),
			"total = subtotal + GST debe cumplirse en %s", b.ID)

		assert.True(t, b.BillDate.After(contract.StartDate), "no se factura antes del inicio del contrato")
		assert.Equal(t, b.BillDate.AddDate(0, 0, 21), b.DueDate)
		assert.Equal(t, b.DueDate, b.PaymentDue)
		assert.Equal(t, b.BillDate.AddDate(0, 0, -30), b.BillingPeriodStart)
		assert.Equal(t, b.BillDate, b.BillingPeriodEnd)
		assert.Contains(t, []string{entity.BillStatusPaid, entity.BillStatusUnpaid}, b.Status)
	}
}

// TestGenerate_ConsumoDiario cada factura respalda 30 días de consumo; los
// planes punta/valle registran el desglose y los demás no.
func TestGenerate_ConsumoDiario(t *testing.T) {
	ds := buildDataset(t)

	assert.Len(t, ds.UsageData, 30*len(ds.BillingHistory), "30 registros diarios por factura")

	contractsByID := map[string]entity.Contract{}
	for _, c := range ds.Contracts {
		contractsByID[c.ID] = c
	}

	for _, u := range ds.UsageData {
		contract := contractsByID[u.ContractID]
		if contract.PlanType == entity.PlanPeakOffPeak {
			require.NotNil(t, u.PeakKWh, "plan punta/valle debe traer consumo punta")
			require.NotNil(t, u.OffPeakKWh, "plan punta/valle debe traer consumo valle")
			assert.True(t, u.TotalKWh.Equal(u.PeakKWh.Add(*u.OffPeakKWh)),
				"total diario = punta + valle")
		} else {
			assert.Nil(t, u.PeakKWh)
			assert.Nil(t, u.OffPeakKWh)
		}

		if contract.GreenEnergyPercentage == 0 {
			assert.True(t, u.CarbonOffsetKg.IsZero(), "sin energía verde no hay compensación de carbono")
		}
		assert.True(t, u.TotalKWh.Equal(u.TotalKWh.Round(2)), "kWh a 2 decimales")
	}
}

func TestGenerate_MetodosDePago(t *testing.T) {
	ds := buildDataset(t)

	perCustomer := map[string]int{}
	for _, pm := range ds.PaymentMethods {
		perCustomer[pm.CustomerID]++
		assert.True(t, pm.IsDefault)
		switch pm.Type {
		case entity.PaymentTypeCreditCard:
			assert.Contains(t, []string{"Visa", "MasterCard"}, pm.CardType)
			assert.Len(t, pm.LastFour, 4)
			assert.Empty(t, pm.BankName, "una tarjeta no lleva campos GIRO")
		case entity.PaymentTypeGIRO:
			assert.Contains(t, []string{"DBS", "OCBC", "UOB"}, pm.BankName)
			assert.Len(t, pm.AccountLastFour, 4)
			assert.Empty(t, pm.CardType, "GIRO no lleva campos de tarjeta")
		default:
			t.Fatalf("tipo de pago inesperado: %s", pm.Type)
		}
	}
	for _, c := range ds.Customers {
		assert.Equal(t, 1, perCustomer[c.ID], "cliente %s debe tener exactamente un método de pago", c.ID)
	}
}

// TestGenerate_Determinista el mismo seed produce el mismo dataset (salvo el
// run id, que es un uuid nuevo en cada ejecución).
func TestGenerate_Determinista(t *testing.T) {
	ds1 := buildDataset(t)
	ds2 := buildDataset(t)

	assert.NotEqual(t, ds1.RunID, ds2.RunID)
	assert.Equal(t, ds1.Customers, ds2.Customers)
	assert.Equal(t, ds1.Contracts, ds2.Contracts)
	assert.Equal(t, ds1.BillingHistory, ds2.BillingHistory)
	assert.Equal(t, ds1.PaymentMethods, ds2.PaymentMethods)
}
