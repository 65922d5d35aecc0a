// Package tariff calcula el desglose de cargos regulados del mercado
// eléctrico de Singapur para una factura mensual. Las cifras son ilustrativas
// (backend de prueba), no una liquidación auditada.
package tariff

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/voltia-api/internal/domain/entity"
)

// Componentes regulados de la tarifa. MSS es fijo por factura; el resto se
// aplica sobre el consumo o sobre el cargo de energía.
var (
	MarketSupportFee       = decimal.RequireFromString("4.39")   // MSS, $ por factura
	PowerGridRate          = decimal.RequireFromString("0.0484") // $ por kWh
	TransmissionLossFactor = decimal.RequireFromString("0.004")  // 0.4% del cargo de energía
	EMCRate                = decimal.RequireFromString("0.0013") // Energy Market Company, $ por kWh
	PSORate                = decimal.RequireFromString("0.0007") // Power System Operator, $ por kWh
	GSTRate                = decimal.RequireFromString("0.08")   // GST 8%
)

// Calculate produce el desglose de cargos para un consumo mensual en kWh a la
// tarifa contratada ($/kWh). Cada componente se redondea a 2 decimales; el
// subtotal es la suma exacta de los componentes redondeados, el GST se aplica
// sobre el subtotal y el total es la suma exacta de subtotal y GST, de modo
// que el desglose siempre cuadra al centavo.
func Calculate(usageKWh, rate decimal.Decimal) (entity.BillCharges, decimal.Decimal) {
	energy := usageKWh.Mul(rate).Round(2)
	mss := MarketSupportFee.Round(2)
	grid := usageKWh.Mul(PowerGridRate).Round(2)
	transmission := energy.Mul(TransmissionLossFactor).Round(2)
	emc := usageKWh.Mul(EMCRate).Round(2)
	pso := usageKWh.Mul(PSORate).Round(2)

	subtotal := energy.Add(mss).Add(grid).Add(transmission).Add(emc).Add(pso)
	gst := subtotal.Mul(GSTRate).Round(2)
	total := subtotal.Add(gst)

	charges := entity.BillCharges{
		EnergyCharge:           energy,
		MarketSupportFee:       mss,
		PowerGridCharge:        grid,
		TransmissionLossCharge: transmission,
		EMCCharge:              emc,
		PSOCharge:              pso,
		Subtotal:               subtotal,
		GST:                    gst,
	}
	return charges, total
}
