// Package backend implementa las operaciones de consulta y mutación que el
// agente de atención ejecuta sobre el dataset en memoria. Cada operación
// espera primero la latencia simulada de base de datos y después recorre las
// listas; no hay motor de almacenamiento real detrás.
package backend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tu-usuario/voltia-api/internal/application/dto"
	"github.com/tu-usuario/voltia-api/internal/application/mockdata"
	"github.com/tu-usuario/voltia-api/internal/domain"
	"github.com/tu-usuario/voltia-api/internal/domain/entity"
)

// Delays latencias artificiales por clase de operación.
type Delays struct {
	Database    time.Duration
	ExternalAPI time.Duration
	Heavy       time.Duration
}

// Service operaciones del backend sobre un dataset generado.
// Las listas generadas son de solo lectura; únicamente Appointments crece,
// y ese append se protege con mu porque los handlers corren en paralelo.
type Service struct {
	data   *mockdata.Dataset
	delays Delays

	mu sync.Mutex // protege data.Appointments
}

// NewService construye el servicio sobre un dataset ya generado.
func NewService(data *mockdata.Dataset, delays Delays) *Service {
	return &Service{data: data, delays: delays}
}

// simulateDelay espera la latencia simulada, abortable por el contexto.
func (s *Service) simulateDelay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// LookupParams criterios de búsqueda de GetCustomer; se usa el primero que
// esté presente, en el orden phone, email, id.
type LookupParams struct {
	Phone      string
	Email      string
	CustomerID string
}

// GetCustomer busca un cliente por teléfono, email o id.
func (s *Service) GetCustomer(ctx context.Context, p LookupParams) (*entity.Customer, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	var match func(c entity.Customer) bool
	switch {
	case p.Phone != "":
		match = func(c entity.Customer) bool { return c.Phone == p.Phone }
	case p.Email != "":
		match = func(c entity.Customer) bool { return c.Email == p.Email }
	case p.CustomerID != "":
		match = func(c entity.Customer) bool { return c.ID == p.CustomerID }
	default:
		return nil, domain.ErrNoSearchCriteria
	}

	for i := range s.data.Customers {
		if match(s.data.Customers[i]) {
			c := s.data.Customers[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

// GetCustomerAppointments devuelve todas las citas del cliente (puede ser
// una lista vacía; un id desconocido no es error aquí, igual que en el resto
// de listados).
func (s *Service) GetCustomerAppointments(ctx context.Context, customerID string) (*dto.CustomerAppointmentsResponse, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entity.Appointment{}
	for _, a := range s.data.Appointments {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return &dto.CustomerAppointmentsResponse{CustomerID: customerID, Appointments: out}, nil
}

// GetCustomerContracts devuelve los contratos de energía del cliente.
func (s *Service) GetCustomerContracts(ctx context.Context, customerID string) (*dto.CustomerContractsResponse, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	out := []entity.Contract{}
	for _, c := range s.data.Contracts {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return &dto.CustomerContractsResponse{CustomerID: customerID, Contracts: out}, nil
}

// GetCustomerBilling devuelve el historial de facturación del cliente.
func (s *Service) GetCustomerBilling(ctx context.Context, customerID string) (*dto.CustomerBillingResponse, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	out := []entity.Bill{}
	for _, b := range s.data.BillingHistory {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return &dto.CustomerBillingResponse{CustomerID: customerID, BillingHistory: out}, nil
}

// GetCustomerUsage devuelve el consumo diario del cliente, más reciente
// primero, limitado a days registros (30 por defecto).
func (s *Service) GetCustomerUsage(ctx context.Context, customerID string, days int) (*dto.CustomerUsageResponse, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 30
	}

	out := []entity.UsageRecord{}
	for _, u := range s.data.UsageData {
		if u.CustomerID == customerID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > days {
		out = out[:days]
	}
	return &dto.CustomerUsageResponse{CustomerID: customerID, UsageData: out}, nil
}

// GetCustomerPaymentMethods devuelve los métodos de pago del cliente.
func (s *Service) GetCustomerPaymentMethods(ctx context.Context, customerID string) (*dto.CustomerPaymentMethodsResponse, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	out := []entity.PaymentMethod{}
	for _, pm := range s.data.PaymentMethods {
		if pm.CustomerID == customerID {
			out = append(out, pm)
		}
	}
	return &dto.CustomerPaymentMethodsResponse{CustomerID: customerID, PaymentMethods: out}, nil
}

// ScheduleAppointment verifica que el cliente exista y agrega una cita nueva.
// Con un id desconocido no se agrega nada.
func (s *Service) ScheduleAppointment(ctx context.Context, customerID string, date time.Time, service string) (*entity.Appointment, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	var customer *entity.Customer
	for i := range s.data.Customers {
		if s.data.Customers[i].ID == customerID {
			customer = &s.data.Customers[i]
			break
		}
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	appointment := entity.Appointment{
		ID:           fmt.Sprintf("APT%04d", len(s.data.Appointments)),
		CustomerID:   customerID,
		CustomerName: customer.Name,
		Date:         date,
		Service:      service,
		Status:       entity.AppointmentStatusScheduled,
		Location:     entity.AppointmentLocation,
		Notes:        "",
	}
	s.data.Appointments = append(s.data.Appointments, appointment)
	return &appointment, nil
}

// AvailableSlots devuelve los horarios libres de 1 hora entre start y end
// (inclusive), de 9:00 a 16:00; un horario está ocupado si ya hay una cita
// con exactamente esa marca de tiempo. Un rango invertido no es error:
// simplemente no hay horarios que recorrer y la lista va vacía.
func (s *Service) AvailableSlots(ctx context.Context, start, end time.Time) (*dto.AvailableSlotsResponse, error) {
	if err := s.simulateDelay(ctx, s.delays.Database); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	slots := []time.Time{}
	for current := start; !current.After(end); current = current.Add(time.Hour) {
		if current.Hour() < 9 || current.Hour() >= 17 {
			continue
		}
		taken := false
		for _, a := range s.data.Appointments {
			if a.Date.Equal(current) {
				taken = true
				break
			}
		}
		if !taken {
			slots = append(slots, current)
		}
	}
	return &dto.AvailableSlotsResponse{AvailableSlots: slots}, nil
}
