package entity

import "time"

// AppointmentStatusScheduled estado inicial de toda cita creada.
const AppointmentStatusScheduled = "Scheduled"

// AppointmentLocation centro de atención único del comercializador.
const AppointmentLocation = "JTC Summit (near Jurong East MRT Station)"

// Appointment cita de servicio creada bajo demanda por el agente.
type Appointment struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Date         time.Time `json:"date"`
	Service      string    `json:"service"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Notes        string    `json:"notes"`
}
