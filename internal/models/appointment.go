package models

// Appointment statuses as the upstream reports them. Transitions are owned
// by the upstream API; the client only triggers cancellation.
const (
	StatusScheduled = "agendado"
	StatusConfirmed = "confirmado"
	StatusCompleted = "concluido"
	StatusCancelled = "cancelado"
)

// Appointment is the client-side view of a booking, already normalized by
// the gateway from whatever shape the upstream returned.
type Appointment struct {
	ID           string        `json:"id"`
	Date         string        `json:"data_agendamento"` // YYYY-MM-DD
	StartTime    string        `json:"hora_inicio"`      // HH:MM
	Status       string        `json:"status"`
	Professional *Professional `json:"profissional,omitempty"`
	Services     []Service     `json:"servicos"`
	Notes        string        `json:"observacoes,omitempty"`
	TotalValue   float64       `json:"valor,omitempty"`
}
