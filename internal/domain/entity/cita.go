package entity

// Estados de una cita.
const (
	CitaPendiente = "pendiente"
	CitaAtendida  = "atendida"
	CitaCancelada = "cancelada"
)

// Horario candidato de agenda: fecha canónica (YYYY-MM-DD, sin zona) más hora
// del día (HH:MM o HH:MM:SS). La invariante de agenda se evalúa sobre esta
// tripleta junto con el veterinario.
type Horario struct {
	Fecha string
	Hora  string
}
