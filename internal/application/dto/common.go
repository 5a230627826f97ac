package dto

// ErrorResponse cuerpo de error HTTP. Se conserva la forma {"detail": ...}
// que exponía la API original para no romper a los clientes del frontend.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MensajeFila fila de cortesía que algunos listados devuelven cuando no hay
// registros, en lugar de un 404 (comportamiento heredado del frontend).
type MensajeFila struct {
	Message string `json:"message"`
}
