package agenda

import (
	"fmt"
	"strings"
	"time"
)

// Normalización de fecha y hora en la frontera HTTP.
//
// La representación canónica de la agenda es fecha sola (YYYY-MM-DD) más hora
// del día (HH:MM:SS), ambas sin zona horaria. El frontend histórico enviaba
// tres formas distintas (fecha sola, fecha-hora ISO, fecha-hora con offset) y
// el backend truncaba a la fecha descartando el offset en silencio, lo que
// cerca de medianoche puede mover la cita de día. Aquí el truncado sigue
// existiendo pero es explícito y validado: una fecha-hora con offset se
// interpreta en su propia zona y se toma su componente de fecha; cualquier
// otra forma es un error de entrada.

// NormalizarFecha acepta "YYYY-MM-DD", "YYYY-MM-DDTHH:MM:SS" o RFC 3339 y
// devuelve siempre la fecha canónica "YYYY-MM-DD".
func NormalizarFecha(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("fecha vacía")
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("fecha inválida: %q", s)
}

// NormalizarHora acepta "HH:MM" o "HH:MM:SS" y devuelve "HH:MM:SS".
func NormalizarHora(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("hora vacía")
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("hora inválida: %q", s)
}
