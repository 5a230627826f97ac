package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado         = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado  = errors.New("usuario no encontrado")
	ErrContrasenaIncorrecta = errors.New("contraseña incorrecta")
	ErrHashNoDisponible     = errors.New("hash de contraseña no disponible")
	ErrNoAutorizado         = errors.New("no autorizado")
	ErrProhibido            = errors.New("acceso denegado")
	ErrConflictoAgenda      = errors.New("el veterinario ya tiene una cita en esa fecha y hora")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
)
