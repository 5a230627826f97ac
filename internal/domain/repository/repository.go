// Package repository define los puertos de persistencia que el núcleo necesita
// además del invocador genérico de funciones almacenadas: las consultas de
// verificación previas (choques de agenda, duplicados) y la lectura de
// credenciales para el login.
package repository

import (
	"context"

	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
)

// UsuarioRepository lectura de credenciales para autenticación.
type UsuarioRepository interface {
	// BuscarPorEmail devuelve nil, nil si el email no existe.
	BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
}

// CitaRepository consultas de agenda para el guardián de conflictos.
type CitaRepository interface {
	// ExisteChoque responde si alguna cita ocupa (fecha, hora, veterinario),
	// excluyendo opcionalmente una cita por id (la propia, en actualizaciones).
	ExisteChoque(ctx context.Context, rol string, horario entity.Horario, veterinarioID int, excluirCitaID *int) (bool, error)
}

// ClienteRepository verificación de duplicados previa al alta.
type ClienteRepository interface {
	ExistePorNombreTelefono(ctx context.Context, rol, nombre, telefono string) (bool, error)
}

// ConsultaRepository verificación de una-consulta-por-mascota-por-día.
type ConsultaRepository interface {
	ExisteConsultaHoy(ctx context.Context, rol string, mascotaID int) (bool, error)
}
