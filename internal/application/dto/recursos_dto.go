package dto

import "github.com/shopspring/decimal"

// Entradas de los recursos CRUD. Los campos opcionales de las actualizaciones
// son punteros: un nil viaja como NULL a la función almacenada, que conserva
// el valor actual.

// ── Usuarios ──────────────────────────────────────────────────────────────────

type UsuarioCreateRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

type UsuarioUpdateRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
}

// ── Razas ─────────────────────────────────────────────────────────────────────

type RazaCreateRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

type RazaUpdateRequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// ── Medicamentos ──────────────────────────────────────────────────────────────

type MedicamentoCreateRequest struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

type MedicamentoUpdateRequest struct {
	Nombre *string          `json:"nombre"`
	Precio *decimal.Decimal `json:"precio"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type ClienteCreateRequest struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

type ClienteUpdateRequest struct {
	Nombre    *string `json:"nombre"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ── Mascotas ──────────────────────────────────────────────────────────────────

type MascotaCreateRequest struct {
	ClienteID int             `json:"cliente_id"`
	RazaID    int             `json:"raza_id"`
	Nombre    string          `json:"nombre"`
	Edad      int             `json:"edad"`
	Peso      decimal.Decimal `json:"peso"`
}

type MascotaUpdateRequest struct {
	RazaID *int             `json:"raza_id"`
	Nombre *string          `json:"nombre"`
	Edad   *int             `json:"edad"`
	Peso   *decimal.Decimal `json:"peso"`
}

// ── Citas ─────────────────────────────────────────────────────────────────────

// CitaCreateRequest fecha y hora llegan como texto y se normalizan en la
// frontera (ver agenda.NormalizarFecha): se acepta fecha sola o fecha-hora.
type CitaCreateRequest struct {
	Fecha         string `json:"fecha"`
	Hora          string `json:"hora"`
	VeterinarioID int    `json:"veterinario_id"`
}

type CitaUpdateRequest struct {
	Fecha         string  `json:"fecha"`
	Hora          string  `json:"hora"`
	VeterinarioID int     `json:"veterinario_id"`
	Estado        *string `json:"estado"`
}

type CitaEstadoRequest struct {
	Estado string `json:"estado"`
}

// ── Consultas ─────────────────────────────────────────────────────────────────

type ConsultaCreateRequest struct {
	CitaID        int             `json:"cita_id"`
	ClienteID     int             `json:"cliente_id"`
	MascotaID     int             `json:"mascota_id"`
	VeterinarioID int             `json:"veterinario_id"`
	Diagnostico   string          `json:"diagnostico"`
	Total         decimal.Decimal `json:"total"`
}

type ConsultaUpdateRequest struct {
	ClienteID   *int             `json:"cliente_id"`
	MascotaID   *int             `json:"mascota_id"`
	Diagnostico *string          `json:"diagnostico"`
	Total       *decimal.Decimal `json:"total"`
}

// ── Consulta-medicamentos ─────────────────────────────────────────────────────

type ConsultaMedicamentoRequest struct {
	ConsultaID    int `json:"consulta_id"`
	MedicamentoID int `json:"medicamento_id"`
	Cantidad      int `json:"cantidad"`
}

// ── Facturas ──────────────────────────────────────────────────────────────────

type FacturaCreateRequest struct {
	ConsultaID int             `json:"consulta_id"`
	Total      decimal.Decimal `json:"total"`
}

type FacturaUpdateRequest struct {
	Total *decimal.Decimal `json:"total"`
}
