package entity

// Usuario registro de credenciales tal como lo devuelve la base.
// La tabla es propiedad del almacén externo: aquí solo se leen id, email,
// rol y el hash para verificación en el login.
type Usuario struct {
	ID           int
	Nombre       string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Rol          string // administrador, veterinario, secretaria
}

// Identidad datos decodificados del token de sesión. Inmutable durante la
// vida de la petición; nunca se persiste.
type Identidad struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Rol   string `json:"role"`
}
