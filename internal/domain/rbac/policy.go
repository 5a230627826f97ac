// Package rbac define la política de autorización de la clínica como una tabla
// explícita (rol, recurso, acción) -> permitido. Es la única fuente de verdad:
// los handlers no vuelven a comparar literales de rol, consultan aquí.
//
// La tabla es estática, se construye al cargar el paquete y nunca se muta, por
// lo que es segura para lecturas concurrentes sin sincronización.
package rbac

// Roles de la aplicación.
const (
	RolAdministrador = "administrador"
	RolVeterinario   = "veterinario"
	RolSecretaria    = "secretaria"
)

// Recursos.
const (
	RecUsuarios             = "usuarios"
	RecRazas                = "razas"
	RecMedicamentos         = "medicamentos"
	RecClientes             = "clientes"
	RecMascotas             = "mascotas"
	RecCitas                = "citas"
	RecConsultas            = "consultas"
	RecConsultaMedicamentos = "consulta-medicamentos"
	RecFacturas             = "facturas"
)

// Acciones.
const (
	AccCrear            = "crear"
	AccObtener          = "obtener"
	AccListar           = "listar"
	AccActualizar       = "actualizar"
	AccEliminar         = "eliminar"
	AccActualizarEstado = "actualizar-estado" // solo citas
	AccListarPropias    = "listar-propias"    // solo citas (agenda del veterinario)
	AccDescargar        = "descargar"         // solo facturas (recibo PDF)
)

// Permiso par recurso-acción.
type Permiso struct {
	Recurso string
	Accion  string
}

var todos = []string{RolAdministrador, RolVeterinario, RolSecretaria}

// tabla enumera los roles permitidos por permiso. La ausencia de entrada es
// denegación implícita.
var tabla = map[Permiso][]string{
	// Citas: la secretaria agenda, el veterinario atiende. El refinamiento por
	// propiedad (un veterinario solo ve sus propias citas) se aplica en el
	// handler con EsPropietarioCita, no aquí.
	{RecCitas, AccCrear}:            {RolAdministrador, RolSecretaria},
	{RecCitas, AccObtener}:          todos,
	{RecCitas, AccListar}:           todos,
	{RecCitas, AccActualizar}:       todos,
	{RecCitas, AccActualizarEstado}: {RolVeterinario},
	{RecCitas, AccListarPropias}:    {RolVeterinario},
	{RecCitas, AccEliminar}:         {RolAdministrador, RolSecretaria},

	// Clientes: solo el veterinario da de alta; la secretaria puede consultar.
	{RecClientes, AccCrear}:      {RolVeterinario},
	{RecClientes, AccObtener}:    todos,
	{RecClientes, AccListar}:     todos,
	{RecClientes, AccActualizar}: {RolAdministrador, RolVeterinario},
	{RecClientes, AccEliminar}:   {RolAdministrador, RolVeterinario},

	// Mascotas: mutación clínica (vet + admin), lectura para todos.
	{RecMascotas, AccCrear}:      {RolAdministrador, RolVeterinario},
	{RecMascotas, AccObtener}:    todos,
	{RecMascotas, AccListar}:     todos,
	{RecMascotas, AccActualizar}: {RolAdministrador, RolVeterinario},
	{RecMascotas, AccEliminar}:   {RolAdministrador, RolVeterinario},

	// Catálogos (razas, medicamentos): mutación solo admin, lectura para todos.
	{RecRazas, AccCrear}:      {RolAdministrador},
	{RecRazas, AccObtener}:    todos,
	{RecRazas, AccListar}:     todos,
	{RecRazas, AccActualizar}: {RolAdministrador},
	{RecRazas, AccEliminar}:   {RolAdministrador},

	{RecMedicamentos, AccCrear}:      {RolAdministrador},
	{RecMedicamentos, AccObtener}:    todos,
	{RecMedicamentos, AccListar}:     todos,
	{RecMedicamentos, AccActualizar}: {RolAdministrador},
	{RecMedicamentos, AccEliminar}:   {RolAdministrador},

	// Consultas médicas.
	{RecConsultas, AccCrear}:      {RolAdministrador, RolVeterinario},
	{RecConsultas, AccObtener}:    todos,
	{RecConsultas, AccListar}:     todos,
	{RecConsultas, AccActualizar}: {RolAdministrador, RolVeterinario},
	{RecConsultas, AccEliminar}:   {RolAdministrador},

	// Medicamentos recetados en una consulta: agregar y quitar es acto clínico
	// (solo veterinario); la corrección de cantidades también la puede hacer el admin.
	{RecConsultaMedicamentos, AccCrear}:      {RolVeterinario},
	{RecConsultaMedicamentos, AccListar}:     todos,
	{RecConsultaMedicamentos, AccActualizar}: {RolAdministrador, RolVeterinario},
	{RecConsultaMedicamentos, AccEliminar}:   {RolVeterinario},

	// Facturación: la gestión es de front-desk (admin + secretaria); la lectura
	// puntual de una factura queda abierta a cualquier autenticado.
	{RecFacturas, AccCrear}:      {RolAdministrador, RolSecretaria},
	{RecFacturas, AccObtener}:    todos,
	{RecFacturas, AccListar}:     {RolAdministrador, RolSecretaria},
	{RecFacturas, AccActualizar}: {RolAdministrador, RolSecretaria},
	{RecFacturas, AccEliminar}:   {RolAdministrador, RolSecretaria},
	{RecFacturas, AccDescargar}:  {RolAdministrador, RolSecretaria},

	// Gestión de usuarios: exclusiva del administrador.
	{RecUsuarios, AccCrear}:      {RolAdministrador},
	{RecUsuarios, AccObtener}:    {RolAdministrador},
	{RecUsuarios, AccListar}:     {RolAdministrador},
	{RecUsuarios, AccActualizar}: {RolAdministrador},
	{RecUsuarios, AccEliminar}:   {RolAdministrador},
}

// Permite responde si el rol puede ejecutar la acción sobre el recurso.
// Nunca lanza: rol desconocido o permiso inexistente es denegación.
func Permite(rol, recurso, accion string) bool {
	roles, ok := tabla[Permiso{Recurso: recurso, Accion: accion}]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == rol {
			return true
		}
	}
	return false
}

// EsPropietarioCita refinamiento a nivel de fila: un veterinario solo puede
// ver citas cuyo veterinario_id coincide con su propia identidad. Para los
// demás roles no aplica restricción.
func EsPropietarioCita(rol string, usuarioID, veterinarioID int) bool {
	if rol != RolVeterinario {
		return true
	}
	return usuarioID == veterinarioID
}
