package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/agenda"
	"github.com/clinicavet/veterinaria-api/internal/application/auth"
	"github.com/clinicavet/veterinaria-api/internal/application/facturacion"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
	pkgjwt "github.com/clinicavet/veterinaria-api/pkg/jwt"
	"github.com/clinicavet/veterinaria-api/pkg/password"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	Invocador store.Invocador
	Guardia   *agenda.Guardia
	Clientes  repository.ClienteRepository
	Consultas repository.ConsultaRepository
	PDF       *facturacion.PDFUseCase
	Hasher    password.Hasher
	JWT       pkgjwt.Config
}

// Router registra las rutas de la API. Los paths se conservan tal cual los
// expone el frontend (verbo en el path, recurso a veces sin prefijo propio).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT))

	// Usuarios: rutas históricas sin prefijo de recurso
	usuarioHandler := NewUsuarioHandler(deps.Invocador, deps.Hasher)
	protected.Post("/crear-usuario", RequirePermiso(rbac.RecUsuarios, rbac.AccCrear), usuarioHandler.Crear)
	protected.Get("/obtener-usuario/:usuario_id", RequirePermiso(rbac.RecUsuarios, rbac.AccObtener), usuarioHandler.Obtener)
	protected.Get("/listar-usuarios", RequirePermiso(rbac.RecUsuarios, rbac.AccListar), usuarioHandler.Listar)
	protected.Put("/actualizar-usuario/:usuario_id", RequirePermiso(rbac.RecUsuarios, rbac.AccActualizar), usuarioHandler.Actualizar)
	protected.Delete("/eliminar-usuario/:usuario_id", RequirePermiso(rbac.RecUsuarios, rbac.AccEliminar), usuarioHandler.Eliminar)

	// Razas
	razas := protected.Group("/razas")
	razaHandler := NewRazaHandler(deps.Invocador)
	razas.Post("/crear-raza", RequirePermiso(rbac.RecRazas, rbac.AccCrear), razaHandler.Crear)
	razas.Get("/obtener-raza/:raza_id", RequirePermiso(rbac.RecRazas, rbac.AccObtener), razaHandler.Obtener)
	razas.Get("/listar-razas", RequirePermiso(rbac.RecRazas, rbac.AccListar), razaHandler.Listar)
	razas.Put("/actualizar-raza/:raza_id", RequirePermiso(rbac.RecRazas, rbac.AccActualizar), razaHandler.Actualizar)
	razas.Delete("/eliminar-raza/:raza_id", RequirePermiso(rbac.RecRazas, rbac.AccEliminar), razaHandler.Eliminar)

	// Medicamentos
	medicamentos := protected.Group("/medicamentos")
	medicamentoHandler := NewMedicamentoHandler(deps.Invocador)
	medicamentos.Post("/crear-medicamento", RequirePermiso(rbac.RecMedicamentos, rbac.AccCrear), medicamentoHandler.Crear)
	medicamentos.Get("/obtener-medicamento/:medicamento_id", RequirePermiso(rbac.RecMedicamentos, rbac.AccObtener), medicamentoHandler.Obtener)
	medicamentos.Get("/listar-medicamentos", RequirePermiso(rbac.RecMedicamentos, rbac.AccListar), medicamentoHandler.Listar)
	medicamentos.Put("/actualizar-medicamento/:medicamento_id", RequirePermiso(rbac.RecMedicamentos, rbac.AccActualizar), medicamentoHandler.Actualizar)
	medicamentos.Delete("/eliminar-medicamento/:medicamento_id", RequirePermiso(rbac.RecMedicamentos, rbac.AccEliminar), medicamentoHandler.Eliminar)

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.Invocador, deps.Clientes)
	clientes.Post("/crear-cliente", RequirePermiso(rbac.RecClientes, rbac.AccCrear), clienteHandler.Crear)
	clientes.Get("/obtener-cliente/:cliente_id", RequirePermiso(rbac.RecClientes, rbac.AccObtener), clienteHandler.Obtener)
	clientes.Get("/listar-clientes", RequirePermiso(rbac.RecClientes, rbac.AccListar), clienteHandler.Listar)
	clientes.Put("/actualizar-cliente/:cliente_id", RequirePermiso(rbac.RecClientes, rbac.AccActualizar), clienteHandler.Actualizar)
	clientes.Delete("/eliminar-cliente/:cliente_id", RequirePermiso(rbac.RecClientes, rbac.AccEliminar), clienteHandler.Eliminar)

	// Mascotas
	mascotas := protected.Group("/mascotas")
	mascotaHandler := NewMascotaHandler(deps.Invocador)
	mascotas.Post("/crear-mascota", RequirePermiso(rbac.RecMascotas, rbac.AccCrear), mascotaHandler.Crear)
	mascotas.Get("/obtener-mascota/:mascota_id", RequirePermiso(rbac.RecMascotas, rbac.AccObtener), mascotaHandler.Obtener)
	mascotas.Get("/listar-mascotas", RequirePermiso(rbac.RecMascotas, rbac.AccListar), mascotaHandler.Listar)
	mascotas.Get("/por-cliente/:cliente_id", RequirePermiso(rbac.RecMascotas, rbac.AccListar), mascotaHandler.PorCliente)
	mascotas.Put("/actualizar-mascota/:mascota_id", RequirePermiso(rbac.RecMascotas, rbac.AccActualizar), mascotaHandler.Actualizar)
	mascotas.Delete("/eliminar-mascota/:mascota_id", RequirePermiso(rbac.RecMascotas, rbac.AccEliminar), mascotaHandler.Eliminar)

	// Citas
	citas := protected.Group("/citas")
	citaHandler := NewCitaHandler(deps.Invocador, deps.Guardia)
	citas.Post("/crear-cita", RequirePermiso(rbac.RecCitas, rbac.AccCrear), citaHandler.Crear)
	citas.Get("/obtener-cita/:cita_id", RequirePermiso(rbac.RecCitas, rbac.AccObtener), citaHandler.Obtener)
	citas.Get("/listar-citas", RequirePermiso(rbac.RecCitas, rbac.AccListar), citaHandler.Listar)
	citas.Get("/listar-citas-veterinario", RequirePermiso(rbac.RecCitas, rbac.AccListarPropias), citaHandler.ListarPropias)
	citas.Put("/actualizar-cita/:cita_id", RequirePermiso(rbac.RecCitas, rbac.AccActualizar), citaHandler.Actualizar)
	citas.Put("/actualizar-estado/:cita_id", RequirePermiso(rbac.RecCitas, rbac.AccActualizarEstado), citaHandler.ActualizarEstado)
	citas.Delete("/eliminar-cita/:cita_id", RequirePermiso(rbac.RecCitas, rbac.AccEliminar), citaHandler.Eliminar)

	// Consultas
	consultas := protected.Group("/consultas")
	consultaHandler := NewConsultaHandler(deps.Invocador, deps.Consultas)
	consultas.Post("/crear-consulta", RequirePermiso(rbac.RecConsultas, rbac.AccCrear), consultaHandler.Crear)
	consultas.Get("/obtener-consulta/:consulta_id", RequirePermiso(rbac.RecConsultas, rbac.AccObtener), consultaHandler.Obtener)
	consultas.Get("/listar-consultas", RequirePermiso(rbac.RecConsultas, rbac.AccListar), consultaHandler.Listar)
	consultas.Put("/actualizar-consulta/:consulta_id", RequirePermiso(rbac.RecConsultas, rbac.AccActualizar), consultaHandler.Actualizar)
	consultas.Delete("/eliminar-consulta/:consulta_id", RequirePermiso(rbac.RecConsultas, rbac.AccEliminar), consultaHandler.Eliminar)

	// Consulta-medicamentos
	recetas := protected.Group("/consulta-medicamentos")
	cmHandler := NewConsultaMedicamentoHandler(deps.Invocador)
	recetas.Post("/agregar", RequirePermiso(rbac.RecConsultaMedicamentos, rbac.AccCrear), cmHandler.Agregar)
	recetas.Get("/listar/:consulta_id", RequirePermiso(rbac.RecConsultaMedicamentos, rbac.AccListar), cmHandler.Listar)
	recetas.Put("/actualizar", RequirePermiso(rbac.RecConsultaMedicamentos, rbac.AccActualizar), cmHandler.Actualizar)
	recetas.Delete("/eliminar/:consulta_id/:medicamento_id", RequirePermiso(rbac.RecConsultaMedicamentos, rbac.AccEliminar), cmHandler.Eliminar)

	// Facturas
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.Invocador, deps.PDF)
	facturas.Post("/crear-factura", RequirePermiso(rbac.RecFacturas, rbac.AccCrear), facturaHandler.Crear)
	facturas.Get("/obtener-factura/:factura_id", RequirePermiso(rbac.RecFacturas, rbac.AccObtener), facturaHandler.Obtener)
	facturas.Get("/listar-facturas", RequirePermiso(rbac.RecFacturas, rbac.AccListar), facturaHandler.Listar)
	facturas.Get("/descargar-pdf/:factura_id", RequirePermiso(rbac.RecFacturas, rbac.AccDescargar), facturaHandler.DescargarPDF)
	facturas.Put("/actualizar-factura/:factura_id", RequirePermiso(rbac.RecFacturas, rbac.AccActualizar), facturaHandler.Actualizar)
	facturas.Delete("/eliminar-factura/:factura_id", RequirePermiso(rbac.RecFacturas, rbac.AccEliminar), facturaHandler.Eliminar)
}
