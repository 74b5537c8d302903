package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acoves/despensa-api/internal/application/auth"
	"github.com/acoves/despensa-api/internal/application/existencia"
	"github.com/acoves/despensa-api/internal/application/usecase"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/pkg/blacklist"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlimentoUC   *usecase.AlimentoUseCase
	UbicacionUC  *usecase.UbicacionUseCase
	ExistenciaUC *existencia.UseCase
	UsuarioUC    *usecase.UsuarioUseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
	Tokens       *blacklist.Blacklist
}

// Router registra las rutas de la API. Las rutas fijas se declaran antes que
// las rutas con :id para que Fiber no las capture como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/authenticate", authHandler.Authenticate)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Tokens))

	// Alimentos (cualquier rol autenticado)
	alimentos := protected.Group("/alimentos")
	alimentoHandler := NewAlimentoHandler(deps.AlimentoUC)
	alimentos.Get("/", alimentoHandler.List)
	alimentos.Post("/", alimentoHandler.Create)
	alimentos.Get("/caducan", alimentoHandler.ListCaducan)
	alimentos.Get("/:id", alimentoHandler.GetByID)
	alimentos.Put("/:id", alimentoHandler.Update)
	alimentos.Delete("/:id", alimentoHandler.Delete)

	// Ubicaciones (cualquier rol autenticado)
	ubicaciones := protected.Group("/ubicaciones")
	ubicacionHandler := NewUbicacionHandler(deps.UbicacionUC)
	ubicaciones.Get("/", ubicacionHandler.List)
	ubicaciones.Post("/", ubicacionHandler.Create)
	ubicaciones.Get("/espacio/:tipoUbicacion", ubicacionHandler.Espacio)
	ubicaciones.Get("/:id", ubicacionHandler.GetByID)
	ubicaciones.Put("/:id", ubicacionHandler.Update)
	ubicaciones.Delete("/:id", ubicacionHandler.Delete)

	// Existencias (cualquier rol autenticado)
	existencias := protected.Group("/existencias")
	existenciaHandler := NewExistenciaHandler(deps.ExistenciaUC)
	existencias.Get("/", existenciaHandler.List)
	existencias.Post("/", existenciaHandler.Create)
	existencias.Get("/caducan/:size", existenciaHandler.ListCaducan)
	existencias.Post("/consumir", existenciaHandler.Consumir)
	existencias.Put("/mover/:id", existenciaHandler.Mover)
	existencias.Get("/:id", existenciaHandler.GetByID)
	existencias.Put("/:id", existenciaHandler.Update)
	existencias.Delete("/:id", existenciaHandler.Delete)

	// Usuarios (solo ADMINISTRADOR)
	usuarios := protected.Group("/usuarios", RequireRol(entity.RolAdministrador))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/email", usuarioHandler.GetByEmail)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
