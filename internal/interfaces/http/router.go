package http

import (
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/auth"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/sales"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/usecase"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SaleUC     *sales.UseCase
	JWTSecret  string
	// ProtectCRUD exige Bearer Token en todos los recursos CRUD.
	// Por defecto solo /users/admins está protegido.
	ProtectCRUD bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	saleHandler := NewSaleHandler(deps.SaleUC)

	// Sesiones (público)
	app.Post("/sessions", authHandler.Login)

	// Registro (público)
	app.Post("/users/register", authHandler.Register)

	// Recursos CRUD; protegibles en bloque vía AUTH_PROTECT_CRUD
	crud := app.Group("/")
	if deps.ProtectCRUD {
		crud = app.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Usuarios
	users := crud.Group("/users")
	// /users/admins siempre exige token + rol administrador
	users.Get("/admins",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdministrator),
		userHandler.ListAdmins)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Productos
	products := crud.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:barcode", productHandler.GetByBarcode)
	products.Put("/:barcode", productHandler.Update)
	products.Delete("/:barcode", productHandler.Delete)
	products.Post("/:barcode/image", productHandler.UploadImage)

	// Categorías
	categories := crud.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Ventas
	salesGroup := crud.Group("/sales")
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Detalles de venta (solo lectura; las líneas se escriben con su venta)
	details := crud.Group("/saledetails")
	details.Get("/", saleHandler.ListDetails)
	details.Get("/:id", saleHandler.GetDetailByID)
}
