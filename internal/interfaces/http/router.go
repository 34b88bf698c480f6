package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorsur/bodega-api/internal/application/auth"
	"github.com/gestorsur/bodega-api/internal/application/catalog"
	"github.com/gestorsur/bodega-api/internal/application/inventory"
	"github.com/gestorsur/bodega-api/internal/application/party"
	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	CustomerUC *party.CustomerUseCase
	SupplierUC *party.SupplierUseCase
	EntryUC    *inventory.EntryUseCase
	ExitUC     *inventory.ExitUseCase
	StockUC    *inventory.StockUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; escritura solo admin/bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Update)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Inventory: entradas, salidas y stock (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.EntryUC, deps.ExitUC, deps.StockUC, deps.Log)
	invGroup.Get("/", inventoryHandler.ListStock)
	invGroup.Get("/stock/:productID", inventoryHandler.GetStock)
	invGroup.Post("/entries", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.CreateEntry)
	invGroup.Get("/entries", inventoryHandler.ListEntries)
	invGroup.Get("/entries/:id", inventoryHandler.GetEntry)
	invGroup.Delete("/entries/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.DeleteEntry)
	invGroup.Post("/exits", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleVendedor), inventoryHandler.CreateExit)
	invGroup.Get("/exits", inventoryHandler.ListExits)
	invGroup.Get("/exits/:id", inventoryHandler.GetExit)
	invGroup.Delete("/exits/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.DeleteExit)
}
