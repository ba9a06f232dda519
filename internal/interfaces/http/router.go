package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/auth"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/usecase"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ChamberUC    *usecase.ChamberUseCase
	SeedTypeUC   *usecase.SeedTypeUseCase
	InventoryUC  *inventory.InventoryUseCase
	WithdrawalUC *inventory.WithdrawalUseCase
	VerifyUC     *inventory.VerificationUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra as rotas da API. ADMIN cadastra produtos, pede retiradas e
// mantém câmaras; OPERATOR executa movimentações e confirma retiradas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleOperator)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Chambers (protegido; escrita só ADMIN)
	chambers := protected.Group("/chambers")
	chamberHandler := NewChamberHandler(deps.ChamberUC)
	chambers.Post("/", adminOnly, chamberHandler.Create)
	chambers.Get("/", anyRole, chamberHandler.List)
	chambers.Get("/:id", anyRole, chamberHandler.GetByID)
	chambers.Put("/:id", adminOnly, chamberHandler.Update)
	chambers.Post("/:id/locations/generate", adminOnly, chamberHandler.GenerateLocations)
	chambers.Get("/:id/locations", anyRole, chamberHandler.ListLocations)

	// Seed types (protegido; escrita só ADMIN)
	seedTypes := protected.Group("/seed-types")
	seedTypeHandler := NewSeedTypeHandler(deps.SeedTypeUC)
	seedTypes.Post("/", adminOnly, seedTypeHandler.Create)
	seedTypes.Get("/", anyRole, seedTypeHandler.List)
	seedTypes.Get("/:id", anyRole, seedTypeHandler.GetByID)

	// Products e movimentações (protegido)
	products := protected.Group("/products")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.VerifyUC)
	products.Post("/", adminOnly, inventoryHandler.CreateProduct)
	products.Get("/:id", anyRole, inventoryHandler.GetProduct)
	products.Post("/:id/move", anyRole, inventoryHandler.MoveProduct)
	products.Post("/:id/adjust", adminOnly, inventoryHandler.AdjustProduct)
	products.Delete("/:id", adminOnly, inventoryHandler.RemoveProduct)
	products.Get("/:id/movements", anyRole, inventoryHandler.ListProductMovements)

	// Withdrawals (protegido; ADMIN solicita/cancela, qualquer papel confirma)
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalUC)
	products.Post("/:id/withdrawals", adminOnly, withdrawalHandler.Request)
	products.Post("/:id/withdrawals/confirm", anyRole, withdrawalHandler.Confirm)
	products.Post("/:id/withdrawals/cancel", adminOnly, withdrawalHandler.Cancel)
	products.Get("/:id/withdrawals", anyRole, withdrawalHandler.ListByProduct)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locations.Post("/:id/validate-capacity", anyRole, inventoryHandler.ValidateCapacity)
	locations.Get("/:id/movements", anyRole, inventoryHandler.ListLocationMovements)

	// Verificação do livro-razão (protegido)
	movements := protected.Group("/movements")
	movements.Get("/pending-verification", anyRole, inventoryHandler.ListPendingVerification)
	movements.Post("/:id/verify", anyRole, inventoryHandler.VerifyMovement)
}
