package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-balance-api/internal/application/auth"
	"github.com/jhoicas/asset-balance-api/internal/application/balance"
	"github.com/jhoicas/asset-balance-api/internal/application/usecase"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC  *auth.SessionUseCase
	BalanceUC  *balance.UseCase
	BaseUC     *usecase.BaseUseCase
	AssetUC    *usecase.AssetUseCase
	TransferUC *usecase.TransferUseCase
	MovementUC *usecase.MovementUseCase
	Defaults   QueryDefaults
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.SessionUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con rol)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleCommander, entity.RoleLogistics))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/role", authHandler.SwitchRole)
	protected.Get("/auth/me", authHandler.Me)

	baseHandler := NewBaseHandler(deps.BaseUC)
	protected.Get("/bases", baseHandler.List)
	protected.Get("/bases/:id", baseHandler.GetByID)

	dashboardHandler := NewDashboardHandler(deps.BalanceUC, deps.Defaults)
	protected.Get("/dashboard/balance", dashboardHandler.GetBalance)
	protected.Get("/dashboard/balance/report", dashboardHandler.GetReport)

	assetHandler := NewAssetHandler(deps.AssetUC)
	protected.Get("/assets", assetHandler.List)

	transferHandler := NewTransferHandler(deps.TransferUC)
	protected.Get("/transfers", transferHandler.List)

	movementHandler := NewMovementHandler(deps.MovementUC, deps.Defaults)
	protected.Get("/movements", movementHandler.List)
}
