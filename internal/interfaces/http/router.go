package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TankUC     *usecase.TankUseCase
	LookupUC   *usecase.LookupUseCase
	BatchUC    *cellar.BatchUseCase
	LedgerUC   *cellar.LedgerUseCase
	TransferUC *cellar.TransferUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
// Las rutas fijas (available, occupied, deleted, active, completed, start)
// van antes que los parámetros :label / :id para que Fiber no las capture.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tanks (protegido)
	tanks := protected.Group("/tanks")
	tankHandler := NewTankHandler(deps.TankUC)
	tanks.Post("/", tankHandler.Create)
	tanks.Get("/available", tankHandler.ListAvailable)
	tanks.Get("/occupied", tankHandler.ListOccupied)
	tanks.Get("/deleted", tankHandler.ListDeleted)
	tanks.Get("/:label", tankHandler.GetByLabel)
	tanks.Put("/:label", tankHandler.Update)
	// Borrado y restauración quedan reservados a administradores
	tanks.Delete("/:label", RequireRole("admin"), tankHandler.Delete)
	tanks.Post("/:label/restore", RequireRole("admin"), tankHandler.Restore)

	// Batches (protegido)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	txnHandler := NewTransactionHandler(deps.LedgerUC, deps.TransferUC)
	batches.Post("/start", batchHandler.Start)
	batches.Get("/active", batchHandler.ListActive)
	batches.Get("/completed", batchHandler.ListCompleted)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Post("/:id/complete", batchHandler.Complete)
	batches.Post("/:id/transactions", txnHandler.Record)
	batches.Get("/:id/transactions", txnHandler.ListByBatch)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transfers.Post("/", txnHandler.Transfer)

	// Lookups (protegido)
	lookups := protected.Group("/lookups")
	lookupHandler := NewLookupHandler(deps.LookupUC)
	lookups.Get("/units", lookupHandler.ListVolumeUnits)
	lookups.Get("/transaction-types", lookupHandler.ListTransactionTypes)
}
