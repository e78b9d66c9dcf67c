package cellar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
	"github.com/tu-usuario/cellar-pro/pkg/metrics"
)

// BatchUseCase ciclo de vida de lotes: Activo (inicial) -> Completado
// (terminal). Sin otros estados y sin reapertura. Un lote se crea siempre
// junto con su transacción de apertura, en una sola unidad de trabajo.
type BatchUseCase struct {
	txRunner  TxRunner
	tankRepo  repository.TankRepository  // lecturas fuera de tx
	batchRepo repository.BatchRepository // lecturas fuera de tx
	ledger    *LedgerUseCase
	types     *TypeCache
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	txRunner TxRunner,
	tankRepo repository.TankRepository,
	batchRepo repository.BatchRepository,
	ledger *LedgerUseCase,
	types *TypeCache,
) *BatchUseCase {
	return &BatchUseCase{txRunner: txRunner, tankRepo: tankRepo, batchRepo: batchRepo, ledger: ledger, types: types}
}

// StartBatchInput entrada para iniciar un lote con su llenado inicial.
type StartBatchInput struct {
	TankID          string
	Name            string
	StartDate       time.Time // cero = ahora
	TypeID          string    // tipo de la transacción de apertura (ej. Transfer In)
	InitialQuantity decimal.Decimal
	UserID          string
	Notes           string
}

// Start inicia un lote en un tanque: crea el lote, lo asigna al tanque y
// registra la transacción de apertura vía el libro (ahí ocurre la validación
// de capacidad). Si cualquier paso falla no queda nada: ni lote, ni
// transacción, ni referencia en el tanque.
func (uc *BatchUseCase) Start(ctx context.Context, in StartBatchInput) (*entity.Batch, error) {
	if in.Name == "" {
		return nil, domain.Validation("batch", "", domain.RuleInvalidType, "el nombre del lote es requerido")
	}
	var out *entity.Batch
	err := uc.txRunner.Run(ctx, func(
		tankRepo repository.TankRepository,
		batchRepo repository.BatchRepository,
		txnRepo repository.TransactionRepository,
	) error {
		tank, err := tankRepo.GetForUpdate(in.TankID)
		if err != nil {
			return err
		}
		if tank == nil {
			return domain.NotFound("tank", in.TankID)
		}
		if tank.IsDeleted() {
			return domain.Validation("tank", tank.Label, domain.RuleTankDeleted,
				"no se puede iniciar un lote en un tanque borrado")
		}
		if tank.CurrentBatchID != nil {
			return domain.Conflict("tank", tank.Label, domain.RuleTankOccupied,
				"el tanque ya tiene un lote activo")
		}

		now := time.Now()
		startDate := in.StartDate
		if startDate.IsZero() {
			startDate = now
		}
		batch := &entity.Batch{
			ID:        uuid.New().String(),
			TankID:    tank.ID,
			Name:      in.Name,
			StartDate: startDate,
			CreatedAt: now,
		}
		if err := batchRepo.Create(batch); err != nil {
			return err
		}

		// Asignar el lote antes de la transacción de apertura: el libro
		// relee el tanque dentro de la misma tx y escribe la cantidad.
		tank.CurrentBatchID = &batch.ID
		if err := tankRepo.Update(tank); err != nil {
			return err
		}

		if _, err := uc.ledger.RecordInTx(tankRepo, batchRepo, txnRepo, RecordTransactionInput{
			BatchID:  batch.ID,
			TypeID:   in.TypeID,
			Quantity: in.InitialQuantity,
			Date:     startDate,
			UserID:   in.UserID,
			Notes:    in.Notes,
		}); err != nil {
			return err
		}

		out = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.BatchesStarted.Inc()
	return out, nil
}

// Complete finaliza un lote en su propia unidad de trabajo.
func (uc *BatchUseCase) Complete(ctx context.Context, batchID, userID string) (*entity.Batch, error) {
	var out *entity.Batch
	err := uc.txRunner.Run(ctx, func(
		tankRepo repository.TankRepository,
		batchRepo repository.BatchRepository,
		txnRepo repository.TransactionRepository,
	) error {
		batch, err := uc.CompleteInTx(tankRepo, batchRepo, txnRepo, batchID, userID)
		if err != nil {
			return err
		}
		out = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.BatchesCompleted.Inc()
	return out, nil
}

// CompleteInTx finaliza un lote usando los repositorios del caller (misma
// transacción de BD). Si el tanque conserva contenido genera primero una
// merma (Waste/Drain) por exactamente esa cantidad vía el libro, luego
// estampa la finalización y libera el tanque (referencia nil, cantidad cero).
// Lo invoca también el coordinador de transferencias, cuyo tanque origen ya
// quedó en cero: en ese caso no hay merma automática.
func (uc *BatchUseCase) CompleteInTx(
	tankRepo repository.TankRepository,
	batchRepo repository.BatchRepository,
	txnRepo repository.TransactionRepository,
	batchID, userID string,
) (*entity.Batch, error) {
	batch, err := batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.NotFound("batch", batchID)
	}
	if !batch.IsActive() {
		return nil, domain.Conflict("batch", batch.ID, domain.RuleBatchCompleted,
			"el lote ya está completado")
	}

	tank, err := tankRepo.GetForUpdate(batch.TankID)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.NotFound("tank", batch.TankID)
	}

	if tank.CurrentQuantity.IsPositive() {
		wasteType, ok := uc.types.GetByName(TypeNameWaste)
		if !ok {
			return nil, domain.Validation("transaction_type", TypeNameWaste, domain.RuleInvalidType,
				"el tipo de merma no está configurado en el catálogo")
		}
		if _, err := uc.ledger.RecordInTx(tankRepo, batchRepo, txnRepo, RecordTransactionInput{
			BatchID:  batch.ID,
			TypeID:   wasteType.ID,
			Quantity: tank.CurrentQuantity,
			UserID:   userID,
			Notes:    "merma registrada automáticamente al completar el lote",
		}); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	batch.CompletionDate = &now
	if err := batchRepo.Update(batch); err != nil {
		return nil, err
	}

	if tank.CurrentBatchID != nil && *tank.CurrentBatchID == batch.ID {
		tank.CurrentBatchID = nil
		tank.CurrentQuantity = decimal.Zero
		if err := tankRepo.Update(tank); err != nil {
			return nil, err
		}
	}

	return batch, nil
}

// GetByID obtiene un lote por ID.
func (uc *BatchUseCase) GetByID(id string) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.NotFound("batch", id)
	}
	return batch, nil
}

// ListActive lotes activos.
func (uc *BatchUseCase) ListActive() ([]*entity.Batch, error) {
	return uc.batchRepo.ListActive()
}

// ListCompleted lotes completados, más recientes primero.
func (uc *BatchUseCase) ListCompleted() ([]*entity.Batch, error) {
	return uc.batchRepo.ListCompleted()
}
