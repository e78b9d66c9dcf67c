package cellar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
	"github.com/tu-usuario/cellar-pro/pkg/metrics"
)

// LedgerUseCase registra transacciones contra lotes activos y mantiene el
// invariante de capacidad del tanque: 0 <= contenido <= capacidad tras toda
// operación confirmada. Es el único componente que ajusta CurrentQuantity.
type LedgerUseCase struct {
	txRunner  TxRunner
	batchRepo repository.BatchRepository       // lecturas fuera de tx
	txnRepo   repository.TransactionRepository // listados fuera de tx
	types     *TypeCache
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	batchRepo repository.BatchRepository,
	txnRepo repository.TransactionRepository,
	types *TypeCache,
) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, batchRepo: batchRepo, txnRepo: txnRepo, types: types}
}

// RecordTransactionInput entrada para registrar una transacción.
// Quantity siempre no negativa: el signo del ajuste lo da el multiplicador
// del tipo. Date en cero usa la hora actual.
type RecordTransactionInput struct {
	BatchID       string
	TypeID        string
	Quantity      decimal.Decimal
	Date          time.Time
	UserID        string
	Notes         string
	RelatedTankID *string
}

// Record inicia una transacción de BD, registra el evento (RecordInTx) y hace
// Commit o Rollback. Toda falla de validación aborta la unidad completa: no
// queda ni la fila de transacción ni un ajuste parcial del tanque.
func (uc *LedgerUseCase) Record(ctx context.Context, in RecordTransactionInput) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		tankRepo repository.TankRepository,
		batchRepo repository.BatchRepository,
		txnRepo repository.TransactionRepository,
	) error {
		txn, err := uc.RecordInTx(tankRepo, batchRepo, txnRepo, in)
		if err != nil {
			return err
		}
		out = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	if t, ok := uc.types.Get(in.TypeID); ok {
		metrics.TransactionsRecorded.WithLabelValues(t.Name).Inc()
	}
	return out, nil
}

// RecordInTx registra una transacción usando los repositorios proporcionados
// (misma transacción de BD del caller). Lo invocan también el ciclo de vida de
// lotes (transacción de apertura, merma) y el coordinador de transferencias.
//
// Secuencia:
//  1. El lote debe existir y estar activo.
//  2. El tipo debe existir en la caché (catálogo vacío => Validation, no pánico).
//  3. La fila de transacción se inserta incondicionalmente para todo tipo
//     válido, incluso sin efecto sobre cantidad.
//  4. Si el tipo afecta cantidad: bloquea la fila del tanque, aplica
//     cantidad × multiplicador y valida los límites inclusive (0 y capacidad
//     exacta son legales). Sin redondeo: la precisión se conserva tal cual.
//  5. Si el tipo es un hito, estampa la fecha en el lote según su política.
func (uc *LedgerUseCase) RecordInTx(
	tankRepo repository.TankRepository,
	batchRepo repository.BatchRepository,
	txnRepo repository.TransactionRepository,
	in RecordTransactionInput,
) (*entity.Transaction, error) {
	batch, err := batchRepo.GetByID(in.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.NotFound("batch", in.BatchID)
	}
	if !batch.IsActive() {
		return nil, domain.Conflict("batch", batch.ID, domain.RuleBatchCompleted,
			"no se puede agregar una transacción a un lote completado")
	}

	txnType, ok := uc.types.Get(in.TypeID)
	if !ok {
		return nil, domain.Validation("transaction_type", in.TypeID, domain.RuleInvalidType,
			"tipo de transacción inválido")
	}
	if in.Quantity.IsNegative() {
		return nil, domain.Validation("transaction", "", domain.RuleNegativeQuantity,
			"la cantidad no puede ser negativa")
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	txn := &entity.Transaction{
		ID:            uuid.New().String(),
		BatchID:       batch.ID,
		TypeID:        txnType.ID,
		Quantity:      in.Quantity,
		UnitID:        txnType.UnitID,
		Date:          date,
		UserID:        in.UserID,
		Notes:         in.Notes,
		RelatedTankID: in.RelatedTankID,
		CreatedAt:     now,
	}
	if err := txnRepo.Create(txn); err != nil {
		return nil, err
	}

	if txnType.AffectsTankQuantity {
		tank, err := tankRepo.GetForUpdate(batch.TankID)
		if err != nil {
			return nil, err
		}
		if tank == nil {
			return nil, domain.NotFound("tank", batch.TankID)
		}
		adjustment := in.Quantity.Mul(decimal.NewFromInt(int64(txnType.QuantityMultiplier)))
		newQuantity := tank.CurrentQuantity.Add(adjustment)
		if newQuantity.IsNegative() {
			return nil, domain.Validation("tank", tank.Label, domain.RuleInsufficientQuantity,
				fmt.Sprintf("cantidad insuficiente en el tanque: actual %s, retiro %s",
					tank.CurrentQuantity, in.Quantity))
		}
		if newQuantity.GreaterThan(tank.Capacity) {
			return nil, domain.Validation("tank", tank.Label, domain.RuleExceedsCapacity,
				fmt.Sprintf("la transacción excede la capacidad del tanque: capacidad %s, resultado %s",
					tank.Capacity, newQuantity))
		}
		tank.CurrentQuantity = newQuantity
		if err := tankRepo.Update(tank); err != nil {
			return nil, err
		}
	}

	if stampMilestone(batch, txnType, date) {
		if err := batchRepo.Update(batch); err != nil {
			return nil, err
		}
	}

	return txn, nil
}

// stampMilestone estampa la fecha de hito en el lote según la política del
// tipo ("first": solo la primera vez; "latest": sobreescribe siempre).
// Devuelve true si el lote cambió.
func stampMilestone(batch *entity.Batch, t entity.TransactionType, date time.Time) bool {
	switch t.Milestone {
	case entity.MilestoneYeast:
		if batch.YeastDate == nil || t.OverwritesMilestone() {
			batch.YeastDate = &date
			return true
		}
	case entity.MilestoneLysozyme:
		if batch.LysozymeDate == nil || t.OverwritesMilestone() {
			batch.LysozymeDate = &date
			return true
		}
	}
	return false
}

// ListByBatch transacciones de un lote, más recientes primero.
func (uc *LedgerUseCase) ListByBatch(batchID string) ([]*entity.Transaction, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.NotFound("batch", batchID)
	}
	return uc.txnRepo.ListByBatch(batchID)
}

// ListByBatchAndType transacciones de un lote filtradas por tipo.
func (uc *LedgerUseCase) ListByBatchAndType(batchID, typeID string) ([]*entity.Transaction, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.NotFound("batch", batchID)
	}
	return uc.txnRepo.ListByBatchAndType(batchID, typeID)
}
