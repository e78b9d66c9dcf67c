package cellar

import (
	"context"

	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
	"github.com/tu-usuario/cellar-pro/pkg/metrics"
)

// TransferUseCase mueve todo el contenido restante de un lote hacia el lote
// activo de otro tanque, en una sola unidad de trabajo: salida en origen,
// entrada en destino, ambos ajustes de tanque y la finalización del lote
// origen confirman juntos o no confirman.
type TransferUseCase struct {
	txRunner TxRunner
	ledger   *LedgerUseCase
	batches  *BatchUseCase
	types    *TypeCache
}

// NewTransferUseCase construye el coordinador.
func NewTransferUseCase(txRunner TxRunner, ledger *LedgerUseCase, batches *BatchUseCase, types *TypeCache) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, ledger: ledger, batches: batches, types: types}
}

// TransferInput entrada para una transferencia tanque a tanque.
// El destino se direcciona por etiqueta (las rutas usan etiquetas).
type TransferInput struct {
	SourceBatchID        string
	DestinationTankLabel string
	UserID               string
	Notes                string
}

// TransferResult las dos transacciones generadas por la transferencia.
type TransferResult struct {
	Outgoing *entity.Transaction
	Incoming *entity.Transaction
}

// Transfer transfiere la cantidad completa del tanque del lote origen al lote
// activo del tanque destino. El destino debe tener ya un lote activo: una
// transferencia alimenta una producción existente, no inicia una nueva.
func (uc *TransferUseCase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	var out *TransferResult
	err := uc.txRunner.Run(ctx, func(
		tankRepo repository.TankRepository,
		batchRepo repository.BatchRepository,
		txnRepo repository.TransactionRepository,
	) error {
		srcBatch, err := batchRepo.GetByID(in.SourceBatchID)
		if err != nil {
			return err
		}
		if srcBatch == nil {
			return domain.NotFound("batch", in.SourceBatchID)
		}
		if !srcBatch.IsActive() {
			return domain.Conflict("batch", srcBatch.ID, domain.RuleBatchCompleted,
				"no se puede transferir desde un lote completado")
		}

		srcTank, err := tankRepo.GetForUpdate(srcBatch.TankID)
		if err != nil {
			return err
		}
		if srcTank == nil {
			return domain.NotFound("tank", srcBatch.TankID)
		}
		quantity := srcTank.CurrentQuantity
		if !quantity.IsPositive() {
			return domain.Validation("tank", srcTank.Label, domain.RuleNothingToTransfer,
				"el tanque origen está vacío: nada que transferir")
		}

		dest, err := tankRepo.GetByLabel(in.DestinationTankLabel)
		if err != nil {
			return err
		}
		if dest == nil {
			return domain.NotFound("tank", in.DestinationTankLabel)
		}
		if dest.ID == srcTank.ID {
			return domain.Validation("tank", dest.Label, domain.RuleSameTank,
				"el tanque destino es el mismo que el origen")
		}
		destTank, err := tankRepo.GetForUpdate(dest.ID)
		if err != nil {
			return err
		}
		if destTank.CurrentBatchID == nil {
			return domain.Validation("tank", destTank.Label, domain.RuleNoActiveBatch,
				"el tanque destino no tiene un lote activo")
		}
		destBatch, err := batchRepo.GetByID(*destTank.CurrentBatchID)
		if err != nil {
			return err
		}
		if destBatch == nil {
			return domain.NotFound("batch", *destTank.CurrentBatchID)
		}
		if destTank.CurrentQuantity.Add(quantity).GreaterThan(destTank.Capacity) {
			return domain.Validation("tank", destTank.Label, domain.RuleExceedsCapacity,
				"la transferencia excede la capacidad del tanque destino")
		}

		outType, ok := uc.types.GetByName(TypeNameTransferOut)
		if !ok {
			return domain.Validation("transaction_type", TypeNameTransferOut, domain.RuleInvalidType,
				"el tipo de salida de transferencia no está configurado")
		}
		inType, ok := uc.types.GetByName(TypeNameTransferIn)
		if !ok {
			return domain.Validation("transaction_type", TypeNameTransferIn, domain.RuleInvalidType,
				"el tipo de entrada de transferencia no está configurado")
		}

		// Salida en origen (deja el tanque origen en cero) y entrada en
		// destino, cada una referenciando al tanque contraparte.
		outgoing, err := uc.ledger.RecordInTx(tankRepo, batchRepo, txnRepo, RecordTransactionInput{
			BatchID:       srcBatch.ID,
			TypeID:        outType.ID,
			Quantity:      quantity,
			UserID:        in.UserID,
			Notes:         in.Notes,
			RelatedTankID: &destTank.ID,
		})
		if err != nil {
			return err
		}
		incoming, err := uc.ledger.RecordInTx(tankRepo, batchRepo, txnRepo, RecordTransactionInput{
			BatchID:       destBatch.ID,
			TypeID:        inType.ID,
			Quantity:      quantity,
			UserID:        in.UserID,
			Notes:         in.Notes,
			RelatedTankID: &srcTank.ID,
		})
		if err != nil {
			return err
		}

		// El tanque origen ya quedó en cero: la finalización no genera merma.
		if _, err := uc.batches.CompleteInTx(tankRepo, batchRepo, txnRepo, srcBatch.ID, in.UserID); err != nil {
			return err
		}

		out = &TransferResult{Outgoing: outgoing, Incoming: incoming}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.Transfers.Inc()
	metrics.BatchesCompleted.Inc()
	return out, nil
}
