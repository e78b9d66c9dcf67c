package repository

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// BatchRepository define el puerto de persistencia para Batch.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	Update(batch *entity.Batch) error
	ListActive() ([]*entity.Batch, error)
	// ListCompleted lotes completados, más recientes primero (página de historial).
	ListCompleted() ([]*entity.Batch, error)
}
