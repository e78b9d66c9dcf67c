package repository

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// TransactionTypeRepository define el puerto para el catálogo de tipos.
// ListAll alimenta la caché en memoria al arranque; GetByName lo usan
// setup y datos de prueba.
type TransactionTypeRepository interface {
	ListAll() ([]entity.TransactionType, error)
	GetByName(name string) (*entity.TransactionType, error)
}
