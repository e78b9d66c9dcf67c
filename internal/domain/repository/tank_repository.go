package repository

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// TankRepository define el puerto de persistencia para Tank (DIP).
// GetByID incluye tanques borrados (uso administrativo); GetByLabel los
// excluye. ExistsLabel considera también los borrados: la etiqueta de un
// tanque borrado queda reservada.
type TankRepository interface {
	Create(tank *entity.Tank) error
	GetByID(id string) (*entity.Tank, error)
	GetByLabel(label string) (*entity.Tank, error)
	GetByLabelIncludingDeleted(label string) (*entity.Tank, error)
	ExistsLabel(label string) (bool, error)
	Update(tank *entity.Tank) error
	ListAvailable() ([]*entity.Tank, error)
	ListOccupied() ([]*entity.Tank, error)
	ListDeleted() ([]*entity.Tank, error)
	// GetForUpdate bloquea la fila del tanque (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción (TxRunner); serializa las escrituras
	// concurrentes sobre CurrentQuantity.
	GetForUpdate(id string) (*entity.Tank, error)
}
