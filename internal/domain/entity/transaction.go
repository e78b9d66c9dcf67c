package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction registro inmutable de un evento sobre un lote: adiciones,
// retiros, transferencias o notas. Se crea una vez y nunca se modifica ni
// borra; es la pista de auditoría de la que el contenido del tanque es
// derivable, aunque el sistema lo mantenga denormalizado en Tank para lectura.
//
// Ejemplos:
//   - Yeast Addition: 50 g
//   - Transfer Out: 10 bbl hacia otro tanque (RelatedTankID)
//   - Waste/Drain: 2 bbl
type Transaction struct {
	ID            string
	BatchID       string
	TypeID        string
	Quantity      decimal.Decimal // siempre no negativa; el signo lo da el tipo
	UnitID        string
	Date          time.Time
	UserID        string
	Notes         string
	RelatedTankID *string // tanque contraparte en transferencias; nil si no aplica
	CreatedAt     time.Time
}
