package entity

import "time"

// Batch representa una producción en un tanque, desde el inicio hasta su
// finalización. Un lote activo (CompletionDate nil) ocupa exactamente un
// tanque; completado es terminal e inmutable para el libro de transacciones.
//
// Las transacciones no se guardan como colección en la entidad por
// rendimiento: consultarlas vía TransactionRepository.ListByBatch.
type Batch struct {
	ID             string
	TankID         string
	Name           string
	StartDate      time.Time
	YeastDate      *time.Time // fecha de adición de levadura (hito)
	LysozymeDate   *time.Time // fecha de adición de lisozima (hito)
	CompletionDate *time.Time
	CreatedAt      time.Time
}

// IsActive indica si el lote sigue en curso (sin fecha de finalización).
func (b *Batch) IsActive() bool {
	return b.CompletionDate == nil
}

// DaysInFermentation días en fermentación: del inicio a la finalización,
// o del inicio a ahora si el lote sigue activo.
func (b *Batch) DaysInFermentation() int {
	end := time.Now()
	if b.CompletionDate != nil {
		end = *b.CompletionDate
	}
	if end.Before(b.StartDate) {
		return 0
	}
	return int(end.Sub(b.StartDate).Hours() / 24)
}
