package entity

// Multiplicadores de cantidad por tipo de transacción.
const (
	MultiplierAddition = 1  // suma al contenido del tanque (Transfer In)
	MultiplierRemoval  = -1 // resta del contenido (Transfer Out, Waste, Sample)
	MultiplierNone     = 0  // no afecta cantidad (notas, hitos)
)

// Hitos de lote que un tipo de transacción puede estampar.
const (
	MilestoneNone     = ""
	MilestoneYeast    = "yeast"
	MilestoneLysozyme = "lysozyme"
)

// Políticas de estampado de hito.
const (
	// MilestonePolicyFirst estampa la fecha solo la primera vez.
	MilestonePolicyFirst = "first"
	// MilestonePolicyLatest sobreescribe la fecha en cada transacción del tipo.
	MilestonePolicyLatest = "latest"
)

// TransactionType catálogo de tipos de transacción (lookup, cargado una vez).
// AffectsTankQuantity y QuantityMultiplier determinan el ajuste sobre el
// contenido del tanque; Milestone/MilestonePolicy el estampado de fechas
// en el lote.
type TransactionType struct {
	ID                  string
	Name                string
	Description         string
	UnitID              string
	AffectsTankQuantity bool
	QuantityMultiplier  int    // +1 adición, -1 retiro, 0 sin efecto
	Milestone           string // MilestoneYeast, MilestoneLysozyme o vacío
	MilestonePolicy     string // "first" | "latest"; vacío equivale a "first"
}

// IsAddition indica si el tipo suma contenido al tanque.
func (t TransactionType) IsAddition() bool {
	return t.AffectsTankQuantity && t.QuantityMultiplier > 0
}

// IsRemoval indica si el tipo resta contenido del tanque.
func (t TransactionType) IsRemoval() bool {
	return t.AffectsTankQuantity && t.QuantityMultiplier < 0
}

// OverwritesMilestone indica si la política del tipo sobreescribe una fecha
// de hito ya estampada.
func (t TransactionType) OverwritesMilestone() bool {
	return t.MilestonePolicy == MilestonePolicyLatest
}
