package dto

// UnitResponse unidad de medida para formularios.
type UnitResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	IsVolume     bool   `json:"is_volume"`
}

// TransactionTypeResponse tipo de transacción para formularios.
type TransactionTypeResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description,omitempty"`
	UnitID              string `json:"unit_id"`
	AffectsTankQuantity bool   `json:"affects_tank_quantity"`
	QuantityMultiplier  int    `json:"quantity_multiplier"`
	Milestone           string `json:"milestone,omitempty"`
}
