package entity

// Unit representa una unidad de medida (barriles, galones, gramos...).
// Tabla de referencia inmutable: volumen para capacidad/contenido de tanques,
// peso para adiciones (levadura, lisozima).
type Unit struct {
	ID           string
	Name         string
	Abbreviation string
	IsVolume     bool
}
