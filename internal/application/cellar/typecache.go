package cellar

import (
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// Nombres de tipos de transacción que el motor usa internamente: la merma
// automática al completar un lote y el par de una transferencia entre tanques.
// Deben existir en el catálogo sembrado.
const (
	TypeNameTransferIn  = "Transfer In"
	TypeNameTransferOut = "Transfer Out"
	TypeNameWaste       = "Waste/Drain"
)

// TypeCache caché en memoria del catálogo de tipos de transacción.
// Se construye una vez al arranque, antes de servir la primera operación del
// libro, y es inmutable después: segura para lecturas concurrentes y se
// inyecta en los casos de uso en lugar de un singleton mutable.
//
// Si el catálogo aún no fue sembrado la caché queda vacía: todas las búsquedas
// fallan y el libro responde Validation ("tipo inválido"), nunca un pánico.
type TypeCache struct {
	byID   map[string]entity.TransactionType
	byName map[string]entity.TransactionType
}

// NewTypeCache construye la caché a partir de un catálogo ya cargado
// (también usada por los tests con catálogos sustitutos).
func NewTypeCache(types []entity.TransactionType) *TypeCache {
	c := &TypeCache{
		byID:   make(map[string]entity.TransactionType, len(types)),
		byName: make(map[string]entity.TransactionType, len(types)),
	}
	for _, t := range types {
		c.byID[t.ID] = t
		c.byName[t.Name] = t
	}
	return c
}

// LoadTypeCache lee todos los tipos del repositorio y construye la caché.
// Llamar una sola vez al arranque, después de migraciones/seed.
func LoadTypeCache(repo repository.TransactionTypeRepository) (*TypeCache, error) {
	types, err := repo.ListAll()
	if err != nil {
		return nil, err
	}
	return NewTypeCache(types), nil
}

// Get devuelve el tipo por ID; ok=false si no existe.
func (c *TypeCache) Get(id string) (entity.TransactionType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// GetByName devuelve el tipo por nombre; ok=false si no existe.
func (c *TypeCache) GetByName(name string) (entity.TransactionType, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Len cantidad de tipos cargados.
func (c *TypeCache) Len() int {
	return len(c.byID)
}

// All devuelve una copia del catálogo (para listados en formularios).
func (c *TypeCache) All() []entity.TransactionType {
	out := make([]entity.TransactionType, 0, len(c.byID))
	for _, t := range c.byID {
		out = append(out, t)
	}
	return out
}
