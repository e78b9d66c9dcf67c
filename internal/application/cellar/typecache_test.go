package cellar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
)

func TestTypeCache_BusquedaPorIDYNombre(t *testing.T) {
	cache := cellar.NewTypeCache(testCatalog())

	byID, ok := cache.Get(typeIDWaste)
	require.True(t, ok)
	assert.Equal(t, cellar.TypeNameWaste, byID.Name)

	byName, ok := cache.GetByName(cellar.TypeNameTransferIn)
	require.True(t, ok)
	assert.Equal(t, typeIDTransferIn, byName.ID)

	assert.Equal(t, len(testCatalog()), cache.Len())
}

func TestTypeCache_TipoDesconocido(t *testing.T) {
	cache := cellar.NewTypeCache(testCatalog())

	_, ok := cache.Get("no-existe")
	assert.False(t, ok)
	_, ok = cache.GetByName("No Existe")
	assert.False(t, ok)
}

// Catálogo sin sembrar: caché vacía, búsquedas fallan sin pánico.
func TestTypeCache_CatalogoVacio(t *testing.T) {
	cache := cellar.NewTypeCache(nil)

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.GetByName(cellar.TypeNameWaste)
	assert.False(t, ok)
	assert.Empty(t, cache.All())
}

func TestTypeCache_AllDevuelveCopia(t *testing.T) {
	cache := cellar.NewTypeCache(testCatalog())

	all := cache.All()
	require.NotEmpty(t, all)
	all[0].Name = "mutado"

	// La caché no debe verse afectada por mutaciones del slice devuelto
	_, ok := cache.GetByName("mutado")
	assert.False(t, ok)
}
