package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el registro de tanques
// ──────────────────────────────────────────────────────────────────────────────

type fakeTankRepo struct {
	tanks map[string]*entity.Tank // por ID
}

var _ repository.TankRepository = (*fakeTankRepo)(nil)

func newFakeTankRepo() *fakeTankRepo {
	return &fakeTankRepo{tanks: make(map[string]*entity.Tank)}
}

func (r *fakeTankRepo) Create(tank *entity.Tank) error {
	c := *tank
	r.tanks[tank.ID] = &c
	return nil
}

func (r *fakeTankRepo) GetByID(id string) (*entity.Tank, error) {
	t, ok := r.tanks[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}

func (r *fakeTankRepo) GetByLabel(label string) (*entity.Tank, error) {
	for _, t := range r.tanks {
		if t.Label == label && t.Status != entity.TankStatusDeleted {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTankRepo) GetByLabelIncludingDeleted(label string) (*entity.Tank, error) {
	for _, t := range r.tanks {
		if t.Label == label {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTankRepo) ExistsLabel(label string) (bool, error) {
	for _, t := range r.tanks {
		if t.Label == label {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTankRepo) Update(tank *entity.Tank) error {
	c := *tank
	r.tanks[tank.ID] = &c
	return nil
}

func (r *fakeTankRepo) ListAvailable() ([]*entity.Tank, error) {
	return r.filter(func(t *entity.Tank) bool {
		return t.Status != entity.TankStatusDeleted && t.CurrentBatchID == nil
	}), nil
}

func (r *fakeTankRepo) ListOccupied() ([]*entity.Tank, error) {
	return r.filter(func(t *entity.Tank) bool {
		return t.Status != entity.TankStatusDeleted && t.CurrentBatchID != nil
	}), nil
}

func (r *fakeTankRepo) ListDeleted() ([]*entity.Tank, error) {
	return r.filter(func(t *entity.Tank) bool {
		return t.Status == entity.TankStatusDeleted
	}), nil
}

func (r *fakeTankRepo) GetForUpdate(id string) (*entity.Tank, error) {
	return r.GetByID(id)
}

func (r *fakeTankRepo) filter(keep func(*entity.Tank) bool) []*entity.Tank {
	var out []*entity.Tank
	for _, t := range r.tanks {
		if keep(t) {
			c := *t
			out = append(out, &c)
		}
	}
	return out
}

type fakeUnitRepo struct {
	units map[string]entity.Unit
}

var _ repository.UnitRepository = (*fakeUnitRepo)(nil)

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: map[string]entity.Unit{
		"unit-bbl": {ID: "unit-bbl", Name: "Barrels", Abbreviation: "bbl", IsVolume: true},
		"unit-lb":  {ID: "unit-lb", Name: "Pounds", Abbreviation: "lb", IsVolume: false},
	}}
}

func (r *fakeUnitRepo) GetByID(id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUnitRepo) GetByAbbreviation(abbreviation string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.Abbreviation == abbreviation {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) ListByVolume(isVolume bool) ([]entity.Unit, error) {
	var out []entity.Unit
	for _, u := range r.units {
		if u.IsVolume == isVolume {
			out = append(out, u)
		}
	}
	return out, nil
}

func newTankUC() (*usecase.TankUseCase, *fakeTankRepo) {
	repo := newFakeTankRepo()
	return usecase.NewTankUseCase(repo, newFakeUnitRepo()), repo
}

func mustCreate(t *testing.T, uc *usecase.TankUseCase, label, capacity string) *dto.TankResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateTankRequest{
		Label:          label,
		Capacity:       decimal.RequireFromString(capacity),
		CapacityUnitID: "unit-bbl",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de tanques
// ──────────────────────────────────────────────────────────────────────────────

func TestTankCreate_NaceVacio(t *testing.T) {
	uc, _ := newTankUC()

	out := mustCreate(t, uc, "FV-01", "1500")
	assert.Equal(t, "FV-01", out.Label)
	assert.True(t, out.CurrentQuantity.IsZero(), "un tanque nuevo nace vacío")
	assert.Equal(t, entity.TankStatusActive, out.Status)
	assert.Nil(t, out.CurrentBatchID)
}

func TestTankCreate_EtiquetaDuplicada_Conflict(t *testing.T) {
	uc, _ := newTankUC()
	mustCreate(t, uc, "FV-01", "1000")

	_, err := uc.Create(dto.CreateTankRequest{
		Label:          "FV-01",
		Capacity:       decimal.RequireFromString("500"),
		CapacityUnitID: "unit-bbl",
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestTankCreate_EtiquetaInvalida_Validation(t *testing.T) {
	uc, _ := newTankUC()

	for _, label := range []string{"", "FV 01", "FV/01", "tanque#1"} {
		_, err := uc.Create(dto.CreateTankRequest{
			Label:          label,
			Capacity:       decimal.RequireFromString("500"),
			CapacityUnitID: "unit-bbl",
		})
		require.Error(t, err, "etiqueta %q debe rechazarse", label)
		assert.True(t, domain.IsValidation(err))
	}
}

func TestTankCreate_CapacidadNoPositiva_Validation(t *testing.T) {
	uc, _ := newTankUC()

	for _, capacity := range []string{"0", "-10"} {
		_, err := uc.Create(dto.CreateTankRequest{
			Label:          "FV-02",
			Capacity:       decimal.RequireFromString(capacity),
			CapacityUnitID: "unit-bbl",
		})
		require.Error(t, err, "capacidad %s debe rechazarse", capacity)
	}
}

func TestTankCreate_UnidadDePeso_Validation(t *testing.T) {
	uc, _ := newTankUC()

	_, err := uc.Create(dto.CreateTankRequest{
		Label:          "FV-03",
		Capacity:       decimal.RequireFromString("100"),
		CapacityUnitID: "unit-lb",
	})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.RuleNotVolumeUnit, derr.Rule)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestTankUpdate_RenombrarVerificaUnicidad(t *testing.T) {
	uc, _ := newTankUC()
	mustCreate(t, uc, "FV-01", "1000")
	mustCreate(t, uc, "FV-02", "1000")

	newLabel := "FV-02"
	_, err := uc.Update("FV-01", dto.UpdateTankRequest{NewLabel: &newLabel})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestTankUpdate_CapacidadBajoContenido_Validation(t *testing.T) {
	uc, repo := newTankUC()
	created := mustCreate(t, uc, "FV-01", "1000")

	// Simular contenido existente
	tank := repo.tanks[created.ID]
	tank.CurrentQuantity = decimal.RequireFromString("800")

	newCapacity := decimal.RequireFromString("500")
	_, err := uc.Update("FV-01", dto.UpdateTankRequest{NewCapacity: &newCapacity})
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.RuleCapacityBelowContents, derr.Rule)
}

func TestTankUpdate_AmpliarCapacidadConContenido(t *testing.T) {
	uc, repo := newTankUC()
	created := mustCreate(t, uc, "FV-01", "1000")
	repo.tanks[created.ID].CurrentQuantity = decimal.RequireFromString("800")

	newCapacity := decimal.RequireFromString("2000")
	out, err := uc.Update("FV-01", dto.UpdateTankRequest{NewCapacity: &newCapacity})
	require.NoError(t, err)
	assert.True(t, out.Capacity.Equal(newCapacity))
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado lógico y restauración
// ──────────────────────────────────────────────────────────────────────────────

func TestTankSoftDelete_ReservaEtiqueta(t *testing.T) {
	uc, _ := newTankUC()
	mustCreate(t, uc, "FV-01", "1000")

	deleted, err := uc.SoftDelete("FV-01")
	require.NoError(t, err)
	assert.Equal(t, entity.TankStatusDeleted, deleted.Status)
	require.NotNil(t, deleted.DeletedAt)

	// La etiqueta del tanque borrado queda reservada
	_, err = uc.Create(dto.CreateTankRequest{
		Label:          "FV-01",
		Capacity:       decimal.RequireFromString("500"),
		CapacityUnitID: "unit-bbl",
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	// Y desaparece de la consulta por etiqueta
	_, err = uc.GetByLabel("FV-01")
	assert.True(t, domain.IsNotFound(err))
}

func TestTankRestore_RevierteBorrado(t *testing.T) {
	uc, _ := newTankUC()
	mustCreate(t, uc, "FV-01", "1000")
	_, err := uc.SoftDelete("FV-01")
	require.NoError(t, err)

	restored, err := uc.Restore("FV-01")
	require.NoError(t, err)
	assert.Equal(t, entity.TankStatusActive, restored.Status)
	assert.Nil(t, restored.DeletedAt)

	out, err := uc.GetByLabel("FV-01")
	require.NoError(t, err)
	assert.Equal(t, "FV-01", out.Label)
}

func TestTankRestore_NoEstaBorrado_Conflict(t *testing.T) {
	uc, _ := newTankUC()
	mustCreate(t, uc, "FV-01", "1000")

	_, err := uc.Restore("FV-01")
	require.Error(t, err)

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.RuleTankNotDeleted, derr.Rule)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestTankListados_SeparanPorEstado(t *testing.T) {
	uc, repo := newTankUC()
	mustCreate(t, uc, "FV-LIBRE", "1000")
	occupied := mustCreate(t, uc, "FV-OCUPADO", "1000")
	mustCreate(t, uc, "FV-BORRADO", "1000")

	batchID := "batch-1"
	repo.tanks[occupied.ID].CurrentBatchID = &batchID
	_, err := uc.SoftDelete("FV-BORRADO")
	require.NoError(t, err)

	available, err := uc.ListAvailable()
	require.NoError(t, err)
	require.Len(t, available.Items, 1)
	assert.Equal(t, "FV-LIBRE", available.Items[0].Label)

	occupiedList, err := uc.ListOccupied()
	require.NoError(t, err)
	require.Len(t, occupiedList.Items, 1)
	assert.Equal(t, "FV-OCUPADO", occupiedList.Items[0].Label)

	deletedList, err := uc.ListDeleted()
	require.NoError(t, err)
	require.Len(t, deletedList.Items, 1)
	assert.Equal(t, "FV-BORRADO", deletedList.Items[0].Label)
}

func TestTankResponse_IncluyePorcentajeDeLlenado(t *testing.T) {
	uc, repo := newTankUC()
	created := mustCreate(t, uc, "FV-01", "1000")
	repo.tanks[created.ID].CurrentQuantity = decimal.RequireFromString("250")

	out, err := uc.GetByLabel("FV-01")
	require.NoError(t, err)
	assert.True(t, out.PercentFull.Equal(decimal.RequireFromString("25")),
		"250 de 1000 es 25%%, obtenido %s", out.PercentFull)
}
