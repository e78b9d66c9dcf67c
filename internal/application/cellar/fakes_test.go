package cellar_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con snapshot/restore: el fakeTxRunner deshace todas las
// escrituras cuando la función falla, emulando el rollback de PostgreSQL. Así
// los tests verifican el todo-o-nada de las secuencias multi-paso sin una BD.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	tanks   map[string]*entity.Tank
	batches map[string]*entity.Batch
	txns    []*entity.Transaction
}

func newMemStore() *memStore {
	return &memStore{
		tanks:   make(map[string]*entity.Tank),
		batches: make(map[string]*entity.Batch),
	}
}

func copyTank(t *entity.Tank) *entity.Tank {
	c := *t
	if t.CurrentBatchID != nil {
		id := *t.CurrentBatchID
		c.CurrentBatchID = &id
	}
	if t.DeletedAt != nil {
		d := *t.DeletedAt
		c.DeletedAt = &d
	}
	return &c
}

func copyBatch(b *entity.Batch) *entity.Batch {
	c := *b
	if b.YeastDate != nil {
		d := *b.YeastDate
		c.YeastDate = &d
	}
	if b.LysozymeDate != nil {
		d := *b.LysozymeDate
		c.LysozymeDate = &d
	}
	if b.CompletionDate != nil {
		d := *b.CompletionDate
		c.CompletionDate = &d
	}
	return &c
}

func copyTxn(t *entity.Transaction) *entity.Transaction {
	c := *t
	if t.RelatedTankID != nil {
		id := *t.RelatedTankID
		c.RelatedTankID = &id
	}
	return &c
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for id, t := range s.tanks {
		snap.tanks[id] = copyTank(t)
	}
	for id, b := range s.batches {
		snap.batches[id] = copyBatch(b)
	}
	for _, t := range s.txns {
		snap.txns = append(snap.txns, copyTxn(t))
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.tanks = snap.tanks
	s.batches = snap.batches
	s.txns = snap.txns
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake sobre el almacén
// ──────────────────────────────────────────────────────────────────────────────

type memTankRepo struct{ s *memStore }

var _ repository.TankRepository = (*memTankRepo)(nil)

func (r *memTankRepo) Create(tank *entity.Tank) error {
	for _, t := range r.s.tanks {
		if t.Label == tank.Label {
			return fmt.Errorf("duplicate label %q", tank.Label)
		}
	}
	r.s.tanks[tank.ID] = copyTank(tank)
	return nil
}

func (r *memTankRepo) GetByID(id string) (*entity.Tank, error) {
	t, ok := r.s.tanks[id]
	if !ok {
		return nil, nil
	}
	return copyTank(t), nil
}

func (r *memTankRepo) GetByLabel(label string) (*entity.Tank, error) {
	for _, t := range r.s.tanks {
		if t.Label == label && t.Status != entity.TankStatusDeleted {
			return copyTank(t), nil
		}
	}
	return nil, nil
}

func (r *memTankRepo) GetByLabelIncludingDeleted(label string) (*entity.Tank, error) {
	for _, t := range r.s.tanks {
		if t.Label == label {
			return copyTank(t), nil
		}
	}
	return nil, nil
}

func (r *memTankRepo) ExistsLabel(label string) (bool, error) {
	for _, t := range r.s.tanks {
		if t.Label == label {
			return true, nil
		}
	}
	return false, nil
}

func (r *memTankRepo) Update(tank *entity.Tank) error {
	if _, ok := r.s.tanks[tank.ID]; !ok {
		return fmt.Errorf("tank %s not found", tank.ID)
	}
	r.s.tanks[tank.ID] = copyTank(tank)
	return nil
}

func (r *memTankRepo) ListAvailable() ([]*entity.Tank, error) {
	return r.list(func(t *entity.Tank) bool {
		return t.Status != entity.TankStatusDeleted && t.CurrentBatchID == nil
	}), nil
}

func (r *memTankRepo) ListOccupied() ([]*entity.Tank, error) {
	return r.list(func(t *entity.Tank) bool {
		return t.Status != entity.TankStatusDeleted && t.CurrentBatchID != nil
	}), nil
}

func (r *memTankRepo) ListDeleted() ([]*entity.Tank, error) {
	return r.list(func(t *entity.Tank) bool {
		return t.Status == entity.TankStatusDeleted
	}), nil
}

func (r *memTankRepo) GetForUpdate(id string) (*entity.Tank, error) {
	return r.GetByID(id)
}

func (r *memTankRepo) list(keep func(*entity.Tank) bool) []*entity.Tank {
	var out []*entity.Tank
	for _, t := range r.s.tanks {
		if keep(t) {
			out = append(out, copyTank(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

type memBatchRepo struct{ s *memStore }

var _ repository.BatchRepository = (*memBatchRepo)(nil)

func (r *memBatchRepo) Create(batch *entity.Batch) error {
	r.s.batches[batch.ID] = copyBatch(batch)
	return nil
}

func (r *memBatchRepo) GetByID(id string) (*entity.Batch, error) {
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	return copyBatch(b), nil
}

func (r *memBatchRepo) Update(batch *entity.Batch) error {
	if _, ok := r.s.batches[batch.ID]; !ok {
		return fmt.Errorf("batch %s not found", batch.ID)
	}
	r.s.batches[batch.ID] = copyBatch(batch)
	return nil
}

func (r *memBatchRepo) ListActive() ([]*entity.Batch, error) {
	return r.list(func(b *entity.Batch) bool { return b.CompletionDate == nil }), nil
}

func (r *memBatchRepo) ListCompleted() ([]*entity.Batch, error) {
	out := r.list(func(b *entity.Batch) bool { return b.CompletionDate != nil })
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletionDate.After(*out[j].CompletionDate)
	})
	return out, nil
}

func (r *memBatchRepo) list(keep func(*entity.Batch) bool) []*entity.Batch {
	var out []*entity.Batch
	for _, b := range r.s.batches {
		if keep(b) {
			out = append(out, copyBatch(b))
		}
	}
	return out
}

type memTxnRepo struct{ s *memStore }

var _ repository.TransactionRepository = (*memTxnRepo)(nil)

func (r *memTxnRepo) Create(txn *entity.Transaction) error {
	r.s.txns = append(r.s.txns, copyTxn(txn))
	return nil
}

func (r *memTxnRepo) ListByBatch(batchID string) ([]*entity.Transaction, error) {
	return r.list(func(t *entity.Transaction) bool { return t.BatchID == batchID }), nil
}

func (r *memTxnRepo) ListByBatchAndType(batchID, typeID string) ([]*entity.Transaction, error) {
	return r.list(func(t *entity.Transaction) bool {
		return t.BatchID == batchID && t.TypeID == typeID
	}), nil
}

func (r *memTxnRepo) list(keep func(*entity.Transaction) bool) []*entity.Transaction {
	var out []*entity.Transaction
	for _, t := range r.s.txns {
		if keep(t) {
			out = append(out, copyTxn(t))
		}
	}
	// Más recientes primero, como el repositorio real
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// fakeTxRunner emula el TxRunner de PostgreSQL: snapshot antes de ejecutar,
// restore si la función devuelve error.
type fakeTxRunner struct{ s *memStore }

var _ cellar.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	tankRepo repository.TankRepository,
	batchRepo repository.BatchRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	snap := f.s.snapshot()
	err := fn(&memTankRepo{s: f.s}, &memBatchRepo{s: f.s}, &memTxnRepo{s: f.s})
	if err != nil {
		f.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y arnés de pruebas
// ──────────────────────────────────────────────────────────────────────────────

const (
	typeIDTransferIn  = "type-transfer-in"
	typeIDTransferOut = "type-transfer-out"
	typeIDWaste       = "type-waste"
	typeIDSample      = "type-sample"
	typeIDYeast       = "type-yeast"
	typeIDLysozyme    = "type-lysozyme"
	typeIDNote        = "type-note"

	unitIDBarrels = "unit-bbl"
	unitIDPounds  = "unit-lb"
)

// Catálogo sustituto: lisozima con política "latest" para cubrir ambas
// políticas de hito en los tests.
func testCatalog() []entity.TransactionType {
	return []entity.TransactionType{
		{ID: typeIDTransferIn, Name: cellar.TypeNameTransferIn, UnitID: unitIDBarrels, AffectsTankQuantity: true, QuantityMultiplier: entity.MultiplierAddition},
		{ID: typeIDTransferOut, Name: cellar.TypeNameTransferOut, UnitID: unitIDBarrels, AffectsTankQuantity: true, QuantityMultiplier: entity.MultiplierRemoval},
		{ID: typeIDWaste, Name: cellar.TypeNameWaste, UnitID: unitIDBarrels, AffectsTankQuantity: true, QuantityMultiplier: entity.MultiplierRemoval},
		{ID: typeIDSample, Name: "Sample", UnitID: unitIDBarrels, AffectsTankQuantity: true, QuantityMultiplier: entity.MultiplierRemoval},
		{ID: typeIDYeast, Name: "Yeast Addition", UnitID: unitIDPounds, Milestone: entity.MilestoneYeast, MilestonePolicy: entity.MilestonePolicyFirst},
		{ID: typeIDLysozyme, Name: "Lysozyme Addition", UnitID: unitIDPounds, Milestone: entity.MilestoneLysozyme, MilestonePolicy: entity.MilestonePolicyLatest},
		{ID: typeIDNote, Name: "Note", UnitID: unitIDBarrels},
	}
}

type harness struct {
	store    *memStore
	types    *cellar.TypeCache
	ledger   *cellar.LedgerUseCase
	batches  *cellar.BatchUseCase
	transfer *cellar.TransferUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := newMemStore()
	types := cellar.NewTypeCache(testCatalog())
	runner := &fakeTxRunner{s: store}
	batchRepo := &memBatchRepo{s: store}
	txnRepo := &memTxnRepo{s: store}
	tankRepo := &memTankRepo{s: store}

	ledger := cellar.NewLedgerUseCase(runner, batchRepo, txnRepo, types)
	batches := cellar.NewBatchUseCase(runner, tankRepo, batchRepo, ledger, types)
	transfer := cellar.NewTransferUseCase(runner, ledger, batches, types)

	return &harness{store: store, types: types, ledger: ledger, batches: batches, transfer: transfer}
}

// seedTank inserta un tanque activo vacío con la capacidad dada.
func (h *harness) seedTank(t *testing.T, label, capacity string) *entity.Tank {
	t.Helper()
	tank := &entity.Tank{
		ID:              uuid.New().String(),
		Label:           label,
		Capacity:        dec(t, capacity),
		CapacityUnitID:  unitIDBarrels,
		CurrentQuantity: decimal.Zero,
		Status:          entity.TankStatusActive,
		CreatedAt:       time.Now(),
	}
	h.store.tanks[tank.ID] = tank
	return tank
}

// startBatch inicia un lote con Transfer In por la cantidad dada.
func (h *harness) startBatch(t *testing.T, tankID, name, quantity string) *entity.Batch {
	t.Helper()
	batch, err := h.batches.Start(testCtx(), cellar.StartBatchInput{
		TankID:          tankID,
		Name:            name,
		TypeID:          typeIDTransferIn,
		InitialQuantity: dec(t, quantity),
		UserID:          "user-test",
	})
	require.NoError(t, err, "el inicio del lote de fixture no debe fallar")
	return batch
}

func (h *harness) tank(t *testing.T, id string) *entity.Tank {
	t.Helper()
	tank, ok := h.store.tanks[id]
	require.True(t, ok, "el tanque %s debe existir en el almacén", id)
	return tank
}

func (h *harness) batch(t *testing.T, id string) *entity.Batch {
	t.Helper()
	b, ok := h.store.batches[id]
	require.True(t, ok, "el lote %s debe existir en el almacén", id)
	return b
}

func (h *harness) txnsOf(batchID string) []*entity.Transaction {
	var out []*entity.Transaction
	for _, txn := range h.store.txns {
		if txn.BatchID == batchID {
			out = append(out, txn)
		}
	}
	return out
}

func testCtx() context.Context {
	return context.Background()
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// requireDecEqual compara decimales por valor (999.990 == 999.99) con mensaje legible.
func requireDecEqual(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"esperado %s, obtenido %s — %v", want, got, msgAndArgs)
}
