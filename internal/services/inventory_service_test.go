package services_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"celustock/internal/domain"
	"celustock/internal/repos"
	"celustock/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

type testServices struct {
	db     *sqlx.DB
	phones *repos.PhoneRepo
	sales  *repos.SaleRepo
	ledger *repos.LedgerRepo
	queue  *repos.QueueRepo
	inv    *services.InventoryService
	undo   *services.UndoService
	q      *services.QueueService
	stats  *services.StatsService
}

func newServices(t *testing.T) *testServices {
	t.Helper()
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	sales := repos.NewSaleRepo(db)
	ledger := repos.NewLedgerRepo(db)
	queue := repos.NewQueueRepo(db)
	var mu sync.Mutex
	return &testServices{
		db:     db,
		phones: phones,
		sales:  sales,
		ledger: ledger,
		queue:  queue,
		inv:    services.NewInventoryService(&mu, phones, ledger, sales),
		undo:   services.NewUndoService(&mu, phones, ledger, sales),
		q:      services.NewQueueService(&mu, queue, ledger),
		stats:  services.NewStatsService(phones, sales, []float64{0, 10000, 20000}, 3),
	}
}

func mustCreate(t *testing.T, s *testServices, modelo, capacidad, condicion string, precio float64) domain.Phone {
	t.Helper()
	p, err := s.inv.Create(modelo, capacidad, condicion, precio)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCreateAssignsIncreasingNeverReusedIDs(t *testing.T) {
	s := newServices(t)

	a := mustCreate(t, s, "iPhone 14", "128GB", "Nuevo", 13000)
	b := mustCreate(t, s, "iPhone 15", "256GB", "Nuevo", 17500)
	if b.ID <= a.ID {
		t.Fatalf("ids not increasing: %d then %d", a.ID, b.ID)
	}

	// Removing the newest record must not free its id.
	if _, err := s.inv.Remove(b.ID); err != nil {
		t.Fatal(err)
	}
	c := mustCreate(t, s, "iPhone 16", "128GB", "Nuevo", 19000)
	if c.ID <= b.ID {
		t.Fatalf("id %d reused after removal of %d", c.ID, b.ID)
	}
	if a.Estado != domain.EstadoDisponible {
		t.Fatalf("new records must start Disponible, got %q", a.Estado)
	}
}

func TestCreateValidation(t *testing.T) {
	s := newServices(t)

	cases := []struct {
		name                         string
		modelo, capacidad, condicion string
		precio                       float64
	}{
		{"zero price", "iPhone 14", "128GB", "Nuevo", 0},
		{"negative price", "iPhone 14", "128GB", "Nuevo", -5},
		{"empty model", "   ", "128GB", "Nuevo", 13000},
		{"bad capacity", "iPhone 14", "muchos", "Nuevo", 13000},
		{"empty condition", "iPhone 14", "128GB", "", 13000},
	}
	for _, tc := range cases {
		_, err := s.inv.Create(tc.modelo, tc.capacidad, tc.condicion, tc.precio)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: want ValidationError, got %v", tc.name, err)
		}
	}

	// Nothing may have been committed by the failed attempts.
	phones, err := s.inv.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(phones) != 0 {
		t.Fatalf("failed creates leaked %d records", len(phones))
	}
}

func TestUpdatePatchesFieldsButNotStatus(t *testing.T) {
	s := newServices(t)
	p := mustCreate(t, s, "iPhone 14", "128GB", "Nuevo", 13000)

	precio := 12500.0
	cond := "Seminuevo"
	got, err := s.inv.Update(p.ID, domain.PhonePatch{Precio: &precio, Condicion: &cond})
	if err != nil {
		t.Fatal(err)
	}
	if got.Precio != 12500 || got.Condicion != "Seminuevo" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.ID != p.ID || got.Estado != domain.EstadoDisponible || got.Modelo != "iPhone 14" {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	bad := -1.0
	if _, err := s.inv.Update(p.ID, domain.PhonePatch{Precio: &bad}); err == nil {
		t.Fatal("negative price accepted on update")
	}

	var nf *domain.NotFoundError
	if _, err := s.inv.Update(9999, domain.PhonePatch{}); !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError for unknown id, got %v", err)
	}
}

func TestSellTwiceFails(t *testing.T) {
	s := newServices(t)
	p := mustCreate(t, s, "iPhone 15", "128GB", "Nuevo", 16000)
	mustCreate(t, s, "iPhone 14", "64GB", "Nuevo", 13000)

	before, _ := s.stats.Dashboard()

	sold, err := s.inv.Sell(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if sold.Estado != domain.EstadoVendido {
		t.Fatalf("want Vendido, got %q", sold.Estado)
	}

	after, _ := s.stats.Dashboard()
	if before.Inventory.Available-after.Inventory.Available != 1 {
		t.Fatalf("available count should drop by 1: %d -> %d",
			before.Inventory.Available, after.Inventory.Available)
	}

	var ise *domain.InvalidStateError
	if _, err := s.inv.Sell(p.ID); !errors.As(err, &ise) {
		t.Fatalf("want InvalidStateError on double sell, got %v", err)
	}

	var nf *domain.NotFoundError
	if _, err := s.inv.Sell(4242); !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestRemoveThenUndoRestoresExactRecord(t *testing.T) {
	s := newServices(t)
	p := mustCreate(t, s, "iPhone 13 Pro", "512GB", "Seminuevo", 14250)

	removed, err := s.inv.Remove(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if removed.ID != p.ID {
		t.Fatalf("remove returned wrong record: %+v", removed)
	}
	if _, err := s.phones.Get(p.ID); err == nil {
		t.Fatal("record still in active set after removal")
	}

	restored, err := s.undo.UndoLast()
	if err != nil {
		t.Fatal(err)
	}
	if restored.ID != p.ID || restored.Modelo != p.Modelo || restored.Capacidad != p.Capacidad ||
		restored.Condicion != p.Condicion || restored.Precio != p.Precio || restored.Estado != p.Estado {
		t.Fatalf("restore not exact:\nwant %+v\ngot  %+v", p, restored)
	}
}

// The end-to-end lifecycle: create, sell, remove, undo. The undo of a
// removal restores the record with its prior Vendido status, not
// reset to Disponible, and inventory totals return to where they were.
func TestLifecycleSellRemoveUndo(t *testing.T) {
	s := newServices(t)

	p := mustCreate(t, s, "iPhone 15", "128GB", "Nuevo", 20000)
	if p.ID != 1 || p.Estado != domain.EstadoDisponible {
		t.Fatalf("unexpected first record: %+v", p)
	}

	if _, err := s.inv.Sell(p.ID); err != nil {
		t.Fatal(err)
	}
	head, ok, err := s.undo.PeekHead()
	if err != nil || !ok || head.Action != domain.ActionVendido {
		t.Fatalf("ledger head after sale: %+v ok=%v err=%v", head, ok, err)
	}

	st, err := s.stats.Dashboard()
	if err != nil {
		t.Fatal(err)
	}
	if st.Sales.Total != 1 || st.Sales.Revenue != 20000 {
		t.Fatalf("sales stats after sale: %+v", st.Sales)
	}

	if _, err := s.inv.Remove(p.ID); err != nil {
		t.Fatal(err)
	}
	head, ok, _ = s.undo.PeekHead()
	if !ok || head.Action != domain.ActionEliminado || head.Snapshot == "" {
		t.Fatalf("ledger head after removal: %+v", head)
	}

	restored, err := s.undo.UndoLast()
	if err != nil {
		t.Fatal(err)
	}
	if restored.ID != 1 || restored.Estado != domain.EstadoVendido {
		t.Fatalf("restored record should keep Vendido status: %+v", restored)
	}
	st, _ = s.stats.Dashboard()
	if st.Inventory.Total != 1 {
		t.Fatalf("inventory total should be back to 1, got %d", st.Inventory.Total)
	}
	// The sale itself was never undone.
	if st.Sales.Total != 1 || st.Sales.Revenue != 20000 {
		t.Fatalf("sales stats should survive remove+undo: %+v", st.Sales)
	}
}
