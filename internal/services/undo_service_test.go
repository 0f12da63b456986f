package services_test

import (
	"errors"
	"testing"

	"celustock/internal/domain"
)

func TestUndoEmptyLedger(t *testing.T) {
	s := newServices(t)
	if _, err := s.undo.UndoLast(); !errors.Is(err, domain.ErrEmptyLedger) {
		t.Fatalf("want ErrEmptyLedger, got %v", err)
	}
}

func TestUndoSaleFlipsBackAndRetractsSale(t *testing.T) {
	s := newServices(t)
	p := mustCreate(t, s, "iPhone 15 Pro", "256GB", "Nuevo", 22500)

	if _, err := s.inv.Sell(p.ID); err != nil {
		t.Fatal(err)
	}
	reverted, err := s.undo.UndoLast()
	if err != nil {
		t.Fatal(err)
	}
	if reverted.ID != p.ID || reverted.Estado != domain.EstadoDisponible {
		t.Fatalf("want Disponible again, got %+v", reverted)
	}

	st, err := s.stats.Dashboard()
	if err != nil {
		t.Fatal(err)
	}
	if st.Sales.Total != 0 || st.Sales.Revenue != 0 {
		t.Fatalf("sale should be retracted: %+v", st.Sales)
	}

	// Ledger is empty again; a second undo has nothing to pop.
	if _, err := s.undo.UndoLast(); !errors.Is(err, domain.ErrEmptyLedger) {
		t.Fatalf("want ErrEmptyLedger after walking back, got %v", err)
	}
}

func TestUndoSaleWithMissingRecordIsInconsistent(t *testing.T) {
	s := newServices(t)
	p := mustCreate(t, s, "iPhone 14", "128GB", "Nuevo", 13000)

	if _, err := s.inv.Sell(p.ID); err != nil {
		t.Fatal(err)
	}
	// Eject the row behind the ledger's back; the Vendido head now
	// references a record that is gone.
	if err := s.phones.Delete(p.ID); err != nil {
		t.Fatal(err)
	}

	var ice *domain.InconsistentStateError
	if _, err := s.undo.UndoLast(); !errors.As(err, &ice) {
		t.Fatalf("want InconsistentStateError, got %v", err)
	}
}

func TestUndoWalksBackThroughHistory(t *testing.T) {
	s := newServices(t)
	a := mustCreate(t, s, "iPhone 14", "64GB", "Nuevo", 13000)
	b := mustCreate(t, s, "iPhone 15", "128GB", "Nuevo", 16000)

	if _, err := s.inv.Sell(a.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.inv.Remove(b.ID); err != nil {
		t.Fatal(err)
	}

	// Head is b's removal; first undo restores b.
	first, err := s.undo.UndoLast()
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != b.ID {
		t.Fatalf("first undo should restore %d, got %d", b.ID, first.ID)
	}
	// Second undo reaches a's sale.
	second, err := s.undo.UndoLast()
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != a.ID || second.Estado != domain.EstadoDisponible {
		t.Fatalf("second undo should revert %d to Disponible, got %+v", a.ID, second)
	}
}

func TestUndoAttendedEntryIsNotReversible(t *testing.T) {
	s := newServices(t)
	if _, err := s.q.Enqueue("Juan Pérez", "iPhone 15 Pro Max 256GB"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.q.AttendNext(); err != nil {
		t.Fatal(err)
	}

	var ise *domain.InvalidStateError
	if _, err := s.undo.UndoLast(); !errors.As(err, &ise) {
		t.Fatalf("want InvalidStateError for attended head, got %v", err)
	}
}
