package services_test

import (
	"errors"
	"testing"

	"celustock/internal/domain"
)

func TestQueueFIFO(t *testing.T) {
	s := newServices(t)

	names := []string{"Juan Pérez", "María González", "Carlos Rodríguez"}
	for _, n := range names {
		if _, err := s.q.Enqueue(n, "iPhone 15"); err != nil {
			t.Fatal(err)
		}
	}

	head, ok, err := s.q.PeekNext()
	if err != nil || !ok || head.Nombre != names[0] {
		t.Fatalf("peek: %+v ok=%v err=%v", head, ok, err)
	}

	for i, want := range names {
		got, err := s.q.AttendNext()
		if err != nil {
			t.Fatal(err)
		}
		if got.Nombre != want {
			t.Fatalf("attend %d: want %q, got %q", i, want, got.Nombre)
		}
	}

	if _, err := s.q.AttendNext(); !errors.Is(err, domain.ErrEmptyQueue) {
		t.Fatalf("want ErrEmptyQueue, got %v", err)
	}
	if _, ok, _ := s.q.PeekNext(); ok {
		t.Fatal("queue should be empty")
	}
}

func TestAttendAppendsLedgerEntryButNoInventoryChange(t *testing.T) {
	s := newServices(t)
	mustCreate(t, s, "iPhone 15", "128GB", "Nuevo", 16000)

	if _, err := s.q.Enqueue("Juan Pérez", "iPhone 15 128GB"); err != nil {
		t.Fatal(err)
	}
	before, _ := s.stats.Dashboard()

	if _, err := s.q.AttendNext(); err != nil {
		t.Fatal(err)
	}

	head, ok, err := s.undo.PeekHead()
	if err != nil || !ok || head.Action != domain.ActionAtendido {
		t.Fatalf("ledger head: %+v ok=%v err=%v", head, ok, err)
	}

	// Attending never sells or reserves stock.
	after, _ := s.stats.Dashboard()
	if after.Inventory.Available != before.Inventory.Available || after.Sales.Total != before.Sales.Total {
		t.Fatalf("attend changed inventory/sales: %+v -> %+v", before, after)
	}
}

func TestEnqueueValidatesName(t *testing.T) {
	s := newServices(t)
	var ve *domain.ValidationError
	if _, err := s.q.Enqueue("   ", "iPhone 15"); !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
