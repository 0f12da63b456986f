package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"celustock/internal/domain"
	"celustock/internal/repos"
)

// UndoService reverses the single most recent ledger entry. Repeated
// calls walk further back through history; a popped entry is gone for
// good (no redo).
type UndoService struct {
	mu     *sync.Mutex
	Phones *repos.PhoneRepo
	Ledger *repos.LedgerRepo
	Sales  *repos.SaleRepo
}

func NewUndoService(mu *sync.Mutex, phones *repos.PhoneRepo, ledger *repos.LedgerRepo, sales *repos.SaleRepo) *UndoService {
	return &UndoService{mu: mu, Phones: phones, Ledger: ledger, Sales: sales}
}

// UndoLast pops the ledger head and reverses its effect:
//   - Eliminado: re-insert the stored snapshot, original id and prior
//     estado included;
//   - Vendido: flip the record back to Disponible and retract the
//     matching sale row; fails if the record was since removed;
//   - Atendido: not reversible (recorded for display only).
func (s *UndoService) UndoLast() (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head, err := s.Ledger.Head()
	if err == sql.ErrNoRows {
		return domain.Phone{}, domain.ErrEmptyLedger
	}
	if err != nil {
		return domain.Phone{}, err
	}

	switch head.Action {
	case domain.ActionEliminado:
		var snap phoneSnapshot
		if err := json.Unmarshal([]byte(head.Snapshot), &snap); err != nil {
			return domain.Phone{}, fmt.Errorf("corrupt snapshot in entry %d: %w", head.ID, err)
		}
		p := snap.Phone
		p.CreatedAt = snap.CreatedAt
		if err := s.Phones.InsertSnapshot(p); err != nil {
			return domain.Phone{}, err
		}
		if err := s.Ledger.Delete(head.ID); err != nil {
			return domain.Phone{}, err
		}
		return s.Phones.Get(p.ID)

	case domain.ActionVendido:
		p, err := s.Phones.Get(head.PhoneID)
		if err == sql.ErrNoRows {
			return domain.Phone{}, &domain.InconsistentStateError{
				Reason: fmt.Sprintf("phone %d from entry %d no longer exists", head.PhoneID, head.ID),
			}
		}
		if err != nil {
			return domain.Phone{}, err
		}
		if err := s.Phones.SetEstado(p.ID, domain.EstadoDisponible); err != nil {
			return domain.Phone{}, err
		}
		if err := s.Sales.RetractLatest(p.ID); err != nil {
			return domain.Phone{}, err
		}
		if err := s.Ledger.Delete(head.ID); err != nil {
			return domain.Phone{}, err
		}
		return s.Phones.Get(p.ID)

	case domain.ActionAtendido:
		return domain.Phone{}, &domain.InvalidStateError{
			Reason: "attended-customer entries cannot be undone",
		}
	}
	return domain.Phone{}, fmt.Errorf("unknown ledger action %q", head.Action)
}

// History lists entries most-recent-first for the history view.
func (s *UndoService) History(limit int) ([]domain.HistoryEntry, error) {
	return s.Ledger.List(limit)
}

// PeekHead returns the head entry without reversing it; ok is false
// when the ledger is empty.
func (s *UndoService) PeekHead() (domain.HistoryEntry, bool, error) {
	head, err := s.Ledger.Head()
	if err == sql.ErrNoRows {
		return domain.HistoryEntry{}, false, nil
	}
	if err != nil {
		return domain.HistoryEntry{}, false, err
	}
	return head, true, nil
}
