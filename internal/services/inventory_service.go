package services

import (
	"database/sql"
	"encoding/json"
	"sync"

	"celustock/internal/domain"
	"celustock/internal/repos"
	"celustock/internal/validate"
)

// InventoryService owns the phone lifecycle: create, edit, sell,
// remove. Every destructive action appends exactly one ledger entry;
// creation appends none and is therefore not undoable. The mutex is
// shared with UndoService and QueueService so each multi-statement
// mutation is a single atomic step against the in-memory model.
type InventoryService struct {
	mu     *sync.Mutex
	Phones *repos.PhoneRepo
	Ledger *repos.LedgerRepo
	Sales  *repos.SaleRepo
}

func NewInventoryService(mu *sync.Mutex, phones *repos.PhoneRepo, ledger *repos.LedgerRepo, sales *repos.SaleRepo) *InventoryService {
	return &InventoryService{mu: mu, Phones: phones, Ledger: ledger, Sales: sales}
}

// phoneSnapshot is the ledger snapshot payload for Eliminado entries.
// Phone hides created_at from API responses, so the snapshot carries
// it explicitly to make restores exact.
type phoneSnapshot struct {
	domain.Phone
	CreatedAt string `json:"creado"`
}

func (s *InventoryService) List() ([]domain.Phone, error) {
	return s.Phones.List()
}

func (s *InventoryService) Get(id int64) (domain.Phone, error) {
	p, err := s.Phones.Get(id)
	if err == sql.ErrNoRows {
		return domain.Phone{}, &domain.NotFoundError{Entity: "phone", ID: id}
	}
	return p, err
}

// Create validates everything before touching the store, then inserts
// a Disponible record with a fresh, never-reused id.
func (s *InventoryService) Create(modelo, capacidad, condicion string, precio float64) (domain.Phone, error) {
	modelo, ok := validate.Modelo(modelo)
	if !ok {
		return domain.Phone{}, &domain.ValidationError{Field: "modelo", Reason: "must be non-empty"}
	}
	capacidad, ok = validate.Capacidad(capacidad)
	if !ok {
		return domain.Phone{}, &domain.ValidationError{Field: "capacidad", Reason: "expected a size like 128GB"}
	}
	condicion, ok = validate.Condicion(condicion)
	if !ok {
		return domain.Phone{}, &domain.ValidationError{Field: "condicion", Reason: "must be non-empty"}
	}
	if !validate.Precio(precio) {
		return domain.Phone{}, &domain.ValidationError{Field: "precio", Reason: "must be greater than zero"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Phones.Insert(modelo, capacidad, condicion, precio)
}

// Update applies a partial edit under the same rules as Create. The
// id and estado are not settable through this path.
func (s *InventoryService) Update(id int64, patch domain.PhonePatch) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Phones.Get(id)
	if err == sql.ErrNoRows {
		return domain.Phone{}, &domain.NotFoundError{Entity: "phone", ID: id}
	}
	if err != nil {
		return domain.Phone{}, err
	}

	if patch.Modelo != nil {
		m, ok := validate.Modelo(*patch.Modelo)
		if !ok {
			return domain.Phone{}, &domain.ValidationError{Field: "modelo", Reason: "must be non-empty"}
		}
		p.Modelo = m
	}
	if patch.Capacidad != nil {
		c, ok := validate.Capacidad(*patch.Capacidad)
		if !ok {
			return domain.Phone{}, &domain.ValidationError{Field: "capacidad", Reason: "expected a size like 128GB"}
		}
		p.Capacidad = c
	}
	if patch.Condicion != nil {
		c, ok := validate.Condicion(*patch.Condicion)
		if !ok {
			return domain.Phone{}, &domain.ValidationError{Field: "condicion", Reason: "must be non-empty"}
		}
		p.Condicion = c
	}
	if patch.Precio != nil {
		if !validate.Precio(*patch.Precio) {
			return domain.Phone{}, &domain.ValidationError{Field: "precio", Reason: "must be greater than zero"}
		}
		p.Precio = *patch.Precio
	}

	if err := s.Phones.Update(p); err != nil {
		return domain.Phone{}, err
	}
	return s.Phones.Get(id)
}

// Sell transitions Disponible -> Vendido, writes the immutable sale
// row and the Vendido ledger entry. Selling twice fails; the record
// stays queryable as Vendido until removed.
func (s *InventoryService) Sell(id int64) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Phones.Get(id)
	if err == sql.ErrNoRows {
		return domain.Phone{}, &domain.NotFoundError{Entity: "phone", ID: id}
	}
	if err != nil {
		return domain.Phone{}, err
	}
	if p.Estado == domain.EstadoVendido {
		return domain.Phone{}, &domain.InvalidStateError{Reason: p.Label() + " is already sold"}
	}

	if err := s.Phones.SetEstado(id, domain.EstadoVendido); err != nil {
		return domain.Phone{}, err
	}
	p.Estado = domain.EstadoVendido
	if err := s.Sales.Insert(p); err != nil {
		return domain.Phone{}, err
	}
	if _, err := s.Ledger.Append(domain.ActionVendido, p.Label(), p.ID, ""); err != nil {
		return domain.Phone{}, err
	}
	return s.Phones.Get(id)
}

// Remove ejects the record from the active set regardless of status
// and stores a full snapshot in the ledger so undo can restore it
// exactly, original id and prior estado included.
func (s *InventoryService) Remove(id int64) (domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Phones.Get(id)
	if err == sql.ErrNoRows {
		return domain.Phone{}, &domain.NotFoundError{Entity: "phone", ID: id}
	}
	if err != nil {
		return domain.Phone{}, err
	}

	snapshot, err := json.Marshal(phoneSnapshot{Phone: p, CreatedAt: p.CreatedAt})
	if err != nil {
		return domain.Phone{}, err
	}
	if err := s.Phones.Delete(id); err != nil {
		return domain.Phone{}, err
	}
	if _, err := s.Ledger.Append(domain.ActionEliminado, p.Label(), p.ID, string(snapshot)); err != nil {
		return domain.Phone{}, err
	}
	return p, nil
}
