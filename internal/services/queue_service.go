package services

import (
	"database/sql"
	"sync"

	"celustock/internal/domain"
	"celustock/internal/repos"
	"celustock/internal/validate"
)

// QueueService admits and serves waiting customers in FIFO order.
// Attending a customer is deliberately independent of inventory: no
// lookup, no reservation. The caller sequences a sale separately.
type QueueService struct {
	mu     *sync.Mutex
	Queue  *repos.QueueRepo
	Ledger *repos.LedgerRepo
}

func NewQueueService(mu *sync.Mutex, queue *repos.QueueRepo, ledger *repos.LedgerRepo) *QueueService {
	return &QueueService{mu: mu, Queue: queue, Ledger: ledger}
}

func (s *QueueService) Enqueue(nombre, modeloInteres string) (domain.Customer, error) {
	nombre, ok := validate.Nombre(nombre)
	if !ok {
		return domain.Customer{}, &domain.ValidationError{Field: "nombre", Reason: "must be non-empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Queue.Enqueue(nombre, modeloInteres)
}

// AttendNext removes and returns the longest-waiting customer and
// logs an Atendido ledger entry.
func (s *QueueService) AttendNext() (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.Queue.Head()
	if err == sql.ErrNoRows {
		return domain.Customer{}, domain.ErrEmptyQueue
	}
	if err != nil {
		return domain.Customer{}, err
	}
	if err := s.Queue.Delete(c.ID); err != nil {
		return domain.Customer{}, err
	}
	subject := c.Nombre
	if c.ModeloInteres != "" {
		subject += " - " + c.ModeloInteres
	}
	if _, err := s.Ledger.Append(domain.ActionAtendido, subject, 0, ""); err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// PeekNext returns the head without serving it; ok is false when the
// queue is empty.
func (s *QueueService) PeekNext() (domain.Customer, bool, error) {
	c, err := s.Queue.Head()
	if err == sql.ErrNoRows {
		return domain.Customer{}, false, nil
	}
	if err != nil {
		return domain.Customer{}, false, err
	}
	return c, true, nil
}

func (s *QueueService) List() ([]domain.Customer, error) {
	return s.Queue.List()
}
