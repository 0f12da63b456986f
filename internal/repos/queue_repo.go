package repos

import (
	"celustock/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type QueueRepo struct{ db *sqlx.DB }

func NewQueueRepo(db *sqlx.DB) *QueueRepo { return &QueueRepo{db: db} }

// Enqueue appends a customer at the tail and returns the stored entry.
func (r *QueueRepo) Enqueue(nombre, modeloInteres string) (domain.Customer, error) {
	c := domain.Customer{ID: uuid.NewString(), Nombre: nombre, ModeloInteres: modeloInteres}
	_, err := r.db.Exec(`
		INSERT INTO customers(id, nombre, modelo_interes) VALUES (?, ?, ?)
	`, c.ID, c.Nombre, c.ModeloInteres)
	if err != nil {
		return domain.Customer{}, err
	}
	return r.get(c.ID)
}

func (r *QueueRepo) get(id string) (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
		SELECT id, nombre, COALESCE(modelo_interes,'') AS modelo_interes, created_at
		FROM customers WHERE id = ?
	`, id)
	return c, err
}

// Head returns the longest-waiting customer; sql.ErrNoRows when empty.
// FIFO order rides on rowid, which sqlite assigns in insertion order.
func (r *QueueRepo) Head() (domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
		SELECT id, nombre, COALESCE(modelo_interes,'') AS modelo_interes, created_at
		FROM customers ORDER BY rowid LIMIT 1
	`)
	return c, err
}

func (r *QueueRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM customers WHERE id = ?`, id)
	return err
}

// List returns the waiting queue front to back.
func (r *QueueRepo) List() ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `
		SELECT id, nombre, COALESCE(modelo_interes,'') AS modelo_interes, created_at
		FROM customers ORDER BY rowid
	`)
	return out, err
}
