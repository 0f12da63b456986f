package repos

import (
	"celustock/internal/domain"

	"github.com/jmoiron/sqlx"
)

type PhoneRepo struct{ db *sqlx.DB }

func NewPhoneRepo(db *sqlx.DB) *PhoneRepo { return &PhoneRepo{db: db} }

const phoneCols = `
  id, modelo, capacidad, condicion, precio, estado,
  created_at, COALESCE(updated_at,'') AS updated_at`

// List returns the full active set, oldest first.
func (r *PhoneRepo) List() ([]domain.Phone, error) {
	var out []domain.Phone
	err := r.db.Select(&out, `SELECT `+phoneCols+` FROM phones ORDER BY id`)
	return out, err
}

// Get returns sql.ErrNoRows for ids outside the active set.
func (r *PhoneRepo) Get(id int64) (domain.Phone, error) {
	var p domain.Phone
	err := r.db.Get(&p, `SELECT `+phoneCols+` FROM phones WHERE id = ?`, id)
	return p, err
}

// Insert creates a fresh Disponible record and returns it with its
// assigned id.
func (r *PhoneRepo) Insert(modelo, capacidad, condicion string, precio float64) (domain.Phone, error) {
	res, err := r.db.Exec(`
		INSERT INTO phones(modelo, capacidad, condicion, precio)
		VALUES (?, ?, ?, ?)
	`, modelo, capacidad, condicion, precio)
	if err != nil {
		return domain.Phone{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Phone{}, err
	}
	return r.Get(id)
}

// InsertSnapshot re-inserts a removed record with its original id and
// prior status, used by undo. AUTOINCREMENT keeps the sequence above
// the restored id, so future inserts never collide.
func (r *PhoneRepo) InsertSnapshot(p domain.Phone) error {
	_, err := r.db.Exec(`
		INSERT INTO phones(id, modelo, capacidad, condicion, precio, estado, created_at)
		VALUES (?, ?, ?, ?, ?, ?, COALESCE(NULLIF(?, ''), CURRENT_TIMESTAMP))
	`, p.ID, p.Modelo, p.Capacidad, p.Condicion, p.Precio, p.Estado, p.CreatedAt)
	return err
}

// Update rewrites the editable fields; id and estado are untouched.
func (r *PhoneRepo) Update(p domain.Phone) error {
	_, err := r.db.Exec(`
		UPDATE phones
		SET modelo = ?, capacidad = ?, condicion = ?, precio = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Modelo, p.Capacidad, p.Condicion, p.Precio, p.ID)
	return err
}

// SetEstado flips the lifecycle status; callers are responsible for
// the transition being legal.
func (r *PhoneRepo) SetEstado(id int64, estado string) error {
	_, err := r.db.Exec(`
		UPDATE phones SET estado = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, estado, id)
	return err
}

// Delete ejects a record from the active set regardless of status.
func (r *PhoneRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM phones WHERE id = ?`, id)
	return err
}
