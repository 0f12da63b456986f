package repos

import (
	"celustock/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OperatorRepo struct{ DB *sqlx.DB }

func NewOperatorRepo(db *sqlx.DB) *OperatorRepo { return &OperatorRepo{DB: db} }

func (r *OperatorRepo) ByEmail(email string) (*domain.Operator, error) {
	var o domain.Operator
	err := r.DB.Get(&o, `
		SELECT id, email, nombre, password_hash
		FROM operators WHERE LOWER(email) = LOWER(?)
	`, email)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OperatorRepo) BindSession(sid, operatorID string) error {
	_, err := r.DB.Exec(`
		INSERT INTO sessions(id, operator_id, last_seen)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET operator_id = excluded.operator_id, last_seen = CURRENT_TIMESTAMP
	`, sid, operatorID)
	return err
}

func (r *OperatorRepo) SessionOperator(sid string) (*domain.Operator, error) {
	var o domain.Operator
	err := r.DB.Get(&o, `
		SELECT o.id, o.email, o.nombre, o.password_hash
		FROM sessions s
		JOIN operators o ON o.id = s.operator_id
		WHERE s.id = ?
	`, sid)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OperatorRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`
		UPDATE sessions SET operator_id = NULL, last_seen = CURRENT_TIMESTAMP WHERE id = ?
	`, sid)
	return err
}
