package repos

import (
	"celustock/internal/domain"

	"github.com/jmoiron/sqlx"
)

type LedgerRepo struct{ db *sqlx.DB }

func NewLedgerRepo(db *sqlx.DB) *LedgerRepo { return &LedgerRepo{db: db} }

const ledgerCols = `
  id, action, subject,
  COALESCE(phone_id, 0) AS phone_id,
  COALESCE(snapshot_json, '') AS snapshot_json,
  occurred_at`

// Append records one action at the head of the ledger.
func (r *LedgerRepo) Append(action, subject string, phoneID int64, snapshot string) (domain.HistoryEntry, error) {
	res, err := r.db.Exec(`
		INSERT INTO history(action, subject, phone_id, snapshot_json)
		VALUES (?, ?, NULLIF(?, 0), NULLIF(?, ''))
	`, action, subject, phoneID, snapshot)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return r.get(id)
}

func (r *LedgerRepo) get(id int64) (domain.HistoryEntry, error) {
	var e domain.HistoryEntry
	err := r.db.Get(&e, `SELECT `+ledgerCols+` FROM history WHERE id = ?`, id)
	return e, err
}

// Head returns the most recent entry; sql.ErrNoRows when empty.
func (r *LedgerRepo) Head() (domain.HistoryEntry, error) {
	var e domain.HistoryEntry
	err := r.db.Get(&e, `SELECT `+ledgerCols+` FROM history ORDER BY id DESC LIMIT 1`)
	return e, err
}

// Delete pops a reversed entry. Popped entries are gone for good.
func (r *LedgerRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM history WHERE id = ?`, id)
	return err
}

// List returns entries most-recent-first for the history view.
func (r *LedgerRepo) List(limit int) ([]domain.HistoryEntry, error) {
	var out []domain.HistoryEntry
	err := r.db.Select(&out, `
		SELECT `+ledgerCols+` FROM history ORDER BY id DESC LIMIT ?
	`, limit)
	return out, err
}
