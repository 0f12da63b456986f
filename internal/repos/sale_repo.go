package repos

import (
	"fmt"

	"celustock/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// Insert writes the immutable record of one completed sale.
func (r *SaleRepo) Insert(p domain.Phone) error {
	_, err := r.db.Exec(`
		INSERT INTO sales(phone_id, modelo, capacidad, condicion, precio)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.Modelo, p.Capacidad, p.Condicion, p.Precio)
	return err
}

func (r *SaleRepo) All() ([]domain.Sale, error) {
	var out []domain.Sale
	err := r.db.Select(&out, `
		SELECT id, phone_id, modelo, capacidad, condicion, precio, sold_at
		FROM sales ORDER BY id
	`)
	return out, err
}

// RetractLatest removes the newest sale row for a phone, used when a
// Vendido ledger entry is reversed.
func (r *SaleRepo) RetractLatest(phoneID int64) error {
	res, err := r.db.Exec(`
		DELETE FROM sales
		WHERE id = (SELECT id FROM sales WHERE phone_id = ? ORDER BY id DESC LIMIT 1)
	`, phoneID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("no sale recorded for phone %d", phoneID)
	}
	return nil
}

// MonthlyRow is one month of aggregated sales, keyed YYYY-MM.
type MonthlyRow struct {
	Mes      string  `db:"mes"`
	Ventas   int     `db:"ventas"`
	Ingresos float64 `db:"ingresos"`
}

// MonthlyTotals aggregates sales count and revenue per month from the
// given YYYY-MM onwards. Months without sales produce no row; the
// stats layer fills the gaps with zeros.
func (r *SaleRepo) MonthlyTotals(fromMonth string) ([]MonthlyRow, error) {
	var out []MonthlyRow
	err := r.db.Select(&out, `
		SELECT substr(sold_at, 1, 7) AS mes,
		       COUNT(*)              AS ventas,
		       SUM(precio)           AS ingresos
		FROM sales
		WHERE substr(sold_at, 1, 7) >= ?
		GROUP BY mes
		ORDER BY mes
	`, fromMonth)
	return out, err
}
