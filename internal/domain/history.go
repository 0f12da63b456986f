package domain

// Action kinds recorded in the ledger.
const (
	ActionVendido   = "Vendido"
	ActionEliminado = "Eliminado"
	ActionAtendido  = "Atendido"
)

// HistoryEntry is one row of the append-only action ledger, read
// most-recent-first. Only the head entry is ever reversible, and only
// Eliminado entries carry a snapshot complete enough for an exact
// restore; Vendido entries reference the still-live record by id.
type HistoryEntry struct {
	ID         int64  `db:"id" json:"id"`
	Action     string `db:"action" json:"accion"`
	Subject    string `db:"subject" json:"descripcion"`
	PhoneID    int64  `db:"phone_id" json:"-"`
	Snapshot   string `db:"snapshot_json" json:"-"`
	OccurredAt string `db:"occurred_at" json:"fecha"`
}
