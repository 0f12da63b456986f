package domain

// Estado values a phone can hold. Removal is not a status: removed
// records leave the active set entirely and only survive as a ledger
// snapshot until undone.
const (
	EstadoDisponible = "Disponible"
	EstadoVendido    = "Vendido"
)

type Phone struct {
	ID        int64   `db:"id" json:"id"`
	Modelo    string  `db:"modelo" json:"modelo"`
	Capacidad string  `db:"capacidad" json:"capacidad"`
	Condicion string  `db:"condicion" json:"condicion"` // Nuevo | Seminuevo (open set)
	Precio    float64 `db:"precio" json:"precio"`
	Estado    string  `db:"estado" json:"estado"`
	CreatedAt string  `db:"created_at" json:"-"`
	UpdatedAt string  `db:"updated_at" json:"-"`
}

// Label is the human-readable description carried by ledger entries.
func (p Phone) Label() string {
	return p.Modelo + " " + p.Capacidad
}

// PhonePatch carries the fields an update may change. Nil means
// "leave as is". ID and Estado are deliberately absent: the id is
// immutable and status only moves through Sell/Remove/Undo.
type PhonePatch struct {
	Modelo    *string  `json:"modelo"`
	Capacidad *string  `json:"capacidad"`
	Condicion *string  `json:"condicion"`
	Precio    *float64 `json:"precio"`
}

// Sale is the immutable record written when a phone transitions to
// Vendido. It survives later removal of the live record, so sales
// figures never shrink when sold stock is cleaned out.
type Sale struct {
	ID        int64   `db:"id" json:"id"`
	PhoneID   int64   `db:"phone_id" json:"telefono_id"`
	Modelo    string  `db:"modelo" json:"modelo"`
	Capacidad string  `db:"capacidad" json:"capacidad"`
	Condicion string  `db:"condicion" json:"condicion"`
	Precio    float64 `db:"precio" json:"precio"`
	SoldAt    string  `db:"sold_at" json:"fecha"`
}
