package domain

// Customer is one waiting entry in the FIFO order queue. The interest
// is advisory free text; there is no reservation against stock.
type Customer struct {
	ID            string `db:"id" json:"id"`
	Nombre        string `db:"nombre" json:"nombre"`
	ModeloInteres string `db:"modelo_interes" json:"modelo_interes"`
	CreatedAt     string `db:"created_at" json:"-"`
}
