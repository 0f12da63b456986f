package domain

type Operator struct {
	ID     string `db:"id"`
	Email  string `db:"email"`
	Nombre string `db:"nombre"`
	Hash   string `db:"password_hash"`
}
