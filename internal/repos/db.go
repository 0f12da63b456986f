package repos

import (
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	// sqlite takes one writer at a time, and a :memory: DSN exists
	// per connection; a single pooled connection covers both.
	db.SetMaxOpenConns(1)
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Phones (the active set; AUTOINCREMENT keeps ids monotonic and
-- never reused, even across delete + undo cycles)
CREATE TABLE IF NOT EXISTS phones(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  modelo TEXT NOT NULL,
  capacidad TEXT NOT NULL,
  condicion TEXT NOT NULL,
  precio NUMERIC NOT NULL CHECK (precio > 0),
  estado TEXT NOT NULL DEFAULT 'Disponible' CHECK (estado IN ('Disponible','Vendido')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_phones_estado ON phones(estado);
CREATE INDEX IF NOT EXISTS idx_phones_modelo ON phones(LOWER(modelo));

-- Action ledger (append-only, head = max id)
CREATE TABLE IF NOT EXISTS history(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  action TEXT NOT NULL CHECK (action IN ('Vendido','Eliminado','Atendido')),
  subject TEXT NOT NULL,
  phone_id INTEGER,
  snapshot_json TEXT,
  occurred_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Sales (immutable rows written on every Disponible -> Vendido
-- transition; retracted only by undoing that sale)
CREATE TABLE IF NOT EXISTS sales(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  phone_id INTEGER NOT NULL,
  modelo TEXT NOT NULL,
  capacidad TEXT NOT NULL,
  condicion TEXT NOT NULL,
  precio NUMERIC NOT NULL,
  sold_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at);
CREATE INDEX IF NOT EXISTS idx_sales_phone ON sales(phone_id);

-- Customer queue (FIFO by rowid)
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  modelo_interes TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Operator & sessions
CREATE TABLE IF NOT EXISTS operators(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  nombre TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_operators_email ON operators(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  operator_id TEXT NULL REFERENCES operators(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_operator ON sessions(operator_id);
`
	_, err := db.Exec(schema)
	return err
}

// Catalog used by SeedIfEmpty: model name and base price in MXN.
var seedCatalog = []struct {
	Modelo string
	Base   float64
}{
	{"iPhone 11", 7000}, {"iPhone 11 Pro", 8500}, {"iPhone 11 Pro Max", 9500},
	{"iPhone 12", 9000}, {"iPhone 12 Pro", 11000}, {"iPhone 12 Pro Max", 12000},
	{"iPhone 13", 11000}, {"iPhone 13 Pro", 14000}, {"iPhone 13 Pro Max", 16000},
	{"iPhone 14", 13000}, {"iPhone 14 Pro", 17000}, {"iPhone 14 Pro Max", 19000},
	{"iPhone 15", 16000}, {"iPhone 15 Pro", 21000}, {"iPhone 15 Pro Max", 24000},
	{"iPhone 16", 19000}, {"iPhone 16 Pro", 25000}, {"iPhone 16 Pro Max", 28000},
	{"iPhone 17", 22000}, {"iPhone 17 Pro", 29000}, {"iPhone 17 Pro Max", 32000},
}

var seedCapacities = []string{"64GB", "128GB", "256GB", "512GB", "1TB"}
var seedConditions = []string{"Nuevo", "Seminuevo"}

// SeedIfEmpty generates n phones plus a few waiting customers when the
// database has no data yet. Prices follow the shop's rule of thumb:
// capacity and Pro surcharges on the base, 25% off for Seminuevo.
func SeedIfEmpty(db *sqlx.DB, n int) error {
	var have int
	if err := db.Get(&have, `SELECT COUNT(*) FROM phones`); err != nil {
		return err
	}
	if have > 0 || n <= 0 {
		return nil
	}

	log.Printf("[seed] generating %d phones and demo customers", n)

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for i := 0; i < n; i++ {
		m := seedCatalog[rand.Intn(len(seedCatalog))]
		size := seedCapacities[rand.Intn(len(seedCapacities))]
		cond := seedConditions[rand.Intn(len(seedConditions))]

		precio := m.Base
		if strings.Contains(m.Modelo, "Pro") {
			precio += 2000
		}
		switch size {
		case "256GB":
			precio += 1500
		case "512GB":
			precio += 3000
		case "1TB":
			precio += 5000
		}
		if cond == "Seminuevo" {
			precio *= 0.75
		}

		if _, err := tx.Exec(`
			INSERT INTO phones(modelo, capacidad, condicion, precio)
			VALUES (?, ?, ?, ?)
		`, m.Modelo, size, cond, precio); err != nil {
			return err
		}
	}

	customers := []struct{ Nombre, Interes string }{
		{"Juan Pérez", "iPhone 15 Pro Max 256GB"},
		{"María González", "iPhone 14 Pro 128GB"},
		{"Carlos Rodríguez", "iPhone 15 512GB"},
	}
	for _, c := range customers {
		if _, err := tx.Exec(`
			INSERT INTO customers(id, nombre, modelo_interes) VALUES (?, ?, ?)
		`, uuid.NewString(), c.Nombre, c.Interes); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// EnsureOperator creates the shop operator account when missing.
// Safe to run on every start.
func EnsureOperator(db *sqlx.DB, email, nombre, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO operators(id, email, nombre, password_hash)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(email) DO NOTHING
	`, uuid.NewString(), email, nombre, string(hash))
	return err
}
