package domain

// DashboardStats is a pure projection over the phone and sale tables.
// It is recomputed on demand and never stored or mutated directly.
type DashboardStats struct {
	Inventory InventoryStats `json:"inventario"`
	Sales     SalesStats     `json:"ventas"`
}

type InventoryStats struct {
	Total        int            `json:"total"`
	Available    int            `json:"disponibles"`
	Value        float64        `json:"valor"`
	AveragePrice float64        `json:"precio_promedio"`
	MaxPrice     float64        `json:"precio_max"`
	MinPrice     float64        `json:"precio_min"`
	ByCondition  map[string]int `json:"por_condicion"`
	ByCapacity   map[string]int `json:"por_capacidad"`
	Segments     []PriceSegment `json:"segmentos"`
	TopModels    []ModelCount   `json:"top_modelos"`
}

type SalesStats struct {
	Total         int            `json:"total"`
	Revenue       float64        `json:"ingresos"`
	AverageTicket float64        `json:"ticket_promedio"`
	TopModels     []ModelRevenue `json:"top_modelos"`
}

// PriceSegment is a half-open [Desde, Hasta) histogram bucket. Hasta
// is nil on the last, unbounded bucket. Empty buckets are omitted.
type PriceSegment struct {
	Desde    float64  `json:"desde"`
	Hasta    *float64 `json:"hasta,omitempty"`
	Cantidad int      `json:"cantidad"`
}

type ModelCount struct {
	Modelo   string `json:"modelo"`
	Cantidad int    `json:"cantidad"`
}

type ModelRevenue struct {
	Modelo   string  `json:"modelo"`
	Cantidad int     `json:"cantidad"`
	Ingresos float64 `json:"ingresos"`
}

// TrendPoint is one month of sales actuals for the reports chart.
// Goal comparison and percentage rendering stay in the display layer.
type TrendPoint struct {
	Mes      string  `json:"mes"` // YYYY-MM
	Ventas   int     `json:"ventas"`
	Ingresos float64 `json:"ingresos"`
}
