package services

import (
	"sort"
	"time"

	"celustock/internal/domain"
	"celustock/internal/repos"
)

// StatsService derives DashboardStats from the phone and sale tables.
// It is side-effect free and always recomputes from source of truth;
// empty data yields zero-valued figures, never NaN or errors.
type StatsService struct {
	Phones   *repos.PhoneRepo
	Sales    *repos.SaleRepo
	Segments []float64 // ascending bucket lower bounds
	TopN     int
}

func NewStatsService(phones *repos.PhoneRepo, sales *repos.SaleRepo, segments []float64, topN int) *StatsService {
	return &StatsService{Phones: phones, Sales: sales, Segments: segments, TopN: topN}
}

func (s *StatsService) Dashboard() (domain.DashboardStats, error) {
	phones, err := s.Phones.List()
	if err != nil {
		return domain.DashboardStats{}, err
	}
	sales, err := s.Sales.All()
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return domain.DashboardStats{
		Inventory: inventoryStats(phones, s.Segments, s.TopN),
		Sales:     salesStats(sales, s.TopN),
	}, nil
}

func inventoryStats(phones []domain.Phone, segments []float64, topN int) domain.InventoryStats {
	st := domain.InventoryStats{
		ByCondition: map[string]int{},
		ByCapacity:  map[string]int{},
	}
	st.Total = len(phones)

	counts := map[string]int{}
	for i, p := range phones {
		if p.Estado == domain.EstadoDisponible {
			st.Available++
		}
		st.Value += p.Precio
		if i == 0 || p.Precio > st.MaxPrice {
			st.MaxPrice = p.Precio
		}
		if i == 0 || p.Precio < st.MinPrice {
			st.MinPrice = p.Precio
		}
		st.ByCondition[p.Condicion]++
		st.ByCapacity[p.Capacidad]++
		counts[p.Modelo]++
	}
	if st.Total > 0 {
		st.AveragePrice = st.Value / float64(st.Total)
	}
	st.Segments = segmentCounts(phones, segments)
	st.TopModels = topByCount(counts, topN)
	return st
}

// segmentCounts histograms prices into [from, to) buckets; the last
// bucket is unbounded. Empty buckets are omitted from the output.
func segmentCounts(phones []domain.Phone, bounds []float64) []domain.PriceSegment {
	if len(bounds) == 0 {
		return nil
	}
	counts := make([]int, len(bounds))
	for _, p := range phones {
		idx := 0
		for i, from := range bounds {
			if p.Precio >= from {
				idx = i
			}
		}
		counts[idx]++
	}
	var out []domain.PriceSegment
	for i, n := range counts {
		if n == 0 {
			continue
		}
		seg := domain.PriceSegment{Desde: bounds[i], Cantidad: n}
		if i+1 < len(bounds) {
			hasta := bounds[i+1]
			seg.Hasta = &hasta
		}
		out = append(out, seg)
	}
	return out
}

func topByCount(counts map[string]int, topN int) []domain.ModelCount {
	out := make([]domain.ModelCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, domain.ModelCount{Modelo: m, Cantidad: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cantidad != out[j].Cantidad {
			return out[i].Cantidad > out[j].Cantidad
		}
		return out[i].Modelo < out[j].Modelo
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func salesStats(sales []domain.Sale, topN int) domain.SalesStats {
	st := domain.SalesStats{Total: len(sales)}

	byModel := map[string]*domain.ModelRevenue{}
	for _, v := range sales {
		st.Revenue += v.Precio
		mr, ok := byModel[v.Modelo]
		if !ok {
			mr = &domain.ModelRevenue{Modelo: v.Modelo}
			byModel[v.Modelo] = mr
		}
		mr.Cantidad++
		mr.Ingresos += v.Precio
	}
	if st.Total > 0 {
		st.AverageTicket = st.Revenue / float64(st.Total)
	}

	top := make([]domain.ModelRevenue, 0, len(byModel))
	for _, mr := range byModel {
		top = append(top, *mr)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Ingresos != top[j].Ingresos {
			return top[i].Ingresos > top[j].Ingresos
		}
		if top[i].Cantidad != top[j].Cantidad {
			return top[i].Cantidad > top[j].Cantidad
		}
		return top[i].Modelo < top[j].Modelo
	})
	if len(top) > topN {
		top = top[:topN]
	}
	st.TopModels = top
	return st
}

// Trend returns one point per month over the trailing window, ending
// with the current month. Months without sales come back zeroed so
// charts always render the full window.
func (s *StatsService) Trend(periods int) ([]domain.TrendPoint, error) {
	return s.trendAt(time.Now().UTC(), periods)
}

func (s *StatsService) trendAt(now time.Time, periods int) ([]domain.TrendPoint, error) {
	months := make([]string, periods)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(periods - 1), 0)
	for i := range months {
		months[i] = first.AddDate(0, i, 0).Format("2006-01")
	}

	rows, err := s.Sales.MonthlyTotals(months[0])
	if err != nil {
		return nil, err
	}
	byMonth := map[string]repos.MonthlyRow{}
	for _, r := range rows {
		byMonth[r.Mes] = r
	}

	out := make([]domain.TrendPoint, 0, periods)
	for _, m := range months {
		r := byMonth[m]
		out = append(out, domain.TrendPoint{Mes: m, Ventas: r.Ventas, Ingresos: r.Ingresos})
	}
	return out, nil
}
