package handlers

import (
	"sync"

	"celustock/internal/config"
	"celustock/internal/repos"
	"celustock/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	InventoryHandler *InventoryHandler
	HistoryHandler   *HistoryHandler
	QueueHandler     *QueueHandler
	StatsHandler     *StatsHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	phoneRepo := repos.NewPhoneRepo(db)
	ledgerRepo := repos.NewLedgerRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	queueRepo := repos.NewQueueRepo(db)

	// One writer lock across inventory, undo and queue: their
	// mutations interleave through the shared ledger.
	var mu sync.Mutex

	invSvc := services.NewInventoryService(&mu, phoneRepo, ledgerRepo, saleRepo)
	undoSvc := services.NewUndoService(&mu, phoneRepo, ledgerRepo, saleRepo)
	queueSvc := services.NewQueueService(&mu, queueRepo, ledgerRepo)
	statsSvc := services.NewStatsService(phoneRepo, saleRepo, cfg.PriceSegments, cfg.TopModels)

	return &Deps{
		InventoryHandler: &InventoryHandler{Inv: invSvc},
		HistoryHandler:   &HistoryHandler{Undo: undoSvc},
		QueueHandler:     &QueueHandler{Queue: queueSvc},
		StatsHandler:     &StatsHandler{Stats: statsSvc},
	}
}
