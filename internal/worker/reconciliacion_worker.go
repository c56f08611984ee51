package worker

import (
	"context"
	"encoding/json"

	"mykonos/internal/service"

	"github.com/rs/zerolog/log"
)

// ReconciliacionJobPayload is the job envelope sent to QueueReconciliacion.
type ReconciliacionJobPayload struct {
	ProductID int `json:"product_id"`
}

// ReconciliacionWorker re-clamps a product's web stock assignments against
// current physical stock. Enqueued after every variant update to close the
// window between the in-transaction clamp and the commit.
type ReconciliacionWorker struct {
	stock service.StockService
}

func NewReconciliacionWorker(stock service.StockService) *ReconciliacionWorker {
	return &ReconciliacionWorker{stock: stock}
}

func (w *ReconciliacionWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReconciliacionJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reconciliacion_worker: invalid payload")
		return
	}
	if payload.ProductID <= 0 {
		log.Warn().Msg("reconciliacion_worker: missing product_id — skipping")
		return
	}

	if err := w.stock.Reconciliar(ctx, payload.ProductID); err != nil {
		log.Error().Err(err).Int("product_id", payload.ProductID).
			Msg("reconciliacion_worker: sweep failed")
		return
	}
	log.Info().Int("product_id", payload.ProductID).Msg("reconciliacion_worker: sweep completed")
}
