package worker

import (
	"context"
	"encoding/json"
	"testing"

	"mykonos/internal/dto"
	"mykonos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeStock records Reconciliar calls; the rest of the interface is unused by
// the worker.
type fakeStock struct {
	reconciliados []int
}

func (f *fakeStock) EnsureWebVariantes(context.Context, int) ([]model.WebVariante, error) {
	return nil, nil
}

func (f *fakeStock) StockPorSucursal(context.Context, int) ([]dto.SucursalConStockResponse, error) {
	return nil, nil
}

func (f *fakeStock) StockWebPorSucursal(context.Context, int, int) ([]dto.SucursalConStockResponse, error) {
	return nil, nil
}

func (f *fakeStock) AplicarVarianteTx(*gorm.DB, int, dto.VarianteUpdateInput) (dto.ResultadoVariante, error) {
	return dto.ResultadoVariante{}, nil
}

func (f *fakeStock) Reconciliar(_ context.Context, productID int) error {
	f.reconciliados = append(f.reconciliados, productID)
	return nil
}

func (f *fakeStock) DescuentoEfectivo(context.Context, int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func TestReconciliacionWorkerProcess(t *testing.T) {
	stock := &fakeStock{}
	w := NewReconciliacionWorker(stock)

	w.Process(context.Background(), json.RawMessage(`{"product_id": 42}`))

	assert.Equal(t, []int{42}, stock.reconciliados)
}

func TestReconciliacionWorkerPayloadInvalido(t *testing.T) {
	stock := &fakeStock{}
	w := NewReconciliacionWorker(stock)

	w.Process(context.Background(), json.RawMessage(`{no es json`))
	w.Process(context.Background(), json.RawMessage(`{"product_id": 0}`))

	assert.Empty(t, stock.reconciliados)
}

func TestProcessJobDespachaPorTipo(t *testing.T) {
	stock := &fakeStock{}
	handlers := map[string]Processor{"reconciliacion": NewReconciliacionWorker(stock)}

	raw, err := json.Marshal(Job{Type: "reconciliacion", Payload: json.RawMessage(`{"product_id": 7}`)})
	assert.NoError(t, err)
	processJob(context.Background(), QueueReconciliacion, string(raw), handlers)

	assert.Equal(t, []int{7}, stock.reconciliados)
}

func TestProcessJobTipoDesconocido(t *testing.T) {
	stock := &fakeStock{}
	handlers := map[string]Processor{"reconciliacion": NewReconciliacionWorker(stock)}

	raw, _ := json.Marshal(Job{Type: "emails", Payload: json.RawMessage(`{}`)})
	processJob(context.Background(), QueueReconciliacion, string(raw), handlers)
	processJob(context.Background(), QueueReconciliacion, "corrupto", handlers)

	assert.Empty(t, stock.reconciliados)
}
