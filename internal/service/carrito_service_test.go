package service_test

import (
	"context"
	"testing"

	"mykonos/internal/dto"
	"mykonos/internal/repository"
	"mykonos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type carritoFixture struct {
	carritos *stubCarritoRepo
	stock    *stubStockRepo
	svc      service.CarritoService
}

func newCarritoFixture() *carritoFixture {
	f := &carritoFixture{
		carritos: newStubCarritoRepo(),
		stock:    newStubStockRepo(),
	}
	f.svc = service.NewCarritoService(f.carritos, f.stock)
	return f
}

// conVariante publishes a web variant with the given displayed stock.
func (f *carritoFixture) conVariante(productID, displayedStock int) int {
	wv := f.stock.addVariante(productID, repository.VarianteKey{})
	wv.DisplayedStock = displayedStock
	f.carritos.detalle[wv.ID] = repository.CarritoItemRow{
		ProductID: productID,
		NombreWeb: strPtr("Remera Basica"),
	}
	return wv.ID
}

func TestObtenerCarritoCreaUnoActivo(t *testing.T) {
	f := newCarritoFixture()

	carrito, err := f.svc.ObtenerCarrito(context.Background(), 7)
	require.NoError(t, err)
	assert.NotZero(t, carrito.ID)
	assert.Empty(t, carrito.Items)

	// A second call reuses the same cart.
	otra, err := f.svc.ObtenerCarrito(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, carrito.ID, otra.ID)
}

func TestAgregarItem(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)

	carrito, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{
		VariantID: variante,
		Cantidad:  2,
	})
	require.NoError(t, err)

	require.Len(t, carrito.Items, 1)
	assert.Equal(t, 2, carrito.Items[0].Cantidad)
	assert.False(t, carrito.Items[0].Clamped)
}

func TestAgregarItemClampaAlStockPublicado(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)

	carrito, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{
		VariantID: variante,
		Cantidad:  10,
	})
	require.NoError(t, err)

	require.Len(t, carrito.Items, 1)
	assert.Equal(t, 5, carrito.Items[0].Cantidad)
	assert.True(t, carrito.Items[0].Clamped)
}

func TestAgregarItemAcumulaCantidad(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 10)

	_, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 2})
	require.NoError(t, err)
	carrito, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 3})
	require.NoError(t, err)

	// Merged into one line, not duplicated.
	require.Len(t, carrito.Items, 1)
	assert.Equal(t, 5, carrito.Items[0].Cantidad)
}

func TestAgregarItemAcumuladoClampa(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)

	_, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 4})
	require.NoError(t, err)
	carrito, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 4})
	require.NoError(t, err)

	require.Len(t, carrito.Items, 1)
	assert.Equal(t, 5, carrito.Items[0].Cantidad)
	assert.True(t, carrito.Items[0].Clamped)
}

func TestAgregarItemVarianteInactiva(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)
	f.stock.variantes[variante].IsActive = false

	_, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 1})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestAgregarItemSinStock(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 0)

	_, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 1})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestAgregarItemVarianteInexistente(t *testing.T) {
	f := newCarritoFixture()

	_, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: 99, Cantidad: 1})
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestActualizarItemClampa(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)
	carrito, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 2})
	require.NoError(t, err)

	actualizado, err := f.svc.ActualizarItem(context.Background(), 7, carrito.Items[0].ID, dto.ActualizarItemRequest{Cantidad: 9})
	require.NoError(t, err)

	require.Len(t, actualizado.Items, 1)
	assert.Equal(t, 5, actualizado.Items[0].Cantidad)
	assert.True(t, actualizado.Items[0].Clamped)
}

func TestActualizarItemACeroLoElimina(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)
	carrito, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 2})
	require.NoError(t, err)

	// Displayed stock collapsed to zero; any requested quantity clamps to zero
	// and the line disappears.
	f.stock.variantes[variante].DisplayedStock = 0
	actualizado, err := f.svc.ActualizarItem(context.Background(), 7, carrito.Items[0].ID, dto.ActualizarItemRequest{Cantidad: 2})
	require.NoError(t, err)
	assert.Empty(t, actualizado.Items)
}

func TestEliminarItemInexistente(t *testing.T) {
	f := newCarritoFixture()

	_, err := f.svc.EliminarItem(context.Background(), 7, 99)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestVaciar(t *testing.T) {
	f := newCarritoFixture()
	variante := f.conVariante(1, 5)
	_, err := f.svc.AgregarItem(context.Background(), 7, dto.AgregarItemRequest{VariantID: variante, Cantidad: 2})
	require.NoError(t, err)

	require.NoError(t, f.svc.Vaciar(context.Background(), 7))

	carrito, err := f.svc.ObtenerCarrito(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, carrito.Items)
}
