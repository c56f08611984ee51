package service_test

import (
	"context"
	"testing"
	"time"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"
	"mykonos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCola struct {
	encolados []int
}

func (c *stubCola) Encolar(_ context.Context, productID int) error {
	c.encolados = append(c.encolados, productID)
	return nil
}

type productoFixture struct {
	productos  *stubProductoRepo
	imagenes   *stubImagenRepo
	descuentos *stubDescuentoRepo
	stock      *stubStockRepo
	cola       *stubCola
	svc        service.ProductoService
}

func newProductoFixture() *productoFixture {
	f := &productoFixture{
		productos:  newStubProductoRepo(),
		imagenes:   newStubImagenRepo(),
		descuentos: newStubDescuentoRepo(),
		stock:      newStubStockRepo(),
		cola:       &stubCola{},
	}
	stockSvc := service.NewStockService(f.stock, newStubSucursalRepo(), f.productos, f.descuentos, newStubCatalogoRepo())
	f.svc = service.NewProductoService(f.productos, f.imagenes, f.descuentos, stockSvc, f.cola)
	return f
}

func (f *productoFixture) conProducto(id int) {
	f.productos.productos[id] = &model.Producto{
		ID:          id,
		ProductName: "Remera Basica",
		Cost:        decimal.NewFromInt(1000),
		SalePrice:   decimal.NewFromInt(2500),
		State:       "active",
	}
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestActualizarSinCampos(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{})
	assert.ErrorIs(t, err, service.ErrSinCampos)
}

func TestActualizarProductoInexistente(t *testing.T) {
	f := newProductoFixture()

	_, err := f.svc.Actualizar(context.Background(), 99, dto.ActualizarProductoRequest{
		Nombre: strPtr("Remera Oversize"),
	})
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestActualizarCampos(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)

	resp, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		Nombre:    strPtr("Remera Oversize"),
		PrecioWeb: decPtr(3200),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Producto.NombreWeb)
	assert.Equal(t, "Remera Oversize", *resp.Producto.NombreWeb)
	require.NotNil(t, resp.Producto.PrecioWeb)
	assert.True(t, resp.Producto.PrecioWeb.Equal(decimal.NewFromInt(3200)))
	assert.NotNil(t, resp.Producto.LastModifiedDate)
	assert.Empty(t, resp.Variantes)
	assert.Empty(t, f.cola.encolados)
}

func TestActualizarCreaDescuento(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)
	inicio := time.Now()
	fin := inicio.Add(48 * time.Hour)

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		DiscountPercentage: decPtr(15),
		DiscountStartDate:  &inicio,
		DiscountEndDate:    &fin,
	})
	require.NoError(t, err)

	activo, err := f.descuentos.FindActivoTx(nil, 1)
	require.NoError(t, err)
	assert.True(t, activo.DiscountPercentage.Equal(decimal.NewFromInt(15)))
	assert.True(t, activo.IsActive)
	require.NotNil(t, activo.EndDate)
	assert.True(t, activo.EndDate.Equal(fin))
}

func TestActualizarDescuentoExistente(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)
	require.NoError(t, f.descuentos.CreateTx(nil, &model.Descuento{
		DiscountType:       repository.TipoDescuentoProducto,
		TargetID:           1,
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
	}))

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		DiscountPercentage: decPtr(20),
	})
	require.NoError(t, err)

	// Updated in place, not duplicated.
	assert.Len(t, f.descuentos.descuentos, 1)
	activo, err := f.descuentos.FindActivoTx(nil, 1)
	require.NoError(t, err)
	assert.True(t, activo.DiscountPercentage.Equal(decimal.NewFromInt(20)))
}

func TestActualizarDescuentoCeroDesactiva(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)
	require.NoError(t, f.descuentos.CreateTx(nil, &model.Descuento{
		DiscountType:       repository.TipoDescuentoProducto,
		TargetID:           1,
		DiscountPercentage: decimal.NewFromInt(10),
		IsActive:           true,
	}))

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		DiscountPercentage: decPtr(0),
	})
	require.NoError(t, err)

	_, err = f.descuentos.FindActivoTx(nil, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestActualizarDescuentoFueraDeRango(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		DiscountPercentage: decPtr(100),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		DiscountPercentage: decPtr(-1),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestActualizarVariantesResultadoPorEntrada(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)
	key := repository.VarianteKey{SizeID: intPtr(1)}
	f.stock.setFisico(1, key, 1, 10)
	propia := f.stock.addVariante(1, key)
	ajena := f.stock.addVariante(2, repository.VarianteKey{})

	resp, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		Variantes: []dto.VarianteUpdateInput{
			{ID: propia.ID, MostrarEnWeb: true, ConfiguracionStock: []dto.StockSucursalInput{{SucursalID: 1, CantidadAsignada: 20}}},
			{ID: ajena.ID, MostrarEnWeb: true, ConfiguracionStock: []dto.StockSucursalInput{{SucursalID: 1, CantidadAsignada: 5}}},
			{ID: 999},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Variantes, 3)
	assert.True(t, resp.Variantes[0].Applied)
	assert.Equal(t, 10, resp.Variantes[0].AppliedTotal)
	assert.False(t, resp.Variantes[1].Applied)
	assert.False(t, resp.Variantes[2].Applied)

	// One sweep queued for the whole batch.
	assert.Equal(t, []int{1}, f.cola.encolados)
}

func TestActualizarSoloCamposNoEncola(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)

	_, err := f.svc.Actualizar(context.Background(), 1, dto.ActualizarProductoRequest{
		EnTiendaOnline: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Empty(t, f.cola.encolados)
}

func TestCrearDescuentoInvalido(t *testing.T) {
	f := newProductoFixture()

	_, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		ProductName: "Remera",
		Cost:        decimal.NewFromInt(100),
		SalePrice:   decimal.NewFromInt(200),
		Discount:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestCrearSlugDuplicado(t *testing.T) {
	f := newProductoFixture()
	f.productos.productos[1] = &model.Producto{ID: 1, EnTiendaOnline: true, Slug: strPtr("remera-basica")}

	_, err := f.svc.Crear(context.Background(), dto.CrearProductoRequest{
		ProductName:    "Otra Remera",
		Cost:           decimal.NewFromInt(100),
		SalePrice:      decimal.NewFromInt(200),
		EnTiendaOnline: true,
		Slug:           strPtr("remera-basica"),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestEliminarProductoInexistente(t *testing.T) {
	f := newProductoFixture()

	err := f.svc.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestAgregarYEliminarImagen(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)

	img, err := f.svc.AgregarImagen(context.Background(), 1, dto.AgregarImagenRequest{
		ImageURL: "https://cdn.example.com/1.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, img.ProductID)

	require.NoError(t, f.svc.EliminarImagen(context.Background(), 1, img.ID))
	_, err = f.imagenes.FindByID(context.Background(), img.ID)
	assert.Error(t, err)
}

func TestEliminarImagenDeOtroProducto(t *testing.T) {
	f := newProductoFixture()
	f.conProducto(1)
	f.conProducto(2)
	img := &model.Imagen{ProductID: 2, ImageURL: "https://cdn.example.com/2.jpg"}
	require.NoError(t, f.imagenes.Create(context.Background(), img))

	err := f.svc.EliminarImagen(context.Background(), 1, img.ID)
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func boolPtr(v bool) *bool { return &v }
