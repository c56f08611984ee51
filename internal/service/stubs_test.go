package service_test

// In-memory repository stubs shared by the service tests. They mirror the SQL
// semantics closely enough to exercise the services without a database; the
// Tx variants ignore the (nil) transaction handle.

import (
	"context"
	"time"

	"mykonos/internal/dto"
	"mykonos/internal/model"
	"mykonos/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── StockRepository ──────────────────────────────────────────────────────────

type fisicoKey struct {
	productID int
	sizeID    int // 0 = NULL
	colorID   int
	branchID  int
}

func fk(productID int, key repository.VarianteKey, branchID int) fisicoKey {
	k := fisicoKey{productID: productID, branchID: branchID}
	if key.SizeID != nil {
		k.sizeID = *key.SizeID
	}
	if key.ColorID != nil {
		k.colorID = *key.ColorID
	}
	return k
}

type stubStockRepo struct {
	nextID        int
	fisico        map[fisicoKey]int
	variantes     map[int]*model.WebVariante
	asignaciones  map[int][]model.AsignacionSucursal
	filasSucursal []repository.FilaStockSucursal
	filasWeb      []repository.FilaStockSucursal
}

func newStubStockRepo() *stubStockRepo {
	return &stubStockRepo{
		nextID:       1,
		fisico:       make(map[fisicoKey]int),
		variantes:    make(map[int]*model.WebVariante),
		asignaciones: make(map[int][]model.AsignacionSucursal),
	}
}

func (r *stubStockRepo) setFisico(productID int, key repository.VarianteKey, branchID, qty int) {
	r.fisico[fk(productID, key, branchID)] = qty
}

func (r *stubStockRepo) addVariante(productID int, key repository.VarianteKey) *model.WebVariante {
	wv := &model.WebVariante{
		ID:        r.nextID,
		ProductID: productID,
		SizeID:    key.SizeID,
		ColorID:   key.ColorID,
		IsActive:  true,
	}
	r.nextID++
	r.variantes[wv.ID] = wv
	return wv
}

func (r *stubStockRepo) DistinctVariantes(_ context.Context, productID int) ([]repository.VarianteKey, error) {
	seen := make(map[fisicoKey]bool)
	var keys []repository.VarianteKey
	for k := range r.fisico {
		if k.productID != productID {
			continue
		}
		flat := fisicoKey{productID: k.productID, sizeID: k.sizeID, colorID: k.colorID}
		if seen[flat] {
			continue
		}
		seen[flat] = true
		key := repository.VarianteKey{}
		if k.sizeID != 0 {
			s := k.sizeID
			key.SizeID = &s
		}
		if k.colorID != 0 {
			c := k.colorID
			key.ColorID = &c
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (r *stubStockRepo) EnsureWebVariante(_ context.Context, productID int, key repository.VarianteKey) error {
	for _, wv := range r.variantes {
		if wv.ProductID == productID && intPtrEq(wv.SizeID, key.SizeID) && intPtrEq(wv.ColorID, key.ColorID) {
			return nil
		}
	}
	r.addVariante(productID, key)
	return nil
}

func (r *stubStockRepo) WebVariantesDeProducto(_ context.Context, productID int) ([]model.WebVariante, error) {
	var out []model.WebVariante
	for id := 1; id < r.nextID; id++ {
		if wv, ok := r.variantes[id]; ok && wv.ProductID == productID {
			out = append(out, *wv)
		}
	}
	return out, nil
}

func (r *stubStockRepo) StockPorSucursal(_ context.Context, _ int) ([]repository.FilaStockSucursal, error) {
	return r.filasSucursal, nil
}

func (r *stubStockRepo) StockWebPorSucursal(_ context.Context, _, _ int) ([]repository.FilaStockSucursal, error) {
	return r.filasWeb, nil
}

func (r *stubStockRepo) FindWebVariante(_ context.Context, id int) (*model.WebVariante, error) {
	wv, ok := r.variantes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return wv, nil
}

func (r *stubStockRepo) FindWebVarianteTx(_ *gorm.DB, id int) (*model.WebVariante, error) {
	return r.FindWebVariante(context.Background(), id)
}

func (r *stubStockRepo) PhysicalQuantityTx(_ *gorm.DB, productID int, key repository.VarianteKey, branchID int) (int, error) {
	return r.fisico[fk(productID, key, branchID)], nil
}

func (r *stubStockRepo) ReplaceAsignacionesTx(_ *gorm.DB, variantID int, asignaciones []model.AsignacionSucursal) error {
	r.asignaciones[variantID] = append([]model.AsignacionSucursal(nil), asignaciones...)
	return nil
}

func (r *stubStockRepo) UpdateWebVarianteTx(_ *gorm.DB, id, displayedStock int, isActive bool) error {
	wv, ok := r.variantes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	wv.DisplayedStock = displayedStock
	wv.IsActive = isActive
	return nil
}

func (r *stubStockRepo) AsignacionesPorVariante(_ context.Context, variantID int) ([]model.AsignacionSucursal, error) {
	return r.asignaciones[variantID], nil
}

func (r *stubStockRepo) DB() *gorm.DB { return nil }

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ── SucursalRepository ───────────────────────────────────────────────────────

type stubSucursalRepo struct {
	sucursales map[int]*model.Sucursal
}

func newStubSucursalRepo() *stubSucursalRepo {
	return &stubSucursalRepo{sucursales: make(map[int]*model.Sucursal)}
}

func (r *stubSucursalRepo) ListAll(_ context.Context) ([]model.Sucursal, error) {
	var out []model.Sucursal
	for _, s := range r.sucursales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSucursalRepo) FindByID(_ context.Context, id int) (*model.Sucursal, error) {
	s, ok := r.sucursales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

// ── ProductoRepository ───────────────────────────────────────────────────────

type stubProductoRepo struct {
	nextID    int
	productos map[int]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{nextID: 1, productos: make(map[int]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	p.CreationDate = time.Now()
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id int) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	var out []model.Producto
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id int) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoRepo) SlugEnUso(_ context.Context, slug string, excludeID int) (bool, error) {
	for _, p := range r.productos {
		if p.ID != excludeID && p.EnTiendaOnline && p.Slug != nil && *p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id int) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) UpdateCamposTx(_ *gorm.DB, id int, campos map[string]interface{}) error {
	p, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, val := range campos {
		switch col {
		case "nombre_web":
			s := val.(string)
			p.NombreWeb = &s
		case "descripcion_web":
			s := val.(string)
			p.DescripcionWeb = &s
		case "precio_web":
			d := val.(decimal.Decimal)
			p.PrecioWeb = &d
		case "en_tienda_online":
			p.EnTiendaOnline = val.(bool)
		case "slug":
			s := val.(string)
			p.Slug = &s
		case "last_modified_date":
			t := val.(time.Time)
			p.LastModifiedDate = &t
		}
	}
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

// ── DescuentoRepository ──────────────────────────────────────────────────────

type stubDescuentoRepo struct {
	nextID     int
	descuentos map[int]*model.Descuento
}

func newStubDescuentoRepo() *stubDescuentoRepo {
	return &stubDescuentoRepo{nextID: 1, descuentos: make(map[int]*model.Descuento)}
}

func (r *stubDescuentoRepo) MaxActivo(_ context.Context, productID int) (decimal.Decimal, error) {
	max := decimal.Zero
	now := time.Now()
	for _, d := range r.descuentos {
		if d.DiscountType != repository.TipoDescuentoProducto || d.TargetID != productID || !d.IsActive {
			continue
		}
		if d.StartDate != nil && d.StartDate.After(now) {
			continue
		}
		if d.EndDate != nil && d.EndDate.Before(now) {
			continue
		}
		if d.DiscountPercentage.GreaterThan(max) {
			max = d.DiscountPercentage
		}
	}
	return max, nil
}

func (r *stubDescuentoRepo) FindActivoTx(_ *gorm.DB, productID int) (*model.Descuento, error) {
	var found *model.Descuento
	for _, d := range r.descuentos {
		if d.DiscountType == repository.TipoDescuentoProducto && d.TargetID == productID && d.IsActive {
			if found == nil || d.ID > found.ID {
				found = d
			}
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func (r *stubDescuentoRepo) CreateTx(_ *gorm.DB, d *model.Descuento) error {
	if d.ID == 0 {
		d.ID = r.nextID
		r.nextID++
	}
	r.descuentos[d.ID] = d
	return nil
}

func (r *stubDescuentoRepo) UpdateTx(_ *gorm.DB, id int, campos map[string]interface{}) error {
	d, ok := r.descuentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, val := range campos {
		switch col {
		case "discount_percentage":
			d.DiscountPercentage = val.(decimal.Decimal)
		case "start_date":
			t := val.(time.Time)
			d.StartDate = &t
		case "end_date":
			t := val.(time.Time)
			d.EndDate = &t
		case "is_active":
			d.IsActive = val.(bool)
		}
	}
	return nil
}

func (r *stubDescuentoRepo) DeactivateTx(_ *gorm.DB, productID int, endDate time.Time) error {
	for _, d := range r.descuentos {
		if d.DiscountType == repository.TipoDescuentoProducto && d.TargetID == productID && d.IsActive {
			d.IsActive = false
			end := endDate
			d.EndDate = &end
		}
	}
	return nil
}

// ── CatalogoRepository ───────────────────────────────────────────────────────

type stubCatalogoRepo struct {
	rows        []repository.ProductoTiendaRow
	images      map[int][]string
	stockGlobal map[int]int
	stockBranch map[int]int
	variantes   map[int][]repository.VarianteTiendaRow
	colores     map[int][]repository.ColorRow
	talles      map[int][]string
	groupName   map[int]*string
	provName    map[int]*string
	barcodes    map[string]int
	provCodes   map[string]int
}

func newStubCatalogoRepo() *stubCatalogoRepo {
	return &stubCatalogoRepo{
		images:      make(map[int][]string),
		stockGlobal: make(map[int]int),
		stockBranch: make(map[int]int),
		variantes:   make(map[int][]repository.VarianteTiendaRow),
		colores:     make(map[int][]repository.ColorRow),
		talles:      make(map[int][]string),
		groupName:   make(map[int]*string),
		provName:    make(map[int]*string),
		barcodes:    make(map[string]int),
		provCodes:   make(map[string]int),
	}
}

func (r *stubCatalogoRepo) ListOnline(_ context.Context, groupIDs []int, limit, offset int) ([]repository.ProductoTiendaRow, error) {
	if offset >= len(r.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[offset:end], nil
}

func (r *stubCatalogoRepo) FindOnlineByID(_ context.Context, id int) (*repository.ProductoTiendaRow, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogoRepo) FindOnlineBySlug(_ context.Context, slug string) (*repository.ProductoTiendaRow, error) {
	for i := range r.rows {
		if r.rows[i].Slug != nil && *r.rows[i].Slug == slug {
			return &r.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogoRepo) ImagesByProduct(_ context.Context, productID int) ([]string, error) {
	return r.images[productID], nil
}

func (r *stubCatalogoRepo) StockGlobal(_ context.Context, productID int) (int, error) {
	return r.stockGlobal[productID], nil
}

func (r *stubCatalogoRepo) VariantesGlobal(_ context.Context, productID int) ([]repository.VarianteTiendaRow, error) {
	return r.variantes[productID], nil
}

func (r *stubCatalogoRepo) StockEnSucursal(_ context.Context, productID, _ int) (int, error) {
	return r.stockBranch[productID], nil
}

func (r *stubCatalogoRepo) VariantesEnSucursal(_ context.Context, productID, _ int) ([]repository.VarianteTiendaRow, error) {
	return r.variantes[productID], nil
}

func (r *stubCatalogoRepo) ColoresDeProducto(_ context.Context, productID int) ([]repository.ColorRow, error) {
	return r.colores[productID], nil
}

func (r *stubCatalogoRepo) TallesDeProducto(_ context.Context, productID int) ([]string, error) {
	return r.talles[productID], nil
}

func (r *stubCatalogoRepo) GroupName(_ context.Context, productID int) (*string, error) {
	return r.groupName[productID], nil
}

func (r *stubCatalogoRepo) ProviderName(_ context.Context, productID int) (*string, error) {
	return r.provName[productID], nil
}

func (r *stubCatalogoRepo) ProductIDByBarcode(_ context.Context, barcode string) (int, error) {
	id, ok := r.barcodes[barcode]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return id, nil
}

func (r *stubCatalogoRepo) FindByProviderCode(_ context.Context, code string) (int, error) {
	id, ok := r.provCodes[code]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return id, nil
}

// ── GrupoRepository ──────────────────────────────────────────────────────────

type stubGrupoRepo struct {
	grupos []model.Grupo
}

func (r *stubGrupoRepo) ListAll(_ context.Context) ([]model.Grupo, error) {
	return r.grupos, nil
}

func (r *stubGrupoRepo) ListRoots(_ context.Context) ([]model.Grupo, error) {
	var out []model.Grupo
	for _, g := range r.grupos {
		if g.EsRaiz() {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGrupoRepo) FindByID(_ context.Context, id int) (*model.Grupo, error) {
	for i := range r.grupos {
		if r.grupos[i].ID == id {
			return &r.grupos[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── ImagenRepository ─────────────────────────────────────────────────────────

type stubImagenRepo struct {
	nextID   int
	imagenes map[int]*model.Imagen
}

func newStubImagenRepo() *stubImagenRepo {
	return &stubImagenRepo{nextID: 1, imagenes: make(map[int]*model.Imagen)}
}

func (r *stubImagenRepo) Create(_ context.Context, img *model.Imagen) error {
	if img.ID == 0 {
		img.ID = r.nextID
		r.nextID++
	}
	r.imagenes[img.ID] = img
	return nil
}

func (r *stubImagenRepo) FindByID(_ context.Context, id int) (*model.Imagen, error) {
	img, ok := r.imagenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return img, nil
}

func (r *stubImagenRepo) Delete(_ context.Context, id int) error {
	delete(r.imagenes, id)
	return nil
}

func (r *stubImagenRepo) FirstByProduct(_ context.Context, productID int) (*model.Imagen, error) {
	for id := 1; id < r.nextID; id++ {
		if img, ok := r.imagenes[id]; ok && img.ProductID == productID {
			return img, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── WebUserRepository ────────────────────────────────────────────────────────

type stubWebUserRepo struct {
	nextID int
	users  map[int]*model.WebUser
}

func newStubWebUserRepo() *stubWebUserRepo {
	return &stubWebUserRepo{nextID: 1, users: make(map[int]*model.WebUser)}
}

func (r *stubWebUserRepo) Create(_ context.Context, u *model.WebUser) error {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubWebUserRepo) FindByID(_ context.Context, id int) (*model.WebUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubWebUserRepo) FindByUsername(_ context.Context, username string) (*model.WebUser, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWebUserRepo) FindByEmail(_ context.Context, email string) (*model.WebUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWebUserRepo) FindBySessionToken(_ context.Context, token string) (*model.WebUser, error) {
	for _, u := range r.users {
		if u.SessionToken != nil && *u.SessionToken == token && u.Status == "active" {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWebUserRepo) FindByVerificationToken(_ context.Context, token string) (*model.WebUser, error) {
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWebUserRepo) EmailEnUso(_ context.Context, email string, excludeID int) (bool, error) {
	for _, u := range r.users {
		if u.ID != excludeID && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubWebUserRepo) UpdateCampos(_ context.Context, id int, campos map[string]interface{}) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, val := range campos {
		switch col {
		case "fullname":
			s := val.(string)
			u.Fullname = &s
		case "email":
			u.Email = val.(string)
		case "email_verified":
			u.EmailVerified = val.(bool)
		case "phone":
			s := val.(string)
			u.Phone = &s
		case "domicilio":
			s := val.(string)
			u.Domicilio = &s
		case "cuit":
			s := val.(string)
			u.Cuit = &s
		case "profile_image_url":
			s := val.(string)
			u.ProfileImageURL = &s
		case "password":
			u.Password = val.(string)
		case "session_token":
			if val == nil {
				u.SessionToken = nil
			} else {
				s := val.(string)
				u.SessionToken = &s
			}
		case "verification_token":
			if val == nil {
				u.VerificationToken = nil
			} else {
				s := val.(string)
				u.VerificationToken = &s
			}
		}
	}
	return nil
}

func (r *stubWebUserRepo) SetSessionToken(_ context.Context, id int, token *string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.SessionToken = token
	return nil
}

func (r *stubWebUserRepo) ClearSessionByToken(_ context.Context, token string) (int64, error) {
	var cleared int64
	for _, u := range r.users {
		if u.SessionToken != nil && *u.SessionToken == token {
			u.SessionToken = nil
			cleared++
		}
	}
	return cleared, nil
}

// ── CarritoRepository ────────────────────────────────────────────────────────

type stubCarritoRepo struct {
	nextCartID int
	nextItemID int
	carritos   map[int]*model.Carrito
	items      map[int]*model.CarritoItem
	detalle    map[int]repository.CarritoItemRow
}

func newStubCarritoRepo() *stubCarritoRepo {
	return &stubCarritoRepo{
		nextCartID: 1,
		nextItemID: 1,
		carritos:   make(map[int]*model.Carrito),
		items:      make(map[int]*model.CarritoItem),
		detalle:    make(map[int]repository.CarritoItemRow),
	}
}

func (r *stubCarritoRepo) FindActivo(_ context.Context, webUserID int) (*model.Carrito, error) {
	for _, c := range r.carritos {
		if c.WebUserID == webUserID && c.Status == "active" {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCarritoRepo) Create(_ context.Context, c *model.Carrito) error {
	if c.ID == 0 {
		c.ID = r.nextCartID
		r.nextCartID++
	}
	r.carritos[c.ID] = c
	return nil
}

func (r *stubCarritoRepo) FindItem(_ context.Context, cartID, variantID int) (*model.CarritoItem, error) {
	for _, item := range r.items {
		if item.CartID == cartID && item.VariantID == variantID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCarritoRepo) FindItemByID(_ context.Context, itemID, cartID int) (*model.CarritoItem, error) {
	item, ok := r.items[itemID]
	if !ok || item.CartID != cartID {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubCarritoRepo) AddItem(_ context.Context, item *model.CarritoItem) error {
	if item.ID == 0 {
		item.ID = r.nextItemID
		r.nextItemID++
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubCarritoRepo) UpdateItemCantidad(_ context.Context, itemID, cantidad int) error {
	item, ok := r.items[itemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = cantidad
	return nil
}

func (r *stubCarritoRepo) RemoveItem(_ context.Context, itemID, cartID int) error {
	if item, ok := r.items[itemID]; ok && item.CartID == cartID {
		delete(r.items, itemID)
	}
	return nil
}

func (r *stubCarritoRepo) ClearItems(_ context.Context, cartID int) error {
	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *stubCarritoRepo) ItemsConDetalle(_ context.Context, cartID int) ([]repository.CarritoItemRow, error) {
	var rows []repository.CarritoItemRow
	for id := 1; id < r.nextItemID; id++ {
		item, ok := r.items[id]
		if !ok || item.CartID != cartID {
			continue
		}
		row := r.detalle[item.VariantID]
		row.ID = item.ID
		row.VariantID = item.VariantID
		row.Cantidad = item.Quantity
		rows = append(rows, row)
	}
	return rows, nil
}

// ── VentaRepository ──────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas   []model.Venta
	detalles map[int][]model.VentaDetalle
}

func (r *stubVentaRepo) ListByWebUser(_ context.Context, webUserID int) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.WebUserID != nil && *v.WebUserID == webUserID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) FindByIDAndUser(_ context.Context, saleID, webUserID int) (*model.Venta, error) {
	for i := range r.ventas {
		if r.ventas[i].ID == saleID && r.ventas[i].WebUserID != nil && *r.ventas[i].WebUserID == webUserID {
			return &r.ventas[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVentaRepo) DetailsBySale(_ context.Context, saleID int) ([]model.VentaDetalle, error) {
	return r.detalles[saleID], nil
}
