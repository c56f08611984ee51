// Package registry exposes a static description of the relational schema:
// table names, exported column names and foreign key references. It backs the
// /api/admin/schema documentation endpoint and the model-layer integrity
// tests; nothing here talks to the database.
package registry

import "sort"

// FK describes one foreign key column: the table and column it references.
type FK struct {
	Column    string `json:"column"`
	RefTable  string `json:"ref_table"`
	RefColumn string `json:"ref_column"`
}

// Table is the metadata of one table. Columns are listed in schema order.
type Table struct {
	Name        string   `json:"name"`
	Columns     []string `json:"columns"`
	ForeignKeys []FK     `json:"foreign_keys,omitempty"`
}

var tables = map[string]Table{
	"products": {
		Name: "products",
		Columns: []string{
			"id", "product_name", "description", "cost", "sale_price",
			"provider_code", "group_id", "provider_id", "brand_id", "tax",
			"discount", "original_price", "discount_percentage",
			"discount_amount", "has_discount", "comments", "state",
			"en_tienda_online", "nombre_web", "descripcion_web", "slug",
			"precio_web", "creation_date", "last_modified_date",
		},
		ForeignKeys: []FK{
			{Column: "group_id", RefTable: "groups", RefColumn: "id"},
			{Column: "provider_id", RefTable: "entities", RefColumn: "id"},
			{Column: "brand_id", RefTable: "brands", RefColumn: "id"},
		},
	},
	"groups": {
		Name:    "groups",
		Columns: []string{"id", "group_name", "parent_group_id", "marked_as_root"},
		ForeignKeys: []FK{
			{Column: "parent_group_id", RefTable: "groups", RefColumn: "id"},
		},
	},
	"sizes": {
		Name:    "sizes",
		Columns: []string{"id", "size_name"},
	},
	"colors": {
		Name:    "colors",
		Columns: []string{"id", "color_name", "color_hex"},
	},
	"product_sizes": {
		Name:    "product_sizes",
		Columns: []string{"id", "product_id", "size_id"},
		ForeignKeys: []FK{
			{Column: "product_id", RefTable: "products", RefColumn: "id"},
			{Column: "size_id", RefTable: "sizes", RefColumn: "id"},
		},
	},
	"product_colors": {
		Name:    "product_colors",
		Columns: []string{"id", "product_id", "color_id"},
		ForeignKeys: []FK{
			{Column: "product_id", RefTable: "products", RefColumn: "id"},
			{Column: "color_id", RefTable: "colors", RefColumn: "id"},
		},
	},
	"storage": {
		Name:    "storage",
		Columns: []string{"id", "name", "address", "phone", "status"},
	},
	"warehouse_stock_variants": {
		Name: "warehouse_stock_variants",
		Columns: []string{
			"id", "product_id", "size_id", "color_id", "branch_id",
			"quantity", "variant_barcode",
		},
		ForeignKeys: []FK{
			{Column: "product_id", RefTable: "products", RefColumn: "id"},
			{Column: "size_id", RefTable: "sizes", RefColumn: "id"},
			{Column: "color_id", RefTable: "colors", RefColumn: "id"},
			{Column: "branch_id", RefTable: "storage", RefColumn: "id"},
		},
	},
	"web_variants": {
		Name: "web_variants",
		Columns: []string{
			"id", "product_id", "size_id", "color_id", "displayed_stock",
			"is_active",
		},
		ForeignKeys: []FK{
			{Column: "product_id", RefTable: "products", RefColumn: "id"},
			{Column: "size_id", RefTable: "sizes", RefColumn: "id"},
			{Column: "color_id", RefTable: "colors", RefColumn: "id"},
		},
	},
	"web_variant_branch_assignment": {
		Name:    "web_variant_branch_assignment",
		Columns: []string{"id", "variant_id", "branch_id", "cantidad_asignada"},
		ForeignKeys: []FK{
			{Column: "variant_id", RefTable: "web_variants", RefColumn: "id"},
			{Column: "branch_id", RefTable: "storage", RefColumn: "id"},
		},
	},
	"discounts": {
		Name: "discounts",
		Columns: []string{
			"id", "discount_type", "target_id", "discount_percentage",
			"start_date", "end_date", "is_active", "created_at",
		},
	},
	"images": {
		Name:    "images",
		Columns: []string{"id", "product_id", "image_url"},
		ForeignKeys: []FK{
			{Column: "product_id", RefTable: "products", RefColumn: "id"},
		},
	},
	"sales": {
		Name: "sales",
		Columns: []string{
			"id", "web_user_id", "sale_date", "subtotal", "tax_amount",
			"discount", "total", "status", "shipping_address",
			"shipping_status", "shipping_cost", "payment_reference",
			"invoice_number", "notes", "origin", "created_at", "updated_at",
		},
		ForeignKeys: []FK{
			{Column: "web_user_id", RefTable: "web_users", RefColumn: "id"},
		},
	},
	"sales_detail": {
		Name: "sales_detail",
		Columns: []string{
			"id", "sale_id", "product_id", "product_name", "product_code",
			"size_name", "color_name", "sale_price", "quantity",
			"discount_percentage", "discount_amount", "tax_percentage",
			"tax_amount", "subtotal", "total",
		},
		ForeignKeys: []FK{
			{Column: "sale_id", RefTable: "sales", RefColumn: "id"},
			{Column: "product_id", RefTable: "products", RefColumn: "id"},
		},
	},
	"web_users": {
		Name: "web_users",
		Columns: []string{
			"id", "username", "fullname", "email", "password", "phone",
			"domicilio", "cuit", "role", "status", "profile_image_url",
			"email_verified", "verification_token", "session_token",
			"google_id", "created_at", "updated_at",
		},
	},
	"web_carts": {
		Name:    "web_carts",
		Columns: []string{"id", "web_user_id", "status", "created_at", "updated_at"},
		ForeignKeys: []FK{
			{Column: "web_user_id", RefTable: "web_users", RefColumn: "id"},
		},
	},
	"web_cart_items": {
		Name:    "web_cart_items",
		Columns: []string{"id", "cart_id", "variant_id", "quantity"},
		ForeignKeys: []FK{
			{Column: "cart_id", RefTable: "web_carts", RefColumn: "id"},
			{Column: "variant_id", RefTable: "web_variants", RefColumn: "id"},
		},
	},
	"entities": {
		Name:    "entities",
		Columns: []string{"id", "entity_name", "entity_type"},
	},
	"brands": {
		Name:    "brands",
		Columns: []string{"id", "brand_name"},
	},
}

// Tables returns a copy of the schema metadata keyed by table name. Callers
// may mutate the copy freely.
func Tables() map[string]Table {
	out := make(map[string]Table, len(tables))
	for name, t := range tables {
		cols := make([]string, len(t.Columns))
		copy(cols, t.Columns)
		fks := make([]FK, len(t.ForeignKeys))
		copy(fks, t.ForeignKeys)
		out[name] = Table{Name: t.Name, Columns: cols, ForeignKeys: fks}
	}
	return out
}

// Lookup returns one table's metadata.
func Lookup(name string) (Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// Names returns every table name, sorted.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
