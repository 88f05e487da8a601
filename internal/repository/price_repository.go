package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/entities"
)

// PriceFilter holds the optional query parameters of the /prices listing.
// Zero values mean "no predicate", never "match empty".
type PriceFilter struct {
	Store    string
	Category string
	OnSale   string // the literal "true" (any case) enables the predicate
	Search   string // case-insensitive substring over product name and brand
}

// PriceRepository defines the interface for catalog read operations
type PriceRepository interface {
	ListPrices(filter PriceFilter) ([]*entities.PriceEntry, error)
	ListStores() ([]string, error)
	ListCategories() ([]string, error)
}

type priceRepository struct {
	db *sql.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *sql.DB) PriceRepository {
	return &priceRepository{db: db}
}

// buildPriceQuery assembles the filtered SELECT over the three-way join.
// Every user-supplied value is passed as a positional bind parameter; the
// query text itself only ever contains fixed predicate fragments. Ordering is
// fixed (product name, then price) so identical inputs page identically.
func buildPriceQuery(f PriceFilter) (string, []interface{}) {
	query := `
		SELECT
			s.name AS store,
			p.name AS product,
			p.brand,
			p.unit,
			p.category,
			p.image_url,
			pr.price,
			pr.on_sale
		FROM prices pr
		JOIN stores s ON pr.store_id = s.id
		JOIN products p ON pr.product_id = p.id
	`

	var conditions []string
	var values []interface{}

	if f.Store != "" {
		values = append(values, f.Store)
		conditions = append(conditions, fmt.Sprintf("s.name = $%d", len(values)))
	}

	if f.Category != "" {
		values = append(values, f.Category)
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", len(values)))
	}

	if strings.EqualFold(f.OnSale, "true") {
		conditions = append(conditions, "pr.on_sale = TRUE")
	}

	if f.Search != "" {
		values = append(values, "%"+f.Search+"%")
		n := len(values)
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.brand ILIKE $%d)", n, n))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY p.name ASC, pr.price ASC"

	return query, values
}

// ListPrices returns the rows matching every supplied filter.
func (r *priceRepository) ListPrices(filter PriceFilter) ([]*entities.PriceEntry, error) {
	query, args := buildPriceQuery(filter)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperrors.Persistence("failed to list prices", err)
	}
	defer rows.Close()

	entries := []*entities.PriceEntry{}
	for rows.Next() {
		var e entities.PriceEntry
		err := rows.Scan(
			&e.Store,
			&e.Product,
			&e.Brand,
			&e.Unit,
			&e.Category,
			&e.ImageURL,
			&e.Price,
			&e.OnSale,
		)
		if err != nil {
			return nil, apperrors.Persistence("failed to scan price row", err)
		}
		entries = append(entries, &e)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Persistence("error iterating prices", err)
	}

	return entries, nil
}

// ListStores returns the distinct store names, alphabetically.
func (r *priceRepository) ListStores() ([]string, error) {
	return r.listDistinct(`SELECT DISTINCT name FROM stores ORDER BY name ASC`)
}

// ListCategories returns the distinct product categories, alphabetically.
func (r *priceRepository) ListCategories() ([]string, error) {
	return r.listDistinct(`SELECT DISTINCT category FROM products WHERE category IS NOT NULL ORDER BY category ASC`)
}

func (r *priceRepository) listDistinct(query string) ([]string, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, apperrors.Persistence("failed to query catalog", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, apperrors.Persistence("failed to scan catalog row", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Persistence("error iterating catalog rows", err)
	}

	return names, nil
}
