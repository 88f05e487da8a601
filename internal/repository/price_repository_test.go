package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPriceQueryNoFilters(t *testing.T) {
	query, args := buildPriceQuery(PriceFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(query, "ORDER BY p.name ASC, pr.price ASC"))
}

func TestBuildPriceQuerySingleFilters(t *testing.T) {
	tests := []struct {
		name      string
		filter    PriceFilter
		predicate string
		args      []interface{}
	}{
		{
			name:      "store",
			filter:    PriceFilter{Store: "FreshMart"},
			predicate: "s.name = $1",
			args:      []interface{}{"FreshMart"},
		},
		{
			name:      "category",
			filter:    PriceFilter{Category: "Dairy"},
			predicate: "p.category = $1",
			args:      []interface{}{"Dairy"},
		},
		{
			name:      "on sale",
			filter:    PriceFilter{OnSale: "true"},
			predicate: "pr.on_sale = TRUE",
			args:      nil,
		},
		{
			name:      "on sale mixed case literal",
			filter:    PriceFilter{OnSale: "True"},
			predicate: "pr.on_sale = TRUE",
			args:      nil,
		},
		{
			name:      "search",
			filter:    PriceFilter{Search: "milk"},
			predicate: "(p.name ILIKE $1 OR p.brand ILIKE $1)",
			args:      []interface{}{"%milk%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildPriceQuery(tt.filter)
			assert.Contains(t, query, "WHERE "+tt.predicate)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestBuildPriceQueryAllFilters(t *testing.T) {
	query, args := buildPriceQuery(PriceFilter{
		Store:    "FreshMart",
		Category: "Dairy",
		OnSale:   "true",
		Search:   "milk",
	})

	require.Contains(t, query, "WHERE")
	whereClause := query[strings.Index(query, "WHERE"):]

	assert.Contains(t, whereClause, "s.name = $1")
	assert.Contains(t, whereClause, "p.category = $2")
	assert.Contains(t, whereClause, "pr.on_sale = TRUE")
	assert.Contains(t, whereClause, "(p.name ILIKE $3 OR p.brand ILIKE $3)")
	assert.Equal(t, 3, strings.Count(whereClause, " AND "))
	assert.Equal(t, []interface{}{"FreshMart", "Dairy", "%milk%"}, args)
}

func TestBuildPriceQueryValuesNeverInterpolated(t *testing.T) {
	// A hostile value must end up in the bind args, never in the query text.
	hostile := "'; DROP TABLE prices; --"
	query, args := buildPriceQuery(PriceFilter{Store: hostile, Search: hostile})

	assert.NotContains(t, query, hostile)
	assert.Equal(t, []interface{}{hostile, "%" + hostile + "%"}, args)
}

func TestBuildPriceQueryOnSaleRequiresTrueLiteral(t *testing.T) {
	for _, value := range []string{"false", "1", "yes", "TRUEish"} {
		query, _ := buildPriceQuery(PriceFilter{OnSale: value})
		assert.NotContains(t, query, "on_sale = TRUE", "value %q must not enable the predicate", value)
	}
}

func TestBuildPriceQueryOrderingIsAlwaysLast(t *testing.T) {
	for _, filter := range []PriceFilter{
		{},
		{Store: "A"},
		{Store: "A", Category: "B", OnSale: "true", Search: "c"},
	} {
		query, _ := buildPriceQuery(filter)
		assert.True(t, strings.HasSuffix(query, "ORDER BY p.name ASC, pr.price ASC"))
	}
}
