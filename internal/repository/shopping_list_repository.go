package repository

import (
	"database/sql"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/entities"
)

// ShoppingListRepository defines the interface for shopping-list item
// database operations. Every statement that touches an existing row includes
// the owner in its predicate, so cross-user access is impossible at the
// query level.
type ShoppingListRepository interface {
	Create(item *entities.ShoppingListItem) (*entities.ShoppingListItem, error)
	GetByUserID(userID string) ([]*entities.ShoppingListItem, error)
	UpdateQuantity(id, userID string, quantity int) (*entities.ShoppingListItem, error)
	Delete(id, userID string) error
}

type shoppingListRepository struct {
	db *sql.DB
}

// NewShoppingListRepository creates a new shopping-list repository
func NewShoppingListRepository(db *sql.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

const listItemColumns = `id, user_id, product_id, store_id, product_name, brand, unit, category, store_name, price, on_sale, quantity, added_at`

func scanListItem(row interface{ Scan(...interface{}) error }) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.StoreID,
		&item.ProductName,
		&item.Brand,
		&item.Unit,
		&item.Category,
		&item.StoreName,
		&item.Price,
		&item.OnSale,
		&item.Quantity,
		&item.AddedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new item snapshot for the owning user.
func (r *shoppingListRepository) Create(item *entities.ShoppingListItem) (*entities.ShoppingListItem, error) {
	query := `
		INSERT INTO shopping_list_items
			(user_id, product_id, store_id, product_name, brand, unit, category, store_name, price, on_sale, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + listItemColumns

	row := r.db.QueryRow(query,
		item.UserID,
		item.ProductID,
		item.StoreID,
		item.ProductName,
		item.Brand,
		item.Unit,
		item.Category,
		item.StoreName,
		item.Price,
		item.OnSale,
		item.Quantity,
	)

	created, err := scanListItem(row)
	if err != nil {
		return nil, apperrors.Persistence("failed to create shopping-list item", err)
	}

	return created, nil
}

// GetByUserID returns the owner's items, newest first.
func (r *shoppingListRepository) GetByUserID(userID string) ([]*entities.ShoppingListItem, error) {
	query := `
		SELECT ` + listItemColumns + `
		FROM shopping_list_items
		WHERE user_id = $1
		ORDER BY added_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, apperrors.Persistence("failed to list shopping-list items", err)
	}
	defer rows.Close()

	items := []*entities.ShoppingListItem{}
	for rows.Next() {
		item, err := scanListItem(rows)
		if err != nil {
			return nil, apperrors.Persistence("failed to scan shopping-list item", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Persistence("error iterating shopping-list items", err)
	}

	return items, nil
}

// UpdateQuantity changes an item's quantity, only if the caller owns the row.
func (r *shoppingListRepository) UpdateQuantity(id, userID string, quantity int) (*entities.ShoppingListItem, error) {
	query := `
		UPDATE shopping_list_items
		SET quantity = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + listItemColumns

	row := r.db.QueryRow(query, quantity, id, userID)
	item, err := scanListItem(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("shopping-list item not found")
	}
	if err != nil {
		return nil, apperrors.Persistence("failed to update shopping-list item", err)
	}

	return item, nil
}

// Delete removes the caller's item. Deleting a nonexistent or foreign id is a
// no-op, not an error: the owner predicate simply matches zero rows.
func (r *shoppingListRepository) Delete(id, userID string) error {
	query := `DELETE FROM shopping_list_items WHERE id = $1 AND user_id = $2`

	if _, err := r.db.Exec(query, id, userID); err != nil {
		return apperrors.Persistence("failed to delete shopping-list item", err)
	}

	return nil
}
