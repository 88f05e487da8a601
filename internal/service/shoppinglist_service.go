package service

import (
	"cartly-be/internal/entities"
	"cartly-be/internal/models"
	"cartly-be/internal/repository"
)

// ShoppingListService defines the interface for shopping-list business logic.
// Every operation is scoped to the authenticated owner.
type ShoppingListService interface {
	AddItem(userID string, req *models.AddListItemRequest) (*entities.ShoppingListItem, error)
	GetItems(userID string) ([]*entities.ShoppingListItem, error)
	UpdateQuantity(userID, itemID string, quantity int) (*entities.ShoppingListItem, error)
	RemoveItem(userID, itemID string) error
}

type shoppingListService struct {
	repo repository.ShoppingListRepository
}

// NewShoppingListService creates a new shopping-list service
func NewShoppingListService(repo repository.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{repo: repo}
}

// AddItem stores a snapshot of the chosen price row for the owner. Omitted
// optional fields stay null; quantity defaults to 1.
func (s *shoppingListService) AddItem(userID string, req *models.AddListItemRequest) (*entities.ShoppingListItem, error) {
	quantity := 1
	if req.Quantity != nil && *req.Quantity > 0 {
		quantity = *req.Quantity
	}

	item := &entities.ShoppingListItem{
		UserID:      userID,
		ProductID:   req.ProductID,
		StoreID:     req.StoreID,
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Unit:        req.Unit,
		Category:    req.Category,
		StoreName:   req.StoreName,
		Price:       req.Price,
		OnSale:      req.OnSale,
		Quantity:    quantity,
	}

	return s.repo.Create(item)
}

// GetItems returns the owner's current list.
func (s *shoppingListService) GetItems(userID string) ([]*entities.ShoppingListItem, error) {
	return s.repo.GetByUserID(userID)
}

// UpdateQuantity changes the quantity of one of the owner's items.
func (s *shoppingListService) UpdateQuantity(userID, itemID string, quantity int) (*entities.ShoppingListItem, error) {
	return s.repo.UpdateQuantity(itemID, userID, quantity)
}

// RemoveItem deletes one of the owner's items; unknown ids are a no-op.
func (s *shoppingListService) RemoveItem(userID, itemID string) error {
	return s.repo.Delete(itemID, userID)
}
