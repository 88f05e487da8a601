package service

import (
	"context"
	"testing"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/entities"
	"cartly-be/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListRepo struct {
	items []*entities.ShoppingListItem
	err   error
}

func (f *fakeListRepo) Create(item *entities.ShoppingListItem) (*entities.ShoppingListItem, error) {
	return item, nil
}

func (f *fakeListRepo) GetByUserID(userID string) ([]*entities.ShoppingListItem, error) {
	return f.items, f.err
}

func (f *fakeListRepo) UpdateQuantity(id, userID string, quantity int) (*entities.ShoppingListItem, error) {
	return nil, apperrors.NotFound("shopping-list item not found")
}

func (f *fakeListRepo) Delete(id, userID string) error {
	return nil
}

type fakeTextGen struct {
	reply string
	err   error
	calls int
}

func (f *fakeTextGen) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func strPtr(s string) *string { return &s }

func sampleItems() []*entities.ShoppingListItem {
	return []*entities.ShoppingListItem{
		{ProductName: "Whole Milk", Brand: strPtr("DairyPure"), Category: strPtr("Dairy"), Unit: strPtr("1L"), Quantity: 6},
		{ProductName: "Bananas", Category: strPtr("Produce"), Quantity: 0},
	}
}

func TestGenerateRecipesEmptyListSkipsCollaborator(t *testing.T) {
	gen := &fakeTextGen{}
	svc := NewRecommendationService(&fakeListRepo{}, gen)

	resp, err := svc.GenerateRecipes(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Shopping list is empty.", resp.Message)
	assert.NotNil(t, resp.Recipes)
	assert.Len(t, resp.Recipes, 0)
	assert.Equal(t, 0, gen.calls, "collaborator must not be called for an empty list")
}

func TestGenerateRecipesParsesProseWrappedReply(t *testing.T) {
	gen := &fakeTextGen{reply: "Here you go:\n{\"recipes\":[{\"title\":\"Banana Smoothie\",\"time_minutes\":5,\"difficulty\":\"easy\",\"ingredients_used\":[\"Bananas\",\"Whole Milk\"],\"missing_ingredients\":[],\"steps\":[\"Blend.\"],\"tips\":\"Use ripe bananas\"}]}\nThanks"}
	svc := NewRecommendationService(&fakeListRepo{items: sampleItems()}, gen)

	resp, err := svc.GenerateRecipes(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Banana Smoothie", resp.Recipes[0].Title)
	assert.Equal(t, 5, resp.Recipes[0].TimeMinutes)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateRecipesUnparseableReply(t *testing.T) {
	gen := &fakeTextGen{reply: "I'm afraid I can't produce JSON today"}
	svc := NewRecommendationService(&fakeListRepo{items: sampleItems()}, gen)

	_, err := svc.GenerateRecipes(context.Background(), "user-1")

	require.Error(t, err)
	var formatErr *apperrors.UpstreamFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestAuditValidatesBeforeAnyCall(t *testing.T) {
	tests := []struct {
		name string
		req  models.AuditRequest
	}{
		{"zero people", models.AuditRequest{People: 0, ShopsPerWeek: 2}},
		{"negative people", models.AuditRequest{People: -1, ShopsPerWeek: 2}},
		{"zero shops", models.AuditRequest{People: 2, ShopsPerWeek: 0}},
		{"negative shops", models.AuditRequest{People: 2, ShopsPerWeek: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeTextGen{}
			svc := NewRecommendationService(&fakeListRepo{items: sampleItems()}, gen)

			_, err := svc.AuditShoppingList(context.Background(), "user-1", &tt.req)

			require.Error(t, err)
			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, 0, gen.calls)
		})
	}
}

func TestAuditEmptyListSkipsCollaborator(t *testing.T) {
	gen := &fakeTextGen{}
	svc := NewRecommendationService(&fakeListRepo{}, gen)

	report, err := svc.AuditShoppingList(context.Background(), "user-1", &models.AuditRequest{People: 2, ShopsPerWeek: 1})

	require.NoError(t, err)
	assert.True(t, report.OK)
	assert.Equal(t, "Shopping list is empty.", report.Summary)
	assert.Equal(t, 0, gen.calls)
}

func TestAuditParsesReport(t *testing.T) {
	gen := &fakeTextGen{reply: `{"ok":false,"summary":"Too much milk","warnings":["6x 1L milk for 2 people"],"tips":["Buy 2L at most"],"reduce_suggestions":[{"item":"Whole Milk","reason":"perishable","suggested_qty":"2"}]}`}
	svc := NewRecommendationService(&fakeListRepo{items: sampleItems()}, gen)

	report, err := svc.AuditShoppingList(context.Background(), "user-1", &models.AuditRequest{People: 2, ShopsPerWeek: 1})

	require.NoError(t, err)
	assert.False(t, report.OK)
	require.Len(t, report.ReduceSuggestions, 1)
	assert.Equal(t, "Whole Milk", report.ReduceSuggestions[0].Item)
}

func TestPromptContainsEachItemLine(t *testing.T) {
	prompt, err := renderPrompt("audit", auditPrompt, auditPromptData{
		People:       2,
		ShopsPerWeek: 1,
		Items:        toPromptItems(sampleItems()),
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Whole Milk | category: Dairy | unit: 1L | quantity: 6")
	// Unknown quantity defaults to 1 in the prompt.
	assert.Contains(t, prompt, "Bananas | category: Produce | unit:  | quantity: 1")
}
