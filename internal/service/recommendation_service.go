package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"text/template"

	"cartly-be/internal/apperrors"
	"cartly-be/internal/entities"
	"cartly-be/internal/llm"
	"cartly-be/internal/models"
	"cartly-be/internal/repository"
)

//go:embed recipes_prompt.md
var recipesPrompt string

//go:embed audit_prompt.md
var auditPrompt string

// RecommendationService turns the user's current shopping list into recipe
// suggestions or an overbuying audit by delegating to the AI collaborator.
type RecommendationService interface {
	GenerateRecipes(ctx context.Context, userID string) (*models.RecommendationsResponse, error)
	AuditShoppingList(ctx context.Context, userID string, req *models.AuditRequest) (*models.AuditReport, error)
}

type recommendationService struct {
	listRepo repository.ShoppingListRepository
	textGen  llm.TextGenerator
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(listRepo repository.ShoppingListRepository, textGen llm.TextGenerator) RecommendationService {
	return &recommendationService{
		listRepo: listRepo,
		textGen:  textGen,
	}
}

type promptItem struct {
	Name     string
	Brand    string
	Category string
	Unit     string
	Quantity int
}

type recipesPromptData struct {
	Items []promptItem
}

type auditPromptData struct {
	People       int
	ShopsPerWeek int
	Items        []promptItem
}

// GenerateRecipes builds a prompt from the user's list, calls the
// collaborator and parses its reply. An empty list short-circuits with an
// explanatory message and no external call.
func (s *recommendationService) GenerateRecipes(ctx context.Context, userID string) (*models.RecommendationsResponse, error) {
	items, err := s.listRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &models.RecommendationsResponse{
			Recipes: []models.RecipeSuggestion{},
			Message: "Shopping list is empty.",
		}, nil
	}

	prompt, err := renderPrompt("recipes", recipesPrompt, recipesPromptData{Items: toPromptItems(items)})
	if err != nil {
		return nil, err
	}

	reply, err := s.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("recipe generation failed: %w", err)
	}

	var result models.RecommendationsResponse
	if err := llm.ExtractJSON(reply, &result); err != nil {
		return nil, err
	}
	if result.Recipes == nil {
		result.Recipes = []models.RecipeSuggestion{}
	}

	return &result, nil
}

// AuditShoppingList validates the household parameters, then asks the
// collaborator whether the list looks like overbuying. Validation and the
// empty-list case never reach the collaborator.
func (s *recommendationService) AuditShoppingList(ctx context.Context, userID string, req *models.AuditRequest) (*models.AuditReport, error) {
	if req.People < 1 {
		return nil, apperrors.Validation("people must be at least 1")
	}
	if req.ShopsPerWeek <= 0 {
		return nil, apperrors.Validation("shops_per_week must be greater than 0")
	}

	items, err := s.listRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &models.AuditReport{
			OK:                true,
			Summary:           "Shopping list is empty.",
			Warnings:          []string{},
			Tips:              []string{},
			ReduceSuggestions: []models.ReduceSuggestion{},
		}, nil
	}

	prompt, err := renderPrompt("audit", auditPrompt, auditPromptData{
		People:       req.People,
		ShopsPerWeek: req.ShopsPerWeek,
		Items:        toPromptItems(items),
	})
	if err != nil {
		return nil, err
	}

	reply, err := s.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("audit generation failed: %w", err)
	}

	var report models.AuditReport
	if err := llm.ExtractJSON(reply, &report); err != nil {
		return nil, err
	}
	if report.Warnings == nil {
		report.Warnings = []string{}
	}
	if report.Tips == nil {
		report.Tips = []string{}
	}
	if report.ReduceSuggestions == nil {
		report.ReduceSuggestions = []models.ReduceSuggestion{}
	}

	return &report, nil
}

func toPromptItems(items []*entities.ShoppingListItem) []promptItem {
	out := make([]promptItem, 0, len(items))
	for _, item := range items {
		pi := promptItem{
			Name:     item.ProductName,
			Quantity: item.Quantity,
		}
		if pi.Quantity < 1 {
			pi.Quantity = 1
		}
		if item.Brand != nil {
			pi.Brand = *item.Brand
		}
		if item.Category != nil {
			pi.Category = *item.Category
		}
		if item.Unit != nil {
			pi.Unit = *item.Unit
		}
		out = append(out, pi)
	}
	return out
}

func renderPrompt(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s prompt: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s prompt: %w", name, err)
	}

	return buf.String(), nil
}
