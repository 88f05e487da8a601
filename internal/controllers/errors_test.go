package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cartly-be/internal/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperrors.Validation("people must be at least 1"), http.StatusBadRequest, "people must be at least 1"},
		{"auth", apperrors.Auth("invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{"conflict", apperrors.Conflict("email already registered"), http.StatusConflict, "email already registered"},
		{"not found", apperrors.NotFound("shopping-list item not found"), http.StatusNotFound, "shopping-list item not found"},
		{"upstream format", apperrors.UpstreamFormat("model reply contains no JSON object"), http.StatusInternalServerError, "AI response could not be parsed"},
		{"persistence", apperrors.Persistence("failed to list prices", assert.AnError), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRespondErrorHidesPersistenceDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, apperrors.Persistence("failed to list prices", assert.AnError))

	assert.NotContains(t, w.Body.String(), "failed to list prices")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
