package controllers

import (
	"errors"
	"log"
	"net/http"

	"cartly-be/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy to HTTP statuses in one place.
// Persistence and upstream failures are logged server-side and surfaced as a
// short generic message only.
func respondError(c *gin.Context, err error) {
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
		return
	}

	var auth *apperrors.AuthError
	if errors.As(err, &auth) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.Message})
		return
	}

	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
		return
	}

	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
		return
	}

	var upstream *apperrors.UpstreamFormatError
	if errors.As(err, &upstream) {
		log.Printf("upstream format error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI response could not be parsed"})
		return
	}

	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
