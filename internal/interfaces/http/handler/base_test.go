package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/muebleria/backend/internal/domain/shared"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	var h BaseHandler
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		h.HandleError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandleError_NotFound(t *testing.T) {
	w := serveError(shared.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandleError_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("loading order: %w", shared.ErrInvalidState)
	w := serveError(err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestHandleError_DuplicateMapsToConflict(t *testing.T) {
	w := serveError(shared.NewDomainError("DUPLICATE_COLOR", "A color with this name already exists"))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleError_UnknownErrorHidesMessage(t *testing.T) {
	w := serveError(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
