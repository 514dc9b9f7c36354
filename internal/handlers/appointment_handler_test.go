package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
)

func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/agendamentos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// Cliente da empresa 1 tentando agendar em nome da empresa 2: barrado
// antes de qualquer acesso ao banco.
func TestCreateRejectsForeignCompanyForCustomer(t *testing.T) {
	c, w := newTestContext(t, `{
		"empresa_id": 2,
		"servicos_ids": [10],
		"data_hora_inicio": "2026-03-10 09:00"
	}`)
	c.Set(middleware.ContextUserID, uint(5))
	c.Set(middleware.ContextCompanyID, uint(1))
	c.Set(middleware.ContextRole, middleware.RoleCustomer)

	h := &AppointmentHandler{}
	h.Create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "company_not_found")
}
