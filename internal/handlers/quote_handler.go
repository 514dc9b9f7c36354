package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/httpresp"
	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
	ucAppointment "github.com/AgendaLivreBR/salon-api/internal/usecase/appointment"
)

type QuoteHandler struct {
	db        *gorm.DB
	approveUC *ucAppointment.ApproveQuote
}

func NewQuoteHandler(db *gorm.DB, approveUC *ucAppointment.ApproveQuote) *QuoteHandler {
	return &QuoteHandler{db: db, approveUC: approveUC}
}

// --------- Requests ---------

type CreateQuoteRequest struct {
	CustomerID uint   `json:"cliente_id" binding:"required"`
	ServiceIDs []uint `json:"servicos_ids" binding:"required,min=1"`
}

type ApproveQuoteRequest struct {
	Date       string `json:"data" binding:"required"`
	Time       string `json:"hora" binding:"required"`
	EmployeeID *uint  `json:"funcionario_id"`
	VoucherID  *uint  `json:"voucher_id"`
}

// --------- Handlers ---------

func (h *QuoteHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var count int64
	h.db.Model(&models.Service{}).
		Where("company_id = ? AND id IN ?", companyID, req.ServiceIDs).
		Count(&count)
	if int(count) != len(req.ServiceIDs) {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	quote := models.Quote{
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		Status:     models.QuoteStatusDraft,
	}
	for _, id := range req.ServiceIDs {
		quote.Items = append(quote.Items, models.QuoteItem{ServiceID: id})
	}

	if err := h.db.Create(&quote).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_quote"})
		return
	}

	c.JSON(http.StatusCreated, quote)
}

func (h *QuoteHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	q := h.db.Preload("Items.Service").Where("company_id = ?", companyID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var quotes []models.Quote
	if err := q.Order("id DESC").Find(&quotes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_quotes"})
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// Approve converte o orçamento em agendamento.
func (h *QuoteHandler) Approve(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ApproveQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var shop models.Company
	if err := h.db.First(&shop, companyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	start, err := timezone.ParseDateTime(shop.Timezone, req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	created, err := h.approveUC.Execute(c.Request.Context(), ucAppointment.ApproveQuoteInput{
		QuoteID:    id,
		CompanyID:  companyID,
		ActorID:    actorID,
		StartTime:  start,
		EmployeeID: req.EmployeeID,
		VoucherID:  req.VoucherID,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_approve_quote", "Erro ao aprovar orçamento.")
		return
	}

	httpresp.Created(c, created)
}
