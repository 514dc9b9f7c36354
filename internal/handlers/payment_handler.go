package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// Formas e condições de pagamento: cadastro simples por empresa.
type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type CreatePaymentMethodRequest struct {
	Name string `json:"nome" binding:"required"`
}

type CreatePaymentTermRequest struct {
	Name         string `json:"nome" binding:"required"`
	Installments int    `json:"parcelas" binding:"required,min=1"`
}

func (h *PaymentHandler) ListMethods(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var methods []models.PaymentMethod
	if err := h.db.
		Where("company_id = ? AND active = ?", companyID, true).
		Order("id ASC").
		Find(&methods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_payment_methods"})
		return
	}

	c.JSON(http.StatusOK, methods)
}

func (h *PaymentHandler) CreateMethod(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	method := models.PaymentMethod{
		CompanyID: companyID,
		Name:      req.Name,
		Active:    true,
	}

	if err := h.db.Create(&method).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_payment_method"})
		return
	}

	c.JSON(http.StatusCreated, method)
}

func (h *PaymentHandler) ListTerms(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var terms []models.PaymentTerm
	if err := h.db.
		Where("company_id = ? AND active = ?", companyID, true).
		Order("id ASC").
		Find(&terms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_payment_terms"})
		return
	}

	c.JSON(http.StatusOK, terms)
}

func (h *PaymentHandler) CreateTerm(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreatePaymentTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	term := models.PaymentTerm{
		CompanyID:    companyID,
		Name:         req.Name,
		Installments: req.Installments,
		Active:       true,
	}

	if err := h.db.Create(&term).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_payment_term"})
		return
	}

	c.JSON(http.StatusCreated, term)
}
