package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
)

type CompanyHandler struct {
	db *gorm.DB
}

func NewCompanyHandler(db *gorm.DB) *CompanyHandler {
	return &CompanyHandler{db: db}
}

func (h *CompanyHandler) GetMe(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company_not_found"})
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) UpdateMe(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var company models.Company
	if err := h.db.First(&company, companyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company_not_found"})
		return
	}

	var req models.CompanyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Timezone != nil && !timezone.IsValid(*req.Timezone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
		return
	}

	changes := req.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusOK, company)
		return
	}

	if err := h.db.Model(&company).Updates(changes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_company"})
		return
	}

	c.JSON(http.StatusOK, company)
}
