package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type CommissionRuleHandler struct {
	db *gorm.DB
}

func NewCommissionRuleHandler(db *gorm.DB) *CommissionRuleHandler {
	return &CommissionRuleHandler{db: db}
}

// --------- Requests ---------

type CreateCommissionRuleRequest struct {
	ServiceID *uint   `json:"servico_id"`
	Kind      string  `json:"tipo" binding:"required,oneof=percentage fixed"`
	Value     float64 `json:"valor" binding:"required,gt=0"`
}

// --------- Handlers ---------

func (h *CommissionRuleHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var rules []models.CommissionRule
	if err := h.db.
		Where("company_id = ?", companyID).
		Order("id ASC").
		Find(&rules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_rules"})
		return
	}

	c.JSON(http.StatusOK, rules)
}

func (h *CommissionRuleHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateCommissionRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// servico_id informado precisa existir na empresa
	if req.ServiceID != nil {
		var service models.Service
		if err := h.db.
			Where("id = ? AND company_id = ?", *req.ServiceID, companyID).
			First(&service).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
	}

	rule := models.CommissionRule{
		CompanyID: companyID,
		ServiceID: req.ServiceID,
		Kind:      req.Kind,
		Value:     req.Value,
		Active:    true,
	}

	if err := h.db.Create(&rule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_rule"})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

func (h *CommissionRuleHandler) Update(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	id := c.Param("id")

	var rule models.CommissionRule
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&rule).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "rule_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_rule"})
		return
	}

	var req models.CommissionRuleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	changes := req.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusOK, rule)
		return
	}

	if err := h.db.Model(&rule).Updates(changes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_rule"})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// ListRecords lista as comissões lançadas (somente leitura; os
// lançamentos nunca são recalculados).
func (h *CommissionRuleHandler) ListRecords(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	q := h.db.Where("company_id = ?", companyID)

	if employee := c.Query("funcionario_id"); employee != "" {
		q = q.Where("employee_id = ?", employee)
	}
	if appointment := c.Query("agendamento_id"); appointment != "" {
		q = q.Where("appointment_id = ?", appointment)
	}

	var records []models.CommissionRecord
	if err := q.Order("id ASC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_records"})
		return
	}

	c.JSON(http.StatusOK, records)
}
