package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name         string                `json:"nome" binding:"required"`
	Description  string                `json:"descricao"`
	DurationMin  int                   `json:"duracao_min" binding:"required,min=1"`
	Price        float64               `json:"preco" binding:"required"`
	Availability schedule.WeekTemplate `json:"disponibilidade"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	activeStr := strings.TrimSpace(c.Query("ativo"))
	query := strings.ToLower(strings.TrimSpace(c.Query("busca")))

	q := h.db.Where("company_id = ?", companyID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		CompanyID:    companyID,
		Name:         req.Name,
		Description:  req.Description,
		DurationMin:  req.DurationMin,
		Price:        req.Price,
		Active:       true,
		Availability: req.Availability,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req models.ServiceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	changes := req.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusOK, service)
		return
	}

	if err := h.db.Model(&service).Updates(changes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}
