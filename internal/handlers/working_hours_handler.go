package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

// O expediente chega como faixas "HH:MM-HH:MM" por dia da semana
// (0 = domingo) e vira um WeekTemplate tipado.
type WorkingHoursUpdateRequest struct {
	Days map[int][]string `json:"dias" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	employeeID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var emp models.Employee
	if err := h.db.
		Where("id = ? AND company_id = ?", employeeID, companyID).
		First(&emp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
		return
	}

	c.JSON(http.StatusOK, emp.WorkingHours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	employeeID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	template := schedule.WeekTemplate{}
	for day, ranges := range req.Days {
		if day < 0 || day > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_weekday"})
			return
		}
		for _, raw := range ranges {
			iv, err := schedule.ParseInterval(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "invalid_interval",
					"details": err.Error(),
				})
				return
			}
			wd := time.Weekday(day)
			template[wd] = append(template[wd], iv)
		}
	}

	var emp models.Employee
	if err := h.db.
		Where("id = ? AND company_id = ?", employeeID, companyID).
		First(&emp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
		return
	}

	emp.WorkingHours = template
	if err := h.db.Save(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	c.JSON(http.StatusOK, emp.WorkingHours)
}
