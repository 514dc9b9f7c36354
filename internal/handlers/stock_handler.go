package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type StockHandler struct {
	db *gorm.DB
}

func NewStockHandler(db *gorm.DB) *StockHandler {
	return &StockHandler{db: db}
}

// --------- Requests ---------

type StockAdjustRequest struct {
	ProductID uint `json:"produto_id" binding:"required"`
	Quantity  int  `json:"quantidade" binding:"required"` // positivo = entrada, negativo = saída
}

// --------- Handlers ---------

func (h *StockHandler) ListLevels(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var levels []models.StockLevel
	if err := h.db.
		Where("company_id = ?", companyID).
		Order("product_id ASC").
		Find(&levels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_stock"})
		return
	}

	c.JSON(http.StatusOK, levels)
}

// Adjust registra um ajuste manual: movimento + saldo na mesma
// transação, mantendo o saldo consistente com a soma dos movimentos.
func (h *StockHandler) Adjust(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND company_id = ?", req.ProductID, companyID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	reason := models.StockReasonAdjustIn
	if req.Quantity < 0 {
		reason = models.StockReasonAdjustOut
	}

	var level models.StockLevel

	err := h.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("company_id = ? AND product_id = ?", companyID, req.ProductID).
			First(&level).Error

		if err == gorm.ErrRecordNotFound {
			level = models.StockLevel{
				CompanyID: companyID,
				ProductID: req.ProductID,
			}
			if err := tx.Create(&level).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		level.Quantity += req.Quantity
		if err := tx.Save(&level).Error; err != nil {
			return err
		}

		movement := models.StockMovement{
			CompanyID: companyID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Reason:    reason,
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_adjust_stock"})
		return
	}

	c.JSON(http.StatusOK, level)
}

func (h *StockHandler) ListMovements(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	q := h.db.Where("company_id = ?", companyID)

	if product := c.Query("produto_id"); product != "" {
		q = q.Where("product_id = ?", product)
	}
	if reason := c.Query("motivo"); reason != "" {
		q = q.Where("reason = ?", reason)
	}

	var movements []models.StockMovement
	if err := q.Order("id DESC").Limit(200).Find(&movements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_movements"})
		return
	}

	c.JSON(http.StatusOK, movements)
}
