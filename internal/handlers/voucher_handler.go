package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type VoucherHandler struct {
	db *gorm.DB
}

func NewVoucherHandler(db *gorm.DB) *VoucherHandler {
	return &VoucherHandler{db: db}
}

// --------- Requests ---------

type CreateVoucherRequest struct {
	CustomerID uint    `json:"cliente_id" binding:"required"`
	Percentage float64 `json:"percentual" binding:"required,gt=0,lte=100"`
}

// --------- Handlers ---------

func (h *VoucherHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	q := h.db.Where("company_id = ?", companyID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if customer := c.Query("cliente_id"); customer != "" {
		q = q.Where("customer_id = ?", customer)
	}

	var vouchers []models.Voucher
	if err := q.Order("id ASC").Find(&vouchers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_vouchers"})
		return
	}

	c.JSON(http.StatusOK, vouchers)
}

// Create emite um voucher de cashback para o cliente.
func (h *VoucherHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND company_id = ?", req.CustomerID, companyID).
		First(&customer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
		return
	}

	voucher := models.Voucher{
		CompanyID:  companyID,
		CustomerID: req.CustomerID,
		Code:       uuid.NewString(),
		Percentage: req.Percentage,
		Status:     models.VoucherStatusAvailable,
	}

	if err := h.db.Create(&voucher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_voucher"})
		return
	}

	c.JSON(http.StatusCreated, voucher)
}

// ListMine lista os vouchers do cliente autenticado.
func (h *VoucherHandler) ListMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var vouchers []models.Voucher
	if err := h.db.
		Where("company_id = ? AND customer_id = ?", companyID, customerID).
		Order("id ASC").
		Find(&vouchers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_vouchers"})
		return
	}

	c.JSON(http.StatusOK, vouchers)
}
