package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco" binding:"required"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("busca")))

	q := h.db.Where("company_id = ?", companyID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}

	var products []models.Product
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	product := models.Product{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	id := c.Param("id")

	var product models.Product
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_product"})
		return
	}

	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	changes := req.Changes()
	if len(changes) == 0 {
		c.JSON(http.StatusOK, product)
		return
	}

	if err := h.db.Model(&product).Updates(changes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_product"})
		return
	}

	c.JSON(http.StatusOK, product)
}
