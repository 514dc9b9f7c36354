package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/config"
	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	CompanyName    string `json:"empresa_nome" binding:"required"`
	CompanySlug    string `json:"empresa_slug" binding:"required"`
	CompanyCNPJ    string `json:"empresa_cnpj"`
	CompanyPhone   string `json:"empresa_telefone"`
	CompanyAddress string `json:"empresa_endereco"`

	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6"`
	Phone    string `json:"telefone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type CustomerRegisterRequest struct {
	CompanyID uint   `json:"empresa_id" binding:"required"`
	Name      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"senha" binding:"required,min=6"`
	Phone     string `json:"telefone"`
}

// --------- Handlers ---------

// Register cria a empresa e o primeiro funcionário (owner) juntos.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.CompanySlug))

	var count int64
	h.db.Model(&models.Company{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_already_exists"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	shop := models.Company{
		Name:    req.CompanyName,
		Slug:    slug,
		CNPJ:    req.CompanyCNPJ,
		Phone:   req.CompanyPhone,
		Address: req.CompanyAddress,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_company"})
		return
	}

	emp := models.Employee{
		CompanyID:    shop.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         middleware.RoleOwner,
		Active:       true,
	}

	if err := h.db.Create(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_employee"})
		return
	}

	token, err := h.generateToken(emp.ID, emp.CompanyID, emp.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"funcionario": gin.H{
			"id":         emp.ID,
			"nome":       emp.Name,
			"email":      emp.Email,
			"empresa_id": emp.CompanyID,
		},
		"empresa": gin.H{
			"id":   shop.ID,
			"nome": shop.Name,
			"slug": shop.Slug,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var emp models.Employee
	if err := h.db.Preload("Company").
		Where("email = ?", email).
		First(&emp).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(emp.ID, emp.CompanyID, emp.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"funcionario": gin.H{
			"id":         emp.ID,
			"nome":       emp.Name,
			"email":      emp.Email,
			"empresa_id": emp.CompanyID,
		},
		"empresa": gin.H{
			"id":   emp.Company.ID,
			"nome": emp.Company.Name,
			"slug": emp.Company.Slug,
		},
		"token": token,
	})
}

// --------- Cliente final ---------

func (h *AuthHandler) CustomerRegister(c *gin.Context) {
	var req CustomerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var shop models.Company
	if err := h.db.First(&shop, req.CompanyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company_not_found"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	customer := models.Customer{
		CompanyID:    shop.ID,
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_customer"})
		return
	}

	token, err := h.generateToken(customer.ID, customer.CompanyID, middleware.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cliente": gin.H{
			"id":         customer.ID,
			"nome":       customer.Name,
			"email":      customer.Email,
			"empresa_id": customer.CompanyID,
		},
		"token": token,
	})
}

func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var customer models.Customer
	if err := h.db.Where("email = ?", email).First(&customer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(customer.ID, customer.CompanyID, middleware.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cliente": gin.H{
			"id":         customer.ID,
			"nome":       customer.Name,
			"email":      customer.Email,
			"empresa_id": customer.CompanyID,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(subject uint, companyID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":       subject,
		"empresaId": companyID,
		"role":      role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
