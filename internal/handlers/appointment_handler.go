package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/httpresp"
	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
	ucAppointment "github.com/AgendaLivreBR/salon-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC   *ucAppointment.CreateAppointment
	statusUC   *ucAppointment.UpdateStatus
	cancelUC   *ucAppointment.CancelAppointment
	finalizeUC *ucAppointment.FinalizeWithProducts
	addSvcUC   *ucAppointment.AddService
	addProdUC  *ucAppointment.AddProduct
	slotsUC    *ucAppointment.GetAvailableSlots
	listUC     *ucAppointment.ListAppointmentsByDate
	reminderUC *ucAppointment.ReminderFeed
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	statusUC *ucAppointment.UpdateStatus,
	cancelUC *ucAppointment.CancelAppointment,
	finalizeUC *ucAppointment.FinalizeWithProducts,
	addSvcUC *ucAppointment.AddService,
	addProdUC *ucAppointment.AddProduct,
	slotsUC *ucAppointment.GetAvailableSlots,
	listUC *ucAppointment.ListAppointmentsByDate,
	reminderUC *ucAppointment.ReminderFeed,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:         db,
		createUC:   createUC,
		statusUC:   statusUC,
		cancelUC:   cancelUC,
		finalizeUC: finalizeUC,
		addSvcUC:   addSvcUC,
		addProdUC:  addProdUC,
		slotsUC:    slotsUC,
		listUC:     listUC,
		reminderUC: reminderUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CompanyID  uint   `json:"empresa_id" binding:"required"`
	ServiceIDs []uint `json:"servicos_ids" binding:"required"`
	StartAt    string `json:"data_hora_inicio" binding:"required"`
	VoucherID  *uint  `json:"voucher_id"`
	EmployeeID *uint  `json:"funcionario_id"`
}

type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	PaymentMethodID *uint  `json:"forma_pagamento_id"`
	PaymentTermID   *uint  `json:"condicao_pagamento_id"`
}

type AddServiceRequest struct {
	ServiceID uint `json:"servico_id" binding:"required"`
}

type AddProductRequest struct {
	ProductID uint    `json:"produto_id" binding:"required"`
	Quantity  int     `json:"quantidade" binding:"required"`
	UnitPrice float64 `json:"preco_unitario" binding:"required"`
}

type FinalizeRequest struct {
	PaymentMethodID uint `json:"forma_pagamento_id" binding:"required"`
	PaymentTermID   uint `json:"condicao_pagamento_id" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)
	tokenCompanyID := c.MustGet(middleware.ContextCompanyID).(uint)
	role := c.MustGet(middleware.ContextRole).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// O cliente agenda apenas na empresa do próprio cadastro
	if role == middleware.RoleCustomer && req.CompanyID != tokenCompanyID {
		httperr.NotFound(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	var shop models.Company
	if err := h.db.First(&shop, req.CompanyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	start, err := parseStartAt(&shop, req.StartAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CompanyID:  req.CompanyID,
		CustomerID: customerID,
		ServiceIDs: req.ServiceIDs,
		StartTime:  start,
		VoucherID:  req.VoucherID,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.statusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID:   id,
		CompanyID:       companyID,
		ActorID:         actorID,
		NewStatus:       req.Status,
		PaymentMethodID: req.PaymentMethodID,
		PaymentTermID:   req.PaymentTermID,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)
	role := c.MustGet(middleware.ContextRole).(string)

	id, ok := idParam(c)
	if !ok {
		return
	}

	// Cliente final só cancela os próprios agendamentos
	var customerID *uint
	if role == middleware.RoleCustomer {
		customerID = &actorID
	}

	cancelled, err := h.cancelUC.Execute(c.Request.Context(), ucAppointment.CancelInput{
		AppointmentID: id,
		CompanyID:     companyID,
		ActorID:       actorID,
		CustomerID:    customerID,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	httpresp.OK(c, cancelled)
}

// ======================================================
// FINALIZE (conclusão + baixa de estoque)
// ======================================================

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_payment_fields", "Forma e condição de pagamento são obrigatórias.")
		return
	}

	updated, err := h.finalizeUC.Execute(c.Request.Context(), ucAppointment.FinalizeInput{
		AppointmentID:   id,
		CompanyID:       companyID,
		ActorID:         actorID,
		PaymentMethodID: req.PaymentMethodID,
		PaymentTermID:   req.PaymentTermID,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_finalize_appointment", "Erro ao finalizar agendamento.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// LINE ITEMS
// ======================================================

func (h *AppointmentHandler) AddService(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	line, err := h.addSvcUC.Execute(c.Request.Context(), companyID, actorID, id, req.ServiceID)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_add_service", "Erro ao incluir serviço.")
		return
	}

	httpresp.Created(c, line)
}

func (h *AppointmentHandler) AddProduct(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_product_line", "Produto, quantidade e preço unitário são obrigatórios.")
		return
	}

	line, err := h.addProdUC.Execute(c.Request.Context(), ucAppointment.AddProductInput{
		AppointmentID: id,
		CompanyID:     companyID,
		ActorID:       actorID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_add_product", "Erro ao incluir produto.")
		return
	}

	httpresp.Created(c, line)
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /agendamentos/empresa/:id/horarios?data=YYYY-MM-DD&servicos_ids=1,2&funcionario_id=
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	companyID, ok := idParam(c)
	if !ok {
		return
	}

	dateStr := c.Query("data")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	serviceIDs, err := parseIDList(c.Query("servicos_ids"))
	if err != nil || len(serviceIDs) == 0 {
		httperr.BadRequest(c, "missing_services", "Informe ao menos um serviço.")
		return
	}

	var employeeID *uint
	if raw := c.Query("funcionario_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee", "Funcionário inválido.")
			return
		}
		id := uint(v)
		employeeID = &id
	}

	var shop models.Company
	if err := h.db.First(&shop, companyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	date, err := timezone.ParseDate(shop.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		httperr.WriteError(c, err, "failed_to_get_slots", "Erro ao buscar horários.")
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	companyID := c.MustGet(middleware.ContextCompanyID).(uint)

	dateStr := c.Query("data")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Company
	if err := h.db.First(&shop, companyID).Error; err != nil {
		httperr.NotFound(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	date, err := timezone.ParseDate(shop.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var employeeID *uint
	if raw := c.Query("funcionario_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee", "Funcionário inválido.")
			return
		}
		id := uint(v)
		employeeID = &id
	}

	aps, err := h.listUC.Execute(c.Request.Context(), companyID, employeeID, date)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// REMINDER FEED (job externo)
// ======================================================

func (h *AppointmentHandler) PendingReminders(c *gin.Context) {
	hours := 24
	if raw := c.Query("janela_horas"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			httperr.BadRequest(c, "invalid_window", "Janela inválida.")
			return
		}
		hours = v
	}

	rows, err := h.reminderUC.ListPending(c.Request.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		httperr.WriteError(c, err, "failed_to_list_reminders", "Erro ao listar lembretes.")
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) MarkReminderSent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.reminderUC.MarkSent(c.Request.Context(), id); err != nil {
		httperr.WriteError(c, err, "failed_to_mark_reminder", "Erro ao registrar lembrete.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// HELPERS
// ======================================================

func idParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, uint(v))
	}
	return out, nil
}

func parseStartAt(shop *models.Company, raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", raw, timezone.Location(shop.Timezone)); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
