package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	"github.com/AgendaLivreBR/salon-api/internal/config"
	"github.com/AgendaLivreBR/salon-api/internal/handlers"
	infraRepo "github.com/AgendaLivreBR/salon-api/internal/infra/repository"
	"github.com/AgendaLivreBR/salon-api/internal/middleware"
	ucAppointment "github.com/AgendaLivreBR/salon-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	statusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	finalizeUC := ucAppointment.NewFinalizeWithProducts(appointmentRepo, auditDispatcher)
	addServiceUC := ucAppointment.NewAddService(appointmentRepo, auditDispatcher)
	addProductUC := ucAppointment.NewAddProduct(appointmentRepo, auditDispatcher)
	slotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	reminderUC := ucAppointment.NewReminderFeed(appointmentRepo)
	approveQuoteUC := ucAppointment.NewApproveQuote(appointmentRepo, createUC, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	companyHandler := handlers.NewCompanyHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)
	voucherHandler := handlers.NewVoucherHandler(db)
	commissionHandler := handlers.NewCommissionRuleHandler(db)
	stockHandler := handlers.NewStockHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createUC,
		statusUC,
		cancelUC,
		finalizeUC,
		addServiceUC,
		addProductUC,
		slotsUC,
		listByDateUC,
		reminderUC,
	)

	quoteHandler := handlers.NewQuoteHandler(db, approveQuoteUC)

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	r.POST("/auth/registro", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/clientes/registro", authHandler.CustomerRegister)
	r.POST("/auth/clientes/login", authHandler.CustomerLogin)

	// ------------------------------
	// Horários livres (consulta pública da agenda)
	// ------------------------------
	r.GET("/agendamentos/empresa/:id/horarios", appointmentHandler.AvailableSlots)

	// ======================================================
	// 🔐 ROTAS AUTENTICADAS
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		secured.POST("/agendamentos", appointmentHandler.Create)
		secured.POST("/agendamentos/:id/cancelar", appointmentHandler.Cancel)

		company := secured.Group("/")
		company.Use(middleware.RequireCompanyRole())
		{
			company.GET("/agendamentos", appointmentHandler.ListByDate)
			company.PATCH("/agendamentos/:id/status", appointmentHandler.UpdateStatus)
			company.POST("/agendamentos/:id/servicos", appointmentHandler.AddService)
			company.POST("/agendamentos/:id/produtos", appointmentHandler.AddProduct)
			company.POST("/agendamentos/:id/finalizar", appointmentHandler.Finalize)

			// Projeção consumida pelo job de lembretes
			company.GET("/agendamentos/lembretes", appointmentHandler.PendingReminders)
			company.POST("/agendamentos/:id/lembrete-enviado", appointmentHandler.MarkReminderSent)

			// ------------------------------
			// EMPRESA / CATÁLOGO
			// ------------------------------
			company.GET("/me/empresa", companyHandler.GetMe)
			company.PATCH("/me/empresa", companyHandler.UpdateMe)

			company.GET("/me/servicos", serviceHandler.List)
			company.POST("/me/servicos", serviceHandler.Create)
			company.PATCH("/me/servicos/:id", serviceHandler.Update)

			company.GET("/me/produtos", productHandler.List)
			company.POST("/me/produtos", productHandler.Create)
			company.PATCH("/me/produtos/:id", productHandler.Update)

			company.GET("/me/expediente", workingHoursHandler.Get)
			company.PUT("/me/expediente", workingHoursHandler.Update)

			// ------------------------------
			// VOUCHERS / COMISSÕES
			// ------------------------------
			company.GET("/me/vouchers", voucherHandler.List)
			company.POST("/me/vouchers", voucherHandler.Create)

			company.GET("/me/comissoes/regras", commissionHandler.List)
			company.POST("/me/comissoes/regras", commissionHandler.Create)
			company.PATCH("/me/comissoes/regras/:id", commissionHandler.Update)
			company.GET("/me/comissoes/lancamentos", commissionHandler.ListRecords)

			// ------------------------------
			// ESTOQUE
			// ------------------------------
			company.GET("/me/estoque", stockHandler.ListLevels)
			company.POST("/me/estoque/ajustes", stockHandler.Adjust)
			company.GET("/me/estoque/movimentos", stockHandler.ListMovements)

			// ------------------------------
			// ORÇAMENTOS
			// ------------------------------
			company.GET("/me/orcamentos", quoteHandler.List)
			company.POST("/me/orcamentos", quoteHandler.Create)
			company.POST("/me/orcamentos/:id/aprovar", quoteHandler.Approve)

			// ------------------------------
			// PAGAMENTO
			// ------------------------------
			company.GET("/me/formas-pagamento", paymentHandler.ListMethods)
			company.POST("/me/formas-pagamento", paymentHandler.CreateMethod)
			company.GET("/me/condicoes-pagamento", paymentHandler.ListTerms)
			company.POST("/me/condicoes-pagamento", paymentHandler.CreateTerm)

			company.GET("/me/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// CLIENTE FINAL
		// ------------------------------
		secured.GET("/me/meus-vouchers", voucherHandler.ListMine)
	}
}
