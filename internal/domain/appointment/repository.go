package appointment

import (
	"context"
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// Projeção somente leitura consumida pelo job de lembretes.
type ReminderProjection struct {
	AppointmentID uint      `json:"agendamento_id"`
	StartTime     time.Time `json:"data_hora_inicio"`
	CustomerName  string    `json:"cliente_nome"`
	CustomerEmail string    `json:"cliente_email"`
	CompanyName   string    `json:"empresa_nome"`
	ServiceNames  string    `json:"servicos"`
}

type Repository interface {
	// Transact executa fn dentro de uma transação; o Repository
	// recebido opera sobre essa transação. Qualquer erro desfaz tudo.
	Transact(ctx context.Context, fn func(Repository) error) error

	// -------- Company / Employee --------
	GetCompanyByID(
		ctx context.Context,
		id uint,
	) (*models.Company, error)

	GetEmployee(
		ctx context.Context,
		companyID uint,
		employeeID uint,
	) (*models.Employee, error)

	// -------- Catalog --------
	GetServices(
		ctx context.Context,
		companyID uint,
		ids []uint,
	) ([]models.Service, error)

	GetProduct(
		ctx context.Context,
		companyID uint,
		productID uint,
	) (*models.Product, error)

	// -------- Voucher --------
	GetVoucherForCustomer(
		ctx context.Context,
		companyID uint,
		customerID uint,
		voucherID uint,
	) (*models.Voucher, error)

	GetVoucherByID(
		ctx context.Context,
		voucherID uint,
	) (*models.Voucher, error)

	SaveVoucher(
		ctx context.Context,
		v *models.Voucher,
	) error

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CreateAppointmentServices(
		ctx context.Context,
		lines []models.AppointmentService,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
		companyID uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Line items --------
	ListAppointmentServices(
		ctx context.Context,
		appointmentID uint,
	) ([]models.AppointmentService, error)

	ListAppointmentProducts(
		ctx context.Context,
		appointmentID uint,
	) ([]models.AppointmentProduct, error)

	HasAppointmentService(
		ctx context.Context,
		appointmentID uint,
		serviceID uint,
	) (bool, error)

	AddAppointmentService(
		ctx context.Context,
		line *models.AppointmentService,
	) error

	AddAppointmentProduct(
		ctx context.Context,
		line *models.AppointmentProduct,
	) error

	// -------- Availability --------
	ListBusyWindows(
		ctx context.Context,
		companyID uint,
		employeeID *uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]BusyWindow, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		companyID uint,
		employeeID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Commission --------
	ListActiveCommissionRules(
		ctx context.Context,
		companyID uint,
	) ([]models.CommissionRule, error)

	CreateCommissionRecords(
		ctx context.Context,
		records []models.CommissionRecord,
	) error

	// -------- Stock --------
	GetStockLevelForUpdate(
		ctx context.Context,
		companyID uint,
		productID uint,
	) (*models.StockLevel, error)

	SaveStockLevel(
		ctx context.Context,
		level *models.StockLevel,
	) error

	CreateStockMovement(
		ctx context.Context,
		movement *models.StockMovement,
	) error

	// -------- Quote --------
	GetQuote(
		ctx context.Context,
		companyID uint,
		quoteID uint,
	) (*models.Quote, error)

	SaveQuote(
		ctx context.Context,
		q *models.Quote,
	) error

	// -------- Reminders --------
	ListForReminder(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]ReminderProjection, error)

	MarkReminderSent(
		ctx context.Context,
		appointmentID uint,
	) error
}
