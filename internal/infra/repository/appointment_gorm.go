package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction scope
// --------------------------------------------------

// Transact entrega ao callback um repositório preso à transação.
// Erro do callback → rollback; conexão devolvida em qualquer saída.
func (r *AppointmentGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Company / Employee
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCompanyByID(
	ctx context.Context,
	id uint,
) (*models.Company, error) {

	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, notFoundOr(err, "company_not_found")
	}
	return &company, nil
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	companyID uint,
	employeeID uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", employeeID, companyID).
		First(&emp).Error; err != nil {
		return nil, notFoundOr(err, "employee_not_found")
	}
	return &emp, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

// GetServices resolve todos os ids; qualquer id ausente na empresa →
// not found, nada é retornado parcialmente.
func (r *AppointmentGormRepository) GetServices(
	ctx context.Context,
	companyID uint,
	ids []uint,
) ([]models.Service, error) {

	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id IN ?", companyID, ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(unique) {
		return nil, httperr.ErrNotFound("service_not_found")
	}

	// Preserva a ordem pedida
	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	ordered := make([]models.Service, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, byID[id])
	}

	return ordered, nil
}

func (r *AppointmentGormRepository) GetProduct(
	ctx context.Context,
	companyID uint,
	productID uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", productID, companyID).
		First(&product).Error; err != nil {
		return nil, notFoundOr(err, "product_not_found")
	}
	return &product, nil
}

// --------------------------------------------------
// Voucher
// --------------------------------------------------

func (r *AppointmentGormRepository) GetVoucherForCustomer(
	ctx context.Context,
	companyID uint,
	customerID uint,
	voucherID uint,
) (*models.Voucher, error) {

	var voucher models.Voucher
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND company_id = ? AND customer_id = ?",
			voucherID, companyID, customerID,
		).
		First(&voucher).Error; err != nil {
		return nil, notFoundOr(err, "voucher_not_found")
	}
	return &voucher, nil
}

func (r *AppointmentGormRepository) GetVoucherByID(
	ctx context.Context,
	voucherID uint,
) (*models.Voucher, error) {

	var voucher models.Voucher
	if err := r.db.WithContext(ctx).First(&voucher, voucherID).Error; err != nil {
		return nil, notFoundOr(err, "voucher_not_found")
	}
	return &voucher, nil
}

func (r *AppointmentGormRepository) SaveVoucher(
	ctx context.Context,
	v *models.Voucher,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) CreateAppointmentServices(
	ctx context.Context,
	lines []models.AppointmentService,
) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
	companyID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", appointmentID, companyID).
		First(&ap).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Line items
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentServices(
	ctx context.Context,
	appointmentID uint,
) ([]models.AppointmentService, error) {

	var lines []models.AppointmentService
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *AppointmentGormRepository) ListAppointmentProducts(
	ctx context.Context,
	appointmentID uint,
) ([]models.AppointmentProduct, error) {

	var lines []models.AppointmentProduct
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *AppointmentGormRepository) HasAppointmentService(
	ctx context.Context,
	appointmentID uint,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AppointmentService{}).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) AddAppointmentService(
	ctx context.Context,
	line *models.AppointmentService,
) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *AppointmentGormRepository) AddAppointmentProduct(
	ctx context.Context,
	line *models.AppointmentProduct,
) error {
	return r.db.WithContext(ctx).Create(line).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBusyWindows(
	ctx context.Context,
	companyID uint,
	employeeID *uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.BusyWindow, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("start_time", "end_time").
		Where(
			"company_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			companyID, "cancelled", dayEnd, dayStart,
		)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var rows []models.Appointment
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	windows := make([]domain.BusyWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, domain.BusyWindow{
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}
	return windows, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	companyID uint,
	employeeID *uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Services.Service").
		Preload("Products.Product").
		Where(
			"company_id = ? AND start_time >= ? AND start_time < ?",
			companyID, start, end,
		)

	if employeeID != nil {
		q = q.Where("employee_id = ?", *employeeID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Commission
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveCommissionRules(
	ctx context.Context,
	companyID uint,
) ([]models.CommissionRule, error) {

	var rules []models.CommissionRule
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND active = ?", companyID, true).
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *AppointmentGormRepository) CreateCommissionRecords(
	ctx context.Context,
	records []models.CommissionRecord,
) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

// --------------------------------------------------
// Stock
// --------------------------------------------------

// GetStockLevelForUpdate trava a linha de saldo (FOR UPDATE) para a
// baixa dentro da transação. Produto sem saldo ganha linha zerada.
func (r *AppointmentGormRepository) GetStockLevelForUpdate(
	ctx context.Context,
	companyID uint,
	productID uint,
) (*models.StockLevel, error) {

	var level models.StockLevel
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ? AND product_id = ?", companyID, productID).
		First(&level).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		level = models.StockLevel{
			CompanyID: companyID,
			ProductID: productID,
			Quantity:  0,
		}
		if err := r.db.WithContext(ctx).Create(&level).Error; err != nil {
			return nil, err
		}
		return &level, nil
	}
	if err != nil {
		return nil, err
	}

	return &level, nil
}

func (r *AppointmentGormRepository) SaveStockLevel(
	ctx context.Context,
	level *models.StockLevel,
) error {
	return r.db.WithContext(ctx).Save(level).Error
}

func (r *AppointmentGormRepository) CreateStockMovement(
	ctx context.Context,
	movement *models.StockMovement,
) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// --------------------------------------------------
// Quote
// --------------------------------------------------

func (r *AppointmentGormRepository) GetQuote(
	ctx context.Context,
	companyID uint,
	quoteID uint,
) (*models.Quote, error) {

	var quote models.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND company_id = ?", quoteID, companyID).
		First(&quote).Error; err != nil {
		return nil, notFoundOr(err, "quote_not_found")
	}
	return &quote, nil
}

func (r *AppointmentGormRepository) SaveQuote(
	ctx context.Context,
	q *models.Quote,
) error {
	return r.db.WithContext(ctx).Save(q).Error
}

// --------------------------------------------------
// Reminders
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForReminder(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]domain.ReminderProjection, error) {

	var rows []domain.ReminderProjection
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id                               AS appointment_id,
			a.start_time                       AS start_time,
			c.name                             AS customer_name,
			c.email                            AS customer_email,
			e.name                             AS company_name,
			COALESCE(string_agg(s.name, ', ' ORDER BY s.name), '') AS service_names
		FROM appointments a
		JOIN customers c  ON c.id = a.customer_id
		JOIN companies e  ON e.id = a.company_id
		LEFT JOIN appointment_services l ON l.appointment_id = a.id
		LEFT JOIN services s             ON s.id = l.service_id
		WHERE a.status = 'scheduled'
		  AND a.reminder_sent = false
		  AND a.start_time >= ?
		  AND a.start_time < ?
		GROUP BY a.id, a.start_time, c.name, c.email, e.name
		ORDER BY a.start_time ASC
	`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) MarkReminderSent(
	ctx context.Context,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("reminder_sent", true).Error
}

// --------------------------------------------------

func notFoundOr(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
