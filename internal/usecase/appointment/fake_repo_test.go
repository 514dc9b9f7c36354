package appointment

import (
	"context"
	"time"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// fakeRepo guarda tudo em memória. Transact tira um snapshot e o
// restaura quando fn falha, imitando o rollback do banco.
type fakeRepo struct {
	companies    map[uint]models.Company
	employees    map[uint]models.Employee
	services     map[uint]models.Service
	products     map[uint]models.Product
	vouchers     map[uint]models.Voucher
	appointments map[uint]models.Appointment
	quotes       map[uint]models.Quote
	stockLevels  map[uint]models.StockLevel

	apServices []models.AppointmentService
	apProducts []models.AppointmentProduct
	rules      []models.CommissionRule
	records    []models.CommissionRecord
	movements  []models.StockMovement
	busy       []domain.BusyWindow

	reminders []domain.ReminderProjection
	sent      []uint

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		companies:    map[uint]models.Company{},
		employees:    map[uint]models.Employee{},
		services:     map[uint]models.Service{},
		products:     map[uint]models.Product{},
		vouchers:     map[uint]models.Voucher{},
		appointments: map[uint]models.Appointment{},
		quotes:       map[uint]models.Quote{},
		stockLevels:  map[uint]models.StockLevel{},
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (f *fakeRepo) snapshot() fakeRepo {
	cp := *f
	cp.companies = cloneMap(f.companies)
	cp.employees = cloneMap(f.employees)
	cp.services = cloneMap(f.services)
	cp.products = cloneMap(f.products)
	cp.vouchers = cloneMap(f.vouchers)
	cp.appointments = cloneMap(f.appointments)
	cp.quotes = cloneMap(f.quotes)
	cp.stockLevels = cloneMap(f.stockLevels)
	cp.apServices = append([]models.AppointmentService(nil), f.apServices...)
	cp.apProducts = append([]models.AppointmentProduct(nil), f.apProducts...)
	cp.rules = append([]models.CommissionRule(nil), f.rules...)
	cp.records = append([]models.CommissionRecord(nil), f.records...)
	cp.movements = append([]models.StockMovement(nil), f.movements...)
	return cp
}

func (f *fakeRepo) Transact(ctx context.Context, fn func(domain.Repository) error) error {
	saved := f.snapshot()
	if err := fn(f); err != nil {
		*f = saved
		return err
	}
	return nil
}

func (f *fakeRepo) GetCompanyByID(ctx context.Context, id uint) (*models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, httperr.ErrNotFound("company_not_found")
	}
	return &c, nil
}

func (f *fakeRepo) GetEmployee(ctx context.Context, companyID, employeeID uint) (*models.Employee, error) {
	e, ok := f.employees[employeeID]
	if !ok || e.CompanyID != companyID {
		return nil, httperr.ErrNotFound("employee_not_found")
	}
	return &e, nil
}

func (f *fakeRepo) GetServices(ctx context.Context, companyID uint, ids []uint) ([]models.Service, error) {
	out := make([]models.Service, 0, len(ids))
	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		s, ok := f.services[id]
		if !ok || s.CompanyID != companyID {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) GetProduct(ctx context.Context, companyID, productID uint) (*models.Product, error) {
	p, ok := f.products[productID]
	if !ok || p.CompanyID != companyID {
		return nil, httperr.ErrNotFound("product_not_found")
	}
	return &p, nil
}

func (f *fakeRepo) GetVoucherForCustomer(ctx context.Context, companyID, customerID, voucherID uint) (*models.Voucher, error) {
	v, ok := f.vouchers[voucherID]
	if !ok || v.CompanyID != companyID || v.CustomerID != customerID {
		return nil, httperr.ErrNotFound("voucher_not_found")
	}
	return &v, nil
}

func (f *fakeRepo) GetVoucherByID(ctx context.Context, voucherID uint) (*models.Voucher, error) {
	v, ok := f.vouchers[voucherID]
	if !ok {
		return nil, httperr.ErrNotFound("voucher_not_found")
	}
	return &v, nil
}

func (f *fakeRepo) SaveVoucher(ctx context.Context, v *models.Voucher) error {
	f.vouchers[v.ID] = *v
	return nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.id()
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) CreateAppointmentServices(ctx context.Context, lines []models.AppointmentService) error {
	f.apServices = append(f.apServices, lines...)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, appointmentID, companyID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.CompanyID != companyID {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	return &ap, nil
}

func (f *fakeRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) ListAppointmentServices(ctx context.Context, appointmentID uint) ([]models.AppointmentService, error) {
	var out []models.AppointmentService
	for _, l := range f.apServices {
		if l.AppointmentID == appointmentID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentProducts(ctx context.Context, appointmentID uint) ([]models.AppointmentProduct, error) {
	var out []models.AppointmentProduct
	for _, l := range f.apProducts {
		if l.AppointmentID == appointmentID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeRepo) HasAppointmentService(ctx context.Context, appointmentID, serviceID uint) (bool, error) {
	for _, l := range f.apServices {
		if l.AppointmentID == appointmentID && l.ServiceID == serviceID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) AddAppointmentService(ctx context.Context, line *models.AppointmentService) error {
	line.ID = f.id()
	f.apServices = append(f.apServices, *line)
	return nil
}

func (f *fakeRepo) AddAppointmentProduct(ctx context.Context, line *models.AppointmentProduct) error {
	line.ID = f.id()
	f.apProducts = append(f.apProducts, *line)
	return nil
}

func (f *fakeRepo) ListBusyWindows(ctx context.Context, companyID uint, employeeID *uint, dayStart, dayEnd time.Time) ([]domain.BusyWindow, error) {
	return f.busy, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, companyID uint, employeeID *uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CompanyID != companyID {
			continue
		}
		if ap.StartTime.Before(end) && ap.StartTime.After(start.Add(-time.Nanosecond)) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveCommissionRules(ctx context.Context, companyID uint) ([]models.CommissionRule, error) {
	var out []models.CommissionRule
	for _, r := range f.rules {
		if r.CompanyID == companyID && r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateCommissionRecords(ctx context.Context, records []models.CommissionRecord) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeRepo) GetStockLevelForUpdate(ctx context.Context, companyID, productID uint) (*models.StockLevel, error) {
	level, ok := f.stockLevels[productID]
	if !ok {
		level = models.StockLevel{
			ID:        f.id(),
			CompanyID: companyID,
			ProductID: productID,
		}
		f.stockLevels[productID] = level
	}
	return &level, nil
}

func (f *fakeRepo) SaveStockLevel(ctx context.Context, level *models.StockLevel) error {
	f.stockLevels[level.ProductID] = *level
	return nil
}

func (f *fakeRepo) CreateStockMovement(ctx context.Context, movement *models.StockMovement) error {
	movement.ID = f.id()
	f.movements = append(f.movements, *movement)
	return nil
}

func (f *fakeRepo) GetQuote(ctx context.Context, companyID, quoteID uint) (*models.Quote, error) {
	q, ok := f.quotes[quoteID]
	if !ok || q.CompanyID != companyID {
		return nil, httperr.ErrNotFound("quote_not_found")
	}
	return &q, nil
}

func (f *fakeRepo) SaveQuote(ctx context.Context, q *models.Quote) error {
	f.quotes[q.ID] = *q
	return nil
}

func (f *fakeRepo) ListForReminder(ctx context.Context, from, to time.Time) ([]domain.ReminderProjection, error) {
	return f.reminders, nil
}

func (f *fakeRepo) MarkReminderSent(ctx context.Context, appointmentID uint) error {
	f.sent = append(f.sent, appointmentID)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
