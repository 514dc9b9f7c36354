package appointment

import "github.com/AgendaLivreBR/salon-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled       Status = "scheduled"
	StatusInProgress      Status = "in-progress"
	StatusWaitingCustomer Status = "waiting-customer"
	StatusWaitingPart     Status = "waiting-part"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusWaitingCustomer,
		StatusWaitingPart, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Estados terminais: nenhuma transição sai deles.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition valida a mudança de status. Estado terminal nunca
// transiciona; transição para o mesmo estado é rejeitada.
func CanTransition(current, next Status) error {
	if !IsValidStatus(next) {
		return httperr.ErrValidation("invalid_status")
	}
	if IsTerminal(current) {
		return httperr.ErrForbidden("terminal_status")
	}
	if current == next {
		return httperr.ErrValidation("invalid_status")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrForbidden("terminal_status")
	}
	return nil
}

// CanEditLines define se linhas de serviço/produto podem ser incluídas
func CanEditLines(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrForbidden("terminal_status")
	}
	return nil
}
