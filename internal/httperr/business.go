package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===============================
// Erros de negócio
// ===============================

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInternal
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// WriteError mapeia um erro de negócio para a resposta HTTP. Erros
// desconhecidos viram 500 com a mensagem padrão informada.
func WriteError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, fallbackCode, fallbackMessage)
		return
	}

	status := http.StatusInternalServerError
	switch be.Kind {
	case KindValidation:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	case KindForbidden:
		status = http.StatusForbidden
	case KindConflict:
		status = http.StatusConflict
	}

	Write(c, status, be.Code, messageFor(be.Code))
}

// Mensagens amigáveis por código; código sem mensagem cai no próprio código.
var messages = map[string]string{
	"service_not_found":        "Serviço não encontrado.",
	"appointment_not_found":    "Agendamento não encontrado.",
	"voucher_not_found":        "Voucher não encontrado.",
	"voucher_not_available":    "Voucher já utilizado.",
	"product_not_found":        "Produto não encontrado.",
	"quote_not_found":          "Orçamento não encontrado.",
	"terminal_status":          "Agendamento concluído ou cancelado não pode ser alterado.",
	"invalid_status":           "Status inválido.",
	"missing_payment_fields":   "Forma e condição de pagamento são obrigatórias na conclusão.",
	"duplicate_service":        "Serviço já incluído neste agendamento.",
	"invalid_product_line":     "Produto, quantidade e preço unitário devem ser positivos.",
	"missing_services":         "Informe ao menos um serviço.",
	"invalid_date_or_time":     "Data ou hora inválida.",
	"quote_not_approvable":     "Orçamento não pode ser aprovado.",
}

func messageFor(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
