package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checa se o domínio do e-mail existe de fato antes
// do cadastro da empresa. Validação de formato fica com o binding.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return domainReceivesMail(email[at+1:])
}

// domainReceivesMail aceita domínio com registro MX ou, na falta dele,
// com ao menos um A/AAAA (entrega direta ainda é possível).
func domainReceivesMail(domain string) bool {
	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
