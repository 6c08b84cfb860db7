package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of an e-mail address
// actually resolves: MX records first, a plain host lookup as fallback.
// Addresses without a domain part are invalid outright.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small domains receive mail on their A/AAAA host directly.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
