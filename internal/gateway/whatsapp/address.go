package whatsapp

import "strings"

const (
	countryCodePrefix = "55"
	addressSuffix     = "@c.us"
)

// FormatAddress normalizes a contact into the relay's address form. The first
// two characters must be decimal digits; the country code is prepended when
// missing and the relay domain suffix appended when missing. The second return
// reports whether the contact was usable at all.
func FormatAddress(contato string) (string, bool) {
	address := strings.TrimSpace(contato)
	if len(address) < 2 {
		return "", false
	}
	if !isDigit(address[0]) || !isDigit(address[1]) {
		return "", false
	}

	if address[:2] != countryCodePrefix {
		address = countryCodePrefix + address
	}
	if !strings.HasSuffix(address, addressSuffix) {
		address += addressSuffix
	}
	return address, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
