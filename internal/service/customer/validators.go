package customer

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
