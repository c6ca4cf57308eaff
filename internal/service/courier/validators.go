package courier

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidUserName(userName string) bool {
	return strings.TrimSpace(userName) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "unavailable", "busy", "offline":
		return true
	default:
		return false
	}
}
