package delivery

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidTimeMarker(timeMarker []int64) bool {
	return len(timeMarker) == 0 || len(timeMarker) == 2
}
