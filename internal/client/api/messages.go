package api

import "net/http"

// Fallback is shown for any status code without a dedicated message.
const Fallback = "Failed"

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Invalid Credentials",
	http.StatusUnauthorized:        "Invalid Token",
	http.StatusNotFound:            "Not Found",
	http.StatusInternalServerError: "Server Error",
}

// MessageForStatus maps an HTTP status code to the short text shown to users.
func MessageForStatus(code int) string {
	if m, ok := statusMessages[code]; ok {
		return m
	}
	return Fallback
}
