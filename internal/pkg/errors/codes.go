package errors

import (
	"fmt"
	"net/http"
)

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for different modules
const (
	// Success
	Success = 0

	// Common errors (1000-1999)
	ErrInternalServer = 1000
	ErrInvalidParams  = 1001
	ErrNotFound       = 1002

	// Search errors (2000-2999)
	ErrSearchUnsupportedEngine = 2000
	ErrSearchEmptyQuery        = 2001
	ErrSearchFailed            = 2002

	// Page errors (3000-3999)
	ErrPageFetchFailed = 3000
)

// codeMap maps error codes to their details
var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	// Common errors
	ErrInternalServer: {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:  {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrNotFound:       {ErrNotFound, http.StatusNotFound, "Resource not found"},

	// Search errors
	ErrSearchUnsupportedEngine: {ErrSearchUnsupportedEngine, http.StatusBadRequest, "Unsupported search engine"},
	ErrSearchEmptyQuery:        {ErrSearchEmptyQuery, http.StatusBadRequest, "Empty search query"},
	ErrSearchFailed:            {ErrSearchFailed, http.StatusBadGateway, "Search failed"},

	// Page errors
	ErrPageFetchFailed: {ErrPageFetchFailed, http.StatusBadGateway, "Page fetch failed"},
}

// GetCode returns the Code for a given error code
func GetCode(code int) Code {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return codeMap[ErrInternalServer]
}

// GetHTTPStatus returns HTTP status for a given error code
func GetHTTPStatus(code int) int {
	return GetCode(code).Status
}

// GetMessage returns the message for a given error code
func GetMessage(code int) string {
	return GetCode(code).Message
}

// IsClientError checks if the code represents a client error (4xx)
func IsClientError(code int) bool {
	status := GetHTTPStatus(code)
	return status >= 400 && status < 500
}

// FormatError formats an error message with code
func FormatError(code int, details ...string) string {
	msg := GetMessage(code)
	if len(details) > 0 && details[0] != "" {
		return fmt.Sprintf("%s: %s", msg, details[0])
	}
	return msg
}
