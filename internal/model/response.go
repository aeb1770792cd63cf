package model

import (
	"net/http"
	"time"
)

// APIResponse is the uniform envelope around every response body.
//
//	{
//	  "code": 200,
//	  "message": "success",
//	  "data": {...},
//	  "timestamp": "2024-01-01T08:00:00+08:00"
//	}
//
// code is the business status; 200 means success.
type APIResponse struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewSuccess wraps data in a success envelope.
func NewSuccess(data interface{}) APIResponse {
	return APIResponse{
		Code:      200,
		Message:   "success",
		Data:      data,
		Timestamp: envelopeTimestamp(),
	}
}

// NewSuccessWithMessage wraps data in a success envelope with a custom
// message.
func NewSuccessWithMessage(data interface{}, message string) APIResponse {
	return APIResponse{
		Code:      200,
		Message:   message,
		Data:      data,
		Timestamp: envelopeTimestamp(),
	}
}

// NewMessage builds a success envelope without a data payload.
func NewMessage(message string) APIResponse {
	return APIResponse{
		Code:      200,
		Message:   message,
		Timestamp: envelopeTimestamp(),
	}
}

// NewError builds a failure envelope carrying a business code.
func NewError(code int, message string) APIResponse {
	return APIResponse{
		Code:      code,
		Message:   message,
		Timestamp: envelopeTimestamp(),
	}
}

// HTTPStatus maps an envelope code onto the HTTP status line. Unknown
// business codes fall back to 200 OK even when they represent errors;
// existing clients read the code field for the real outcome, so the
// fallback stays as-is.
func HTTPStatus(code int) int {
	switch code {
	case 200:
		return http.StatusOK
	case 201:
		return http.StatusCreated
	case 400:
		return http.StatusBadRequest
	case 401:
		return http.StatusUnauthorized
	case 403:
		return http.StatusForbidden
	case 404:
		return http.StatusNotFound
	case 422:
		return http.StatusUnprocessableEntity
	case 500:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// envelopeTimestamp is RFC3339 in the server's local offset.
func envelopeTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
