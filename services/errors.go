package services

import "net/http"

// Error codes carried in the error payload so clients can branch on the
// business rule that failed instead of parsing messages.
const (
	CodeNotFound          = "not_found"
	CodeUnavailable       = "unavailable"
	CodeInsufficientStock = "insufficient_stock"
	CodeInvalidTransition = "invalid_transition"
	CodeValidation        = "validation"
	CodeUnexpected        = "unexpected"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int         `json:"-"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string { return e.Message }

// InsufficientStockItem itemizes one order line that cannot be covered by
// the current stock.
type InsufficientStockItem struct {
	DrinkID   string `json:"id"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func notFoundError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

func unavailableError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Code: CodeUnavailable, Message: message}
}

func insufficientStockError(items []InsufficientStockItem) *ServiceError {
	return &ServiceError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInsufficientStock,
		Message:    "Stock insuficiente para los productos solicitados",
		Details:    items,
	}
}

func invalidTransitionError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Code: CodeInvalidTransition, Message: message}
}

func validationError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func unexpectedError(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Code: CodeUnexpected, Message: message}
}
