package errors

import (
	"net/http"

	"neosafe/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Box registry errors
	ErrBoxNotFound = NewBaseError(
		http.StatusNotFound,
		"BOX_NOT_FOUND",
		"找不到該保險箱",
		"",
	)

	ErrClaimCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"CLAIM_CODE_NOT_FOUND",
		"無效或未知的認領碼",
		"",
	)

	ErrBoxAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"BOX_ALREADY_CLAIMED",
		"此保險箱已被其他使用者認領",
		"",
	)

	ErrBoxNotAvailable = NewBaseError(
		http.StatusConflict,
		"BOX_NOT_AVAILABLE",
		"此保險箱目前無法進行移轉",
		"",
	)

	ErrClaimedBoxImmutable = NewBaseError(
		http.StatusConflict,
		"CLAIMED_BOX_IMMUTABLE",
		"已認領的保險箱無法刪除或修改",
		"",
	)

	ErrBoxCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"BOX_CREATION_FAILED",
		"建立保險箱失敗",
		"",
	)

	// Transfer workflow errors
	ErrPropertyCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPERTY_CODE_NOT_FOUND",
		"找不到使用該產權碼的保險箱",
		"",
	)

	ErrTransferRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSFER_REQUEST_NOT_FOUND",
		"找不到該移轉申請",
		"",
	)

	ErrPendingTransferExists = NewBaseError(
		http.StatusConflict,
		"PENDING_TRANSFER_EXISTS",
		"你已對此保險箱送出待審核的移轉申請",
		"",
	)

	ErrTransferAlreadyProcessed = NewBaseError(
		http.StatusConflict,
		"TRANSFER_ALREADY_PROCESSED",
		"此移轉申請已處理完畢",
		"",
	)

	// Authorization errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotTransferProvider = NewBaseError(
		http.StatusForbidden,
		"NOT_TRANSFER_PROVIDER",
		"你不是此移轉申請對應的供應商",
		"",
	)

	ErrDeviceOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION",
		"您沒有權限存取此裝置",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該裝置",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
