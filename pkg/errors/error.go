package errors

import "fmt"

// ErrorCode classifies an error for logging and for callers that switch
// on failure kind rather than on message text.
type ErrorCode string

const (
	// GeneralInternalError represents an unexpected internal failure.
	GeneralInternalError ErrorCode = "general_internal_error"
	// ConfigError represents a failure to load or parse configuration.
	ConfigError ErrorCode = "config_error"

	// SymbolNotFoundError represents a request against a symbol that was never listed.
	SymbolNotFoundError ErrorCode = "symbol_not_found"
	// SymbolAlreadyListedError represents an attempt to list a symbol twice.
	SymbolAlreadyListedError ErrorCode = "symbol_already_listed"
	// OrderNotFoundError represents a cancel against an unknown, filled or already cancelled order.
	OrderNotFoundError ErrorCode = "order_not_found"

	// SimulatorStartError represents a failure while bringing up the simulator.
	SimulatorStartError ErrorCode = "simulator_start_error"
	// SimulatorStopError represents a failure to shut the simulator down within its deadline.
	SimulatorStopError ErrorCode = "simulator_stop_error"
)

// CodedError pairs an ErrorCode with an underlying cause.
type CodedError struct {
	Code ErrorCode
	Err  error
}

// NewCodedError creates a CodedError wrapping err under code.
func NewCodedError(code ErrorCode, err error) *CodedError {
	return &CodedError{
		Code: code,
		Err:  err,
	}
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *CodedError) Unwrap() error {
	return e.Err
}

// GetCode returns the error's code, or GeneralInternalError when err is not
// a CodedError.
func GetCode(err error) ErrorCode {
	for err != nil {
		if coded, ok := err.(*CodedError); ok {
			return coded.Code
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	return GeneralInternalError
}
