package navicodeerror

import (
	"errors"
	"fmt"
	"time"
)

type NaviCodeError struct {
	ErrorCode ErrorCode
	Message   string
	Cause     error
	Timestamp time.Time
}

func (instance *NaviCodeError) Error() string {
	if instance.Cause != nil {
		return fmt.Sprintf("[%d] %s : %v", instance.ErrorCode, instance.Message, instance.Cause)
	}
	return fmt.Sprintf("[%d] %s", instance.ErrorCode, instance.Message)
}

func (instance *NaviCodeError) Unwrap() error {
	return instance.Cause
}

func Wrap(err error, errorCode ErrorCode, message string) *NaviCodeError {
	return &NaviCodeError{
		ErrorCode: errorCode,
		Message:   message,
		Cause:     err,
		Timestamp: time.Now(),
	}
}

// CodeOf extracts the error code from any error in the chain, 0 when none.
func CodeOf(err error) ErrorCode {
	var navError *NaviCodeError
	if errors.As(err, &navError) {
		return navError.ErrorCode
	}
	return 0
}
