// errors/test_suite_errors.go
package errors

import "errors"

var (
	ErrTestSuiteNotFound     = errors.New("test suite not found")
	ErrInvalidTestSuiteData  = errors.New("invalid test suite data")
	ErrTestSuiteValidation   = errors.New("test suite form is invalid")
	ErrSelectorNotOpen       = errors.New("test suite selector is not open")
	ErrTestSuiteUpdateFailed = errors.New("failed to update test suite")
	ErrTestSuiteDeleteFailed = errors.New("failed to delete test suite")
)
