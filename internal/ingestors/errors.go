package ingestors

import (
	"fmt"

	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed       = "ING_1000"
	codeUnauthorized           = "ING_1001"
	codeReportAlreadyRecorded  = "ING_1002"
	codeInternalLogStoreFailed = "ING_9000"
)

// errValidationFailed returns an error for malformed reports.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errUnauthorized returns an error when the shared secret does not match.
func errUnauthorized() *svcerrors.ServiceError {
	return svcerrors.NewUnauthorizedError(codeUnauthorized, "invalid shared secret", nil)
}

// errReportAlreadyRecorded returns an error when the server already reported within the same second.
func errReportAlreadyRecorded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyRecorded, "report already recorded for this second", cause)
}

// errInternalLogStoreFailed returns an error when the log store append fails.
func errInternalLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogStoreFailed, fmt.Errorf("logStoreFailed: %w", cause))
}
