package http

import (
	"fmt"

	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"
)

// HTTP layer errors
const (
	codeMalformedBody       = "HTTP_1000"
	codeMissingParameter    = "HTTP_1001"
	codeInternalUnavailable = "HTTP_9000"
)

// errMalformedBody returns an error when the request body cannot be decoded.
func errMalformedBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedBody, "request body must be a JSON object", cause)
}

// errMissingParameter returns an error when a required query parameter is empty.
func errMissingParameter(name string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingParameter, fmt.Sprintf("query parameter %q is required", name), nil)
}

func errInternalUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUnavailable, fmt.Errorf("databaseUnavailable: %w", cause))
}
