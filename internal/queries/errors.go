package queries

import (
	"fmt"

	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"
)

// QueryService errors
const (
	codeServerNotFound         = "QRY_1000"
	codeInternalLogStoreFailed = "QRY_9000"
	codeInternalCatalogFailed  = "QRY_9001"
)

// errServerNotFound returns an error when the requested server is not in the catalog.
func errServerNotFound(serverName string, cause error) *svcerrors.ServiceError {
	if serverName == "" {
		return svcerrors.NewNotFoundError(codeServerNotFound, "no servers in catalog", cause)
	}
	return svcerrors.NewNotFoundError(codeServerNotFound, fmt.Sprintf("server %q not found", serverName), cause)
}

func errInternalLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogStoreFailed, fmt.Errorf("logStoreFailed: %w", cause))
}

func errInternalCatalogFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCatalogFailed, fmt.Errorf("catalogFailed: %w", cause))
}
