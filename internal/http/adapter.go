package http

import (
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"
)

// ErrorResponse is the JSON body of every non-2xx answer produced by an AppHttpHandler.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		logger := loggers.Ctx(r.Context())
		switch {
		case svcErr.IsInternalError():
			logger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in handler")
		case svcErr.HttpStatusCode == http.StatusUnauthorized:
			// Repeated failures from one agent usually mean a reporter with a rotated secret.
			logger.Warn().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldUserAgent, agentFamily(r)).
				Msg("unauthorized request")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Str("errorMessage", svcErr.Message).
		Int("httpStatusCode", svcErr.HttpStatusCode).
		Msg("error response")

	_ = writeJSON(w, svcErr.HttpStatusCode, ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}
