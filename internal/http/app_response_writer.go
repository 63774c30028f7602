package http

import (
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response so the metrics and
// completion-log middlewares can label a request after the handler returns.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError == nil {
		return ""
	}
	return w.svcError.Code
}

// responseOutcome returns the status written to w and the error code of the response, if any.
// Handlers that never call WriteHeader answered 200.
func responseOutcome(w http.ResponseWriter) (status int, errorCode string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
		errorCode = appWriter.ErrorCode()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status, errorCode
}
