package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/chanderlud/dstat-frontend/internal/shared/loggers"
	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"
	"github.com/chanderlud/dstat-frontend/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/mileusna/useragent"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwRequestID reuses the caller's x-request-id or mints a ULID, and attaches a request-scoped logger to the context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwPrometheus records request count and latency labelled by chi route pattern rather than raw path.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status, errorCode := responseOutcome(w)
		labels := []string{r.Method, route, strconv.Itoa(status), errorCode}

		metricHTTPRequestsTotal.WithLabelValues(labels...).Inc()
		metricHTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// mwRequestCompletionLog writes one info line per request.
// Reporters are identified by agent family only; the raw header is not logged.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status, errorCode := responseOutcome(w)
			event := loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Str(loggers.FieldUserAgent, agentFamily(r))
			if errorCode != "" {
				event = event.Str(loggers.FieldErrorCode, errorCode)
			}
			event.Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer turns a handler panic into a SYS_9000 JSON response.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			loggers.Ctx(r.Context()).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("http panic recovered: %v", p)

			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			writeErrorResponse(w, r, svcerrors.NewInternalErrorPanic(panicErr))
		}()

		next.ServeHTTP(w, r)
	})
}

// agentFamily reduces the user-agent header to a low-cardinality name such as "Chrome" or "curl".
func agentFamily(r *http.Request) string {
	raw := userAgent(r)
	if raw == "" {
		return "unknown"
	}
	if name := useragent.Parse(raw).Name; name != "" {
		return name
	}
	return "other"
}
