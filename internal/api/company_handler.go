package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/companies-api/internal/api/shared"
	"github.com/phrazzld/companies-api/internal/company"
	"github.com/phrazzld/companies-api/internal/platform/logger"
	"github.com/phrazzld/companies-api/internal/store"
)

// QueryObserver receives the outcome of every executed route query.
type QueryObserver interface {
	ObserveQuery(route, outcome string, documents int)
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(string, string, int) {}

// CompanyHandler executes the fixed company queries.
type CompanyHandler struct {
	reader   store.CollectionReader
	logger   *slog.Logger
	observer QueryObserver
}

// NewCompanyHandler creates a new CompanyHandler. A nil logger falls back to
// slog.Default and a nil observer discards observations.
func NewCompanyHandler(reader store.CollectionReader, log *slog.Logger, obs QueryObserver) *CompanyHandler {
	if reader == nil {
		// ALLOW-PANIC: a handler without a collection is a wiring bug
		panic("api: nil collection reader")
	}
	if log == nil {
		log = slog.Default()
	}
	if obs == nil {
		obs = noopObserver{}
	}
	return &CompanyHandler{
		reader:   reader,
		logger:   log.With(slog.String("component", "company_handler")),
		observer: obs,
	}
}

// Query returns the handler for route. The request carries no input; the
// route's query is executed as defined. The query runs detached from the
// request's cancellation, so a client going away does not abort it; the
// store's own operation timeout still bounds it.
func (h *CompanyHandler) Query(route company.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer h.recoverQuery(w, r, route)
		log := logger.FromContextOrDefault(r.Context(), h.logger)

		docs, err := h.reader.Find(context.WithoutCancel(r.Context()), route.Query)
		if err != nil {
			h.fail(w, r, route, err)
			return
		}

		body, err := json.Marshal(shared.Documents(docs))
		if err != nil {
			h.fail(w, r, route, fmt.Errorf("%w: encode response: %w", store.ErrDecodeFailed, err))
			return
		}

		h.observer.ObserveQuery(route.Name, "ok", len(docs))
		log.Debug("query served",
			slog.String("route", route.Name),
			slog.Int("documents", len(docs)))

		shared.RespondWithBody(w, r, http.StatusOK, body)
	}
}

func (h *CompanyHandler) fail(w http.ResponseWriter, r *http.Request, route company.Route, err error) {
	kind := ErrorKind(err)
	h.observer.ObserveQuery(route.Name, kind, 0)
	shared.RespondWithErrorAndLog(w, r,
		MapErrorToStatusCode(err),
		GetSafeErrorMessage(err),
		err,
		shared.WithLogAttrs(
			slog.String("route", route.Name),
			slog.String("error_kind", kind),
		))
}

// recoverQuery turns a panic while serving route into the route's regular
// error response. Nothing has been written when a panic can occur, since the
// body is written last.
func (h *CompanyHandler) recoverQuery(w http.ResponseWriter, r *http.Request, route company.Route) {
	rec := recover()
	if rec == nil {
		return
	}
	if rec == http.ErrAbortHandler {
		// ALLOW-PANIC: net/http uses this sentinel to abort a response
		panic(rec)
	}
	h.logger.Error("panic serving query",
		slog.String("route", route.Name),
		slog.String("stack", string(debug.Stack())))
	h.fail(w, r, route, fmt.Errorf("panic: %v", rec))
}

// Register mounts every route under company.PathPrefix on r.
func (h *CompanyHandler) Register(r chi.Router, routes []company.Route) {
	r.Route(company.PathPrefix, func(r chi.Router) {
		for _, route := range routes {
			r.Get(route.Path, h.Query(route))
		}
	})
}
