package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/report"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
	"github.com/diillson/pos-sales-dashboard-go/pkg/version"
)

// --- Response types ---

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type healthResponse struct {
	Status  string       `json:"status"`
	Version version.Info `json:"version"`
	Time    time.Time    `json:"time"`
}

type presetsResponse struct {
	Today   entity.Date             `json:"today"`
	Presets []usecase.PresetRange `json:"presets"`
}

type highlightResponse struct {
	Text     string           `json:"text"`
	Query    string           `json:"query"`
	Segments []report.Segment `json:"segments"`
}

// --- Handlers ---

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{Status: "ok", Version: version.Get(), Time: s.dashboard.Now()})
}

func (s *Server) presets(w http.ResponseWriter, r *http.Request) {
	now := s.dashboard.Now()
	render.JSON(w, r, presetsResponse{
		Today:   entity.DateOf(now),
		Presets: s.dashboard.Presets(now),
	})
}

func (s *Server) loadDashboard(w http.ResponseWriter, r *http.Request) {
	dr, ok := s.dateRange(w, r)
	if !ok {
		return
	}

	view := s.dashboard.Load(r.Context(), dr)
	if view.Failed() {
		// Nada a exibir; o corpo ainda carrega o erro de cada lado.
		render.Status(r, http.StatusBadGateway)
	}
	render.JSON(w, r, view)
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	dr, ok := s.dateRange(w, r)
	if !ok {
		return
	}

	view := s.dashboard.Refresh(r.Context(), dr)
	if view.Failed() {
		render.Status(r, http.StatusBadGateway)
	}
	render.JSON(w, r, view)
}

func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	dr, ok := s.dateRange(w, r)
	if !ok {
		return
	}

	state, err := filterState(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	view, err := s.dashboard.Table(r.Context(), dr, state)
	if err != nil {
		s.fail(w, r, fetchStatus(err), err)
		return
	}
	render.JSON(w, r, view)
}

func (s *Server) highlight(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	text, query := q.Get("text"), q.Get("q")
	render.JSON(w, r, highlightResponse{Text: text, Query: query, Segments: report.Highlight(text, query)})
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	kind, err := entity.ParseArtifactKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	format, err := entity.ParseExportFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	dr, ok := s.dateRange(w, r)
	if !ok {
		return
	}

	artifact, err := s.dashboard.Export(r.Context(), kind, format, dr)
	if err != nil {
		// Falhas de exportação nunca derrubam o servidor; o cliente recebe o erro em JSON.
		// Falha da API do POS é 502/504; falha ao gerar o arquivo é 500.
		s.fail(w, r, fetchStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

// --- Helpers ---

// dateRange resolve from/to ou preset; responde 400 quando inválidos.
func (s *Server) dateRange(w http.ResponseWriter, r *http.Request) (entity.DateRange, bool) {
	q := r.URL.Query()
	dr, err := s.dashboard.ResolveRange(q.Get("preset"), q.Get("from"), q.Get("to"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return entity.DateRange{}, false
	}
	return dr, true
}

func filterState(r *http.Request) (entity.FilterState, error) {
	q := r.URL.Query()
	state := entity.NewFilterState().
		WithSearch(q.Get("search")).
		WithStatus(q.Get("status"))

	if raw := q.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return state, fmt.Errorf("%w: %q", types.ErrInvalidPageSize, raw)
		}
		if state, err = state.WithPageSize(size); err != nil {
			return state, err
		}
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return state, fmt.Errorf("invalid page %q", raw)
		}
		state = state.WithPage(page)
	}
	return state, nil
}

func fetchStatus(err error) int {
	var fetchErr *types.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.IsTimeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error(), RequestID: RequestIDFrom(r.Context())})
}
