package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/wonny/qvscreen/internal/contracts"
	"github.com/wonny/qvscreen/internal/criteria"
	"github.com/wonny/qvscreen/internal/engine/runner"
	"github.com/wonny/qvscreen/internal/external/wikipedia"
	"github.com/wonny/qvscreen/internal/store"
	"github.com/wonny/qvscreen/pkg/config"
	"github.com/wonny/qvscreen/pkg/logger"
)

// MetricsFetcher fetches raw fundamentals for a symbol list.
type MetricsFetcher interface {
	FetchAll(ctx context.Context, symbols []string) (contracts.MetricsPayload, []contracts.StockError)
}

// UniverseFetcher fetches the default screening universe.
type UniverseFetcher interface {
	FetchConstituents(ctx context.Context) ([]wikipedia.Constituent, error)
}

// ScreenHandler handles screening API endpoints.
type ScreenHandler struct {
	runner   *runner.Runner
	fetcher  MetricsFetcher
	universe UniverseFetcher
	runs     *store.RunRepository // nil when no database is configured
	config   *config.Config
	logger   *logger.Logger
	upgrader websocket.Upgrader
}

// NewScreenHandler creates a screening handler. runs may be nil.
func NewScreenHandler(
	r *runner.Runner,
	fetcher MetricsFetcher,
	universe UniverseFetcher,
	runs *store.RunRepository,
	cfg *config.Config,
	log *logger.Logger,
) *ScreenHandler {
	return &ScreenHandler{
		runner:   r,
		fetcher:  fetcher,
		universe: universe,
		runs:     runs,
		config:   cfg,
		logger:   log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ScreenRequest is the screening request body. Either inline metrics or a
// symbol list; with neither, the S&P 500 universe is fetched.
type ScreenRequest struct {
	Symbols  []string                 `json:"symbols,omitempty"`
	Metrics  contracts.MetricsPayload `json:"metrics,omitempty"`
	Criteria json.RawMessage          `json:"criteria,omitempty"`
	Workers  int                      `json:"workers,omitempty"`
}

// ScreenResponse wraps the run report with its stored id, when persisted.
type ScreenResponse struct {
	RunID  int64                `json:"run_id,omitempty"`
	Report *contracts.RunReport `json:"report"`
}

// Screen runs a screening pass synchronously.
// POST /api/screen
func (h *ScreenHandler) Screen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	crit, err := h.resolveCriteria(req.Criteria)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	payload, fetchErrs, err := h.resolvePayload(ctx, &req)
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve screening payload")
		respondError(w, http.StatusBadGateway, "Failed to fetch metrics")
		return
	}

	report, err := h.run(ctx, payload, crit, req.Workers, nil)
	if err != nil {
		var vErr criteria.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.logger.WithError(err).Error("Screening run failed")
		respondError(w, http.StatusInternalServerError, "Screening run failed")
		return
	}
	report.Errors = append(fetchErrs, report.Errors...)

	resp := ScreenResponse{Report: report}
	if h.runs != nil {
		id, err := h.runs.Save(ctx, report)
		if err != nil {
			h.logger.WithError(err).Error("Failed to persist run")
		} else {
			resp.RunID = id
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// streamMessage is one websocket frame on the progress stream.
type streamMessage struct {
	Type   string               `json:"type"` // progress, report, error
	Done   int                  `json:"done,omitempty"`
	Total  int                  `json:"total,omitempty"`
	Symbol string               `json:"symbol,omitempty"`
	Report *contracts.RunReport `json:"report,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// Stream runs a screening pass over a websocket, pushing per-stock progress
// and the final report.
// GET /api/screen/stream?symbols=AAPL,MSFT
func (h *ScreenHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()

	req := ScreenRequest{}
	if raw := r.URL.Query().Get("symbols"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Symbols = append(req.Symbols, s)
			}
		}
	}

	crit, err := h.resolveCriteria(nil)
	if err != nil {
		conn.WriteJSON(streamMessage{Type: "error", Error: err.Error()})
		return
	}

	payload, fetchErrs, err := h.resolvePayload(ctx, &req)
	if err != nil {
		conn.WriteJSON(streamMessage{Type: "error", Error: "failed to fetch metrics"})
		return
	}

	// Progress callbacks arrive from the runner's collector goroutine one at
	// a time, so writing to the socket here is safe.
	report, err := h.run(ctx, payload, crit, 0, func(done, total int, symbol string) {
		conn.WriteJSON(streamMessage{Type: "progress", Done: done, Total: total, Symbol: symbol})
	})
	if err != nil {
		conn.WriteJSON(streamMessage{Type: "error", Error: err.Error()})
		return
	}
	report.Errors = append(fetchErrs, report.Errors...)

	if h.runs != nil {
		if _, err := h.runs.Save(ctx, report); err != nil {
			h.logger.WithError(err).Error("Failed to persist run")
		}
	}

	conn.WriteJSON(streamMessage{Type: "report", Report: report})
}

// DefaultCriteria returns the built-in criteria so clients can edit from a
// known baseline.
// GET /api/criteria/default
func (h *ScreenHandler) DefaultCriteria(w http.ResponseWriter, r *http.Request) {
	c := criteria.Default()
	respondJSON(w, http.StatusOK, c)
}

func (h *ScreenHandler) resolveCriteria(overrides json.RawMessage) (*criteria.Criteria, error) {
	c := criteria.Default()
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (h *ScreenHandler) resolvePayload(ctx context.Context, req *ScreenRequest) (contracts.MetricsPayload, []contracts.StockError, error) {
	if len(req.Metrics) > 0 {
		return req.Metrics, nil, nil
	}

	symbols := req.Symbols
	if len(symbols) == 0 {
		constituents, err := h.universe.FetchConstituents(ctx)
		if err != nil {
			return nil, nil, err
		}
		limit := h.config.Fetch.UniverseLimit
		for i, con := range constituents {
			if limit > 0 && i >= limit {
				break
			}
			symbols = append(symbols, con.Symbol)
		}
	}

	payload, errs := h.fetcher.FetchAll(ctx, symbols)
	return payload, errs, nil
}

func (h *ScreenHandler) run(ctx context.Context, payload contracts.MetricsPayload, crit *criteria.Criteria, workers int, onProgress func(int, int, string)) (*contracts.RunReport, error) {
	if workers <= 0 {
		workers = h.config.Screen.Workers
	}
	return h.runner.Run(ctx, payload, crit, runner.Config{
		Workers:    workers,
		OnProgress: onProgress,
	})
}
