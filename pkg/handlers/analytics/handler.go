package analytics

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/equipment-insights/pkg/models/api"
	"github.com/de-tools/equipment-insights/pkg/runtime/export"
	"github.com/de-tools/equipment-insights/pkg/services/insights"
)

type Handler struct {
	service insights.Service
}

func NewHandler(service insights.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Forecast(r.Context(), filter)
	h.respond(w, r, "forecast", resp, err)
}

func (h *Handler) GetSeasonality(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Seasonality(r.Context(), filter)
	h.respond(w, r, "seasonality", resp, err)
}

func (h *Handler) GetFinancial(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Financial(r.Context(), filter)
	h.respond(w, r, "financial", resp, err)
}

func (h *Handler) GetUtilization(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Utilization(r.Context(), filter)
	h.respond(w, r, "utilization", resp, err)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Dashboard(r.Context(), filter)
	h.respond(w, r, "dashboard", resp, err)
}

func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	filter, ok := parseFilter(w, r)
	if !ok {
		return
	}
	resp, err := h.service.Dashboard(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build dashboard for export")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=equipment-insights.xlsx")
	if err := export.WriteWorkbook(w, resp); err != nil {
		logger.Error().Err(err).Msg("failed to write workbook")
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, analysis string, resp any, err error) {
	if err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("analysis", analysis).
			Msg("failed to load snapshot")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func parseFilter(w http.ResponseWriter, r *http.Request) (insights.Filter, bool) {
	q := r.URL.Query()
	filter := insights.Filter{Category: q.Get("category")}

	var err error
	if filter.From, err = insights.ParseFrom(q.Get("from")); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid from: %v", err))
		return filter, false
	}
	if filter.To, err = insights.ParseTo(q.Get("to")); err != nil {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid to: %v", err))
		return filter, false
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		writeError(w, r, http.StatusBadRequest, "invalid range: to is before from")
		return filter, false
	}
	return filter, true
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, api.ErrorResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
