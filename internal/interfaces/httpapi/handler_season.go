package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/qazleague/cup-service/internal/domain/standings"
	"github.com/qazleague/cup-service/internal/usecase"
)

// GetSeasonBracket serves the knockout bracket. A season without a
// knockout phase gets an empty rounds list, not an error.
func (h *Handler) GetSeasonBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonBracket")
	defer span.End()

	seasonID, err := parseSeasonID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.scheduleService.ListRounds(ctx, seasonID, "")
	if err != nil {
		h.logger.ErrorContext(ctx, "get season bracket failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	b, err := h.bracketService.Resolve(ctx, seasonID, rounds)
	if err != nil {
		h.logger.ErrorContext(ctx, "resolve season bracket failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	lang := queryLang(r.URL.Query())
	dto := mapBracketDTO(seasonID, b, lang)
	if dto == nil {
		dto = &bracketDTO{SeasonID: seasonID, Rounds: []bracketRoundDTO{}}
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}

// GetSeasonTable serves the dynamically computed season table with
// optional tour-range and home/away filters.
func (h *Handler) GetSeasonTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTable")
	defer span.End()

	seasonID, err := parseSeasonID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	filters := standings.Filters{GroupName: strings.TrimSpace(values.Get("group"))}
	if v, ok, err := queryInt(values, "tour_from"); err != nil {
		writeError(ctx, w, err)
		return
	} else if ok {
		filters.TourFrom = &v
	}
	if v, ok, err := queryInt(values, "tour_to"); err != nil {
		writeError(ctx, w, err)
		return
	} else if ok {
		filters.TourTo = &v
	}
	switch values.Get("home_away") {
	case "":
	case "home":
		filters.HomeOnly = true
	case "away":
		filters.AwayOnly = true
	default:
		writeError(ctx, w, fmt.Errorf("%w: home_away must be home or away", usecase.ErrInvalidInput))
		return
	}

	rows, err := h.tableService.Calculate(ctx, seasonID, filters)
	if err != nil {
		h.logger.ErrorContext(ctx, "get season table failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	lang := queryLang(values)
	dto := tableDTO{SeasonID: seasonID, Rows: make([]standingRowDTO, 0, len(rows))}
	for _, row := range rows {
		dto.Rows = append(dto.Rows, mapStandingRowDTO(row, lang))
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}
