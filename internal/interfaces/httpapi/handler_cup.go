package httpapi

import (
	"net/http"
)

type overviewQuery struct {
	Lang          string `validate:"omitempty,oneof=kz ru en"`
	RecentLimit   int    `validate:"omitempty,min=1,max=20"`
	UpcomingLimit int    `validate:"omitempty,min=1,max=20"`
}

// GetCupOverview serves the aggregated season view: current round, round
// navigation, group tables, bracket and recent/upcoming strips.
func (h *Handler) GetCupOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCupOverview")
	defer span.End()

	seasonID, err := parseSeasonID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	q := overviewQuery{Lang: values.Get("lang")}
	if q.RecentLimit, _, err = queryInt(values, "recent_limit"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if q.UpcomingLimit, _, err = queryInt(values, "upcoming_limit"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.overviewService.Get(ctx, seasonID, q.RecentLimit, q.UpcomingLimit)
	if err != nil {
		h.logger.ErrorContext(ctx, "get cup overview failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapOverviewDTO(overview, queryLang(values)))
}

// GetCupSchedule serves the season's rounds with games, optionally
// filtered down to one round key.
func (h *Handler) GetCupSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCupSchedule")
	defer span.End()

	seasonID, err := parseSeasonID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	values := r.URL.Query()
	if err := h.validateRequest(ctx, overviewQuery{Lang: values.Get("lang")}); err != nil {
		writeError(ctx, w, err)
		return
	}

	rounds, err := h.scheduleService.ListRounds(ctx, seasonID, values.Get("round_key"))
	if err != nil {
		h.logger.ErrorContext(ctx, "get cup schedule failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	lang := queryLang(values)
	dto := scheduleDTO{SeasonID: seasonID, Rounds: make([]roundDTO, 0, len(rounds))}
	for _, rd := range rounds {
		dto.TotalGames += rd.TotalGames()
		dto.Rounds = append(dto.Rounds, mapRoundDTO(rd, lang, true))
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}
