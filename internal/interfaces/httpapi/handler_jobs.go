package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/qazleague/cup-service/internal/usecase"
)

type syncLiveRequest struct {
	SeasonID int64 `json:"season_id" validate:"required,gt=0"`
}

// RunSyncLiveJob pulls the live feed for one season and pushes changed
// games to websocket subscribers. Protected by the internal job token.
func (h *Handler) RunSyncLiveJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncLiveJob")
	defer span.End()

	var req syncLiveRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.liveSyncService.SyncSeason(ctx, req.SeasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "live sync job failed", "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncLiveResultDTO{
		SeasonID:     req.SeasonID,
		UpdatedGames: updated,
	})
}
