package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/qazleague/cup-service/internal/platform/i18n"
	"github.com/qazleague/cup-service/internal/platform/logging"
	"github.com/qazleague/cup-service/internal/usecase"
)

type Handler struct {
	overviewService *usecase.OverviewService
	scheduleService *usecase.ScheduleService
	bracketService  *usecase.BracketService
	tableService    *usecase.TableService
	liveSyncService *usecase.LiveSyncService
	liveHub         *LiveHub
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	overviewService *usecase.OverviewService,
	scheduleService *usecase.ScheduleService,
	bracketService *usecase.BracketService,
	tableService *usecase.TableService,
	liveSyncService *usecase.LiveSyncService,
	liveHub *LiveHub,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		overviewService: overviewService,
		scheduleService: scheduleService,
		bracketService:  bracketService,
		tableService:    tableService,
		liveSyncService: liveSyncService,
		liveHub:         liveHub,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseSeasonID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("seasonID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: season id must be a positive integer", usecase.ErrInvalidInput)
	}
	return id, nil
}

func queryLang(values url.Values) string {
	return i18n.Normalize(values.Get("lang"))
}

func queryInt(values url.Values, key string) (int, bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, true, nil
}
