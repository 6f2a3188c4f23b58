package progress

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gymquest/gymquest/internal/auth"
	"github.com/gymquest/gymquest/internal/telemetry/tracing"
	"github.com/gymquest/gymquest/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	Weekly(ctx context.Context, userID int) (*WeeklyProgress, error)
	Stats(ctx context.Context, userID int) (*Stats, error)
}

type Handler struct {
	service progressService
}

func NewHandler(service progressService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weekly")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	weekly, err := handler.service.Weekly(ctx, userID)
	if err != nil {
		log.Errorf("failed to get weekly progress for user %d: %s", userID, err)
		http.Error(w, "failed to get weekly progress", http.StatusInternalServerError)
		return
	}

	weeklyJson, err := json.Marshal(weekly)
	if err != nil {
		log.Errorf("failed to marshal weekly progress: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weeklyJson, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := handler.service.Stats(ctx, userID)
	if err != nil {
		log.Errorf("failed to get stats for user %d: %s", userID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(stats)
	if err != nil {
		log.Errorf("failed to marshal stats: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}
