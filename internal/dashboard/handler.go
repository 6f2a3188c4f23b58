package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gymquest/gymquest/internal/auth"
	"github.com/gymquest/gymquest/internal/telemetry/tracing"
	"github.com/gymquest/gymquest/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Data(ctx context.Context, userID int) (*Data, error)
	UpdateWeeklyGoal(ctx context.Context, userID, weeklyGoal int) error
}

type UpdateWeeklyGoalRequest struct {
	WeeklyGoal int `json:"weeklyGoal"`
}

type UpdateWeeklyGoalResponse struct {
	WeeklyGoal int `json:"weeklyGoal"`
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.data")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	data, err := handler.service.Data(ctx, userID)
	if err != nil {
		log.Errorf("failed to get dashboard data for user %d: %s", userID, err)
		http.Error(w, "failed to get dashboard data", http.StatusInternalServerError)
		return
	}

	dataJson, err := json.Marshal(data)
	if err != nil {
		log.Errorf("failed to marshal dashboard data: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dataJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateWeeklyGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.updateWeeklyGoal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateWeeklyGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update weekly goal, unmarshal json params: %s", err)
		http.Error(w, "update weekly goal failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateWeeklyGoal(ctx, userID, req.WeeklyGoal); err != nil {
		switch {
		case errors.Is(err, ErrInvalidWeeklyGoal):
			http.Error(w, "invalid weekly goal", http.StatusBadRequest)
		case errors.Is(err, ErrUnknownUser):
			http.Error(w, "user not found", http.StatusNotFound)
		default:
			log.Errorf("failed to update weekly goal for user %d: %s", userID, err)
			http.Error(w, "update weekly goal failed", http.StatusInternalServerError)
		}
		return
	}

	respJson, err := json.Marshal(UpdateWeeklyGoalResponse{
		WeeklyGoal: req.WeeklyGoal,
	})
	if err != nil {
		log.Errorf("failed to marshal weekly goal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("weekly goal for user %d set to %d", userID, req.WeeklyGoal)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
