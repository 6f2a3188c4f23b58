package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gymquest/gymquest/internal/auth"
	"github.com/gymquest/gymquest/internal/telemetry/tracing"
	"github.com/gymquest/gymquest/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Start(ctx context.Context, userID, workoutID int) (*WorkoutSession, error)
	Get(ctx context.Context, id, userID int) (*WorkoutSession, error)
	List(ctx context.Context, params ListParams) ([]WorkoutSession, error)
	Complete(ctx context.Context, id, userID int) (*WorkoutSession, error)
	AddExercise(ctx context.Context, userID int, exercise WorkoutExercise) (*WorkoutExercise, error)
	Exercises(ctx context.Context, sessionID, userID int) ([]WorkoutExercise, error)
	UpdateExerciseProgress(ctx context.Context, exerciseID, userID, setsCompleted int) (*WorkoutExercise, error)
}

type StartSessionRequest struct {
	WorkoutID int `json:"workoutId"`
}

type AddExerciseRequest struct {
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscleGroup,omitempty"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
}

type UpdateExerciseProgressRequest struct {
	SetsCompleted int `json:"setsCompleted"`
}

type ListSessionsResponse struct {
	Sessions []WorkoutSession `json:"sessions"`
	Total    int              `json:"total"`
}

type ExercisesResponse struct {
	Exercises []WorkoutExercise `json:"exercises"`
	Total     int               `json:"total"`
}

type Handler struct {
	service sessionsService
}

func NewHandler(service sessionsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.start")
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

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}
	if req.WorkoutID <= 0 {
		http.Error(w, "error, workout id empty", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Start(ctx, userID, req.WorkoutID)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to start session for user %d, workout %d: %s", userID, req.WorkoutID, err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("session %d started for user %d", session.ID, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	session, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{UserID: userID}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "failed to parse from param", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "failed to parse to param", http.StatusBadRequest)
			return
		}
		params.To = &to
	}
	if r.URL.Query().Get("completed") == "true" {
		params.OnlyCompleted = true
	}

	sessions, err := handler.service.List(ctx, params)
	if err != nil {
		log.Errorf("list sessions for user %d: %s", userID, err)
		http.Error(w, "failed to get sessions", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("marshal sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	session, err := handler.service.Complete(ctx, id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionAlreadyCompleted):
			http.Error(w, "session already completed", http.StatusConflict)
		default:
			log.Errorf("failed to complete session %d: %s", id, err)
			http.Error(w, "error, failed to complete session", http.StatusInternalServerError)
		}
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("session %d completed, %d XP earned", session.ID, session.XPEarned)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.addExercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	exercise, err := handler.service.AddExercise(ctx, userID, WorkoutExercise{
		SessionID:   sessionID,
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Sets:        req.Sets,
		Reps:        req.Reps,
		Weight:      req.Weight,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidExercise):
			http.Error(w, "invalid exercise", http.StatusBadRequest)
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		default:
			log.Errorf("failed to add exercise to session %d: %s", sessionID, err)
			http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		}
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusCreated)
}

func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.listExercises")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	sessionID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	exercises, err := handler.service.Exercises(ctx, sessionID, userID)
	if err != nil {
		log.Errorf("list exercises for session %d: %s", sessionID, err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	exercisesJson, err := json.Marshal(ExercisesResponse{
		Exercises: exercises,
		Total:     len(exercises),
	})
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.updateExerciseProgress")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req UpdateExerciseProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update exercise progress, unmarshal json params: %s", err)
		http.Error(w, "update exercise progress failed", http.StatusBadRequest)
		return
	}

	exercise, err := handler.service.UpdateExerciseProgress(ctx, exerciseID, userID, req.SetsCompleted)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSetsCompleted):
			http.Error(w, "invalid sets completed", http.StatusBadRequest)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "exercise not found", http.StatusNotFound)
		default:
			log.Errorf("failed to update progress for exercise %d: %s", exerciseID, err)
			http.Error(w, "error, failed to update exercise progress", http.StatusInternalServerError)
		}
		return
	}

	exerciseJson, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exerciseJson, http.StatusOK)
}

func pathID(w http.ResponseWriter, r *http.Request, varName string) (int, bool) {
	idStr := mux.Vars(r)[varName]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
