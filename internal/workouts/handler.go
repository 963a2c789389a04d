package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	StartWorkout(ctx context.Context) (*Workout, error)
	AddExercise(ctx context.Context, entry ExerciseEntry) (*Workout, error)
	CompleteWorkout(ctx context.Context) (*Workout, error)
	LogWorkout(ctx context.Context, workout Workout) (*Workout, error)
	DeleteWorkout(ctx context.Context, id string) bool
	ListWorkouts() []Workout
	GetWorkout(id string) (*Workout, error)
	ActiveWorkout() (*Workout, bool)
}

type DeleteWorkoutResponse struct {
	ID      string `json:"id"`
	Removed bool   `json:"removed"`
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Index *int   `json:"index,omitempty"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts/active", handler.HandleGetActive).Methods("GET", "OPTIONS").Name("get-active-workout")
	r.HandleFunc("/workouts/active/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-exercise")
	r.HandleFunc("/workouts/active/complete", handler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workouts", handler.HandleLog).Methods("POST", "OPTIONS").Name("log-workout")
	r.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	workout, err := handler.service.StartWorkout(ctx)
	if err != nil {
		log.Debugf("start workout: %s", err)
		writeError(w, err)
		return
	}

	log.Debugf("workout started: %s", workout.ID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (handler *Handler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get-active")
	defer span.End()

	workout, ok := handler.service.ActiveWorkout()
	if !ok {
		pkg.WriteJSON(w, ErrorResponse{Error: "no workout in progress"}, http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add-exercise")
	defer span.End()

	if !pkg.HasJSONBody(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry ExerciseEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.AddExercise(ctx, entry)
	if err != nil {
		log.Debugf("add exercise [%s]: %s", entry.ExerciseName, err)
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	workout, err := handler.service.CompleteWorkout(ctx)
	if err != nil {
		log.Debugf("complete workout: %s", err)
		writeError(w, err)
		return
	}

	log.Debugf("workout completed: %s, %d min", workout.ID, workout.DurationMinutes)
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.log")
	defer span.End()

	if !pkg.HasJSONBody(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("log workout, unmarshal json params: %s", err)
		http.Error(w, "log workout failed", http.StatusBadRequest)
		return
	}

	logged, err := handler.service.LogWorkout(ctx, workout)
	if err != nil {
		log.Debugf("log workout: %s", err)
		writeError(w, err)
		return
	}

	log.Debugf("workout logged: %s", logged.ID)
	pkg.WriteJSON(w, logged, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts := handler.service.ListWorkouts()
	pkg.WriteJSON(w, ListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.GetWorkout(id)
	if err != nil {
		writeError(w, err)
		return
	}
	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	removed := handler.service.DeleteWorkout(ctx, id)
	pkg.WriteJSON(w, DeleteWorkoutResponse{
		ID:      id,
		Removed: removed,
	}, http.StatusOK)
}

func writeError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		resp := ErrorResponse{
			Error: validationErr.Error(),
			Field: validationErr.Field,
		}
		if validationErr.Index >= 0 {
			idx := validationErr.Index
			resp.Index = &idx
		}
		pkg.WriteJSON(w, resp, http.StatusBadRequest)
	case errors.Is(err, ErrInvalidState):
		pkg.WriteJSON(w, ErrorResponse{Error: err.Error()}, http.StatusConflict)
	case errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteJSON(w, ErrorResponse{Error: err.Error()}, http.StatusNotFound)
	default:
		log.Errorf("workouts handler: %s", err)
		pkg.WriteJSON(w, ErrorResponse{Error: "internal error"}, http.StatusInternalServerError)
	}
}
