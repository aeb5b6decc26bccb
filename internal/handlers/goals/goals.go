package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/dto"
	"github.com/GlebRadaev/lwcoin/internal/service/goalservice"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/GlebRadaev/lwcoin/pkg/utils"
	"github.com/GlebRadaev/lwcoin/pkg/validate"
)

//go:generate mockgen -source=goals.go -destination=mock_goals.go -package=goals

type Service interface {
	CreateGoal(ctx context.Context, userID int, goal domain.Goal) (*domain.Goal, error)
	GetActiveGoal(ctx context.Context, userID int) (*domain.Goal, error)
	DeactivateGoal(ctx context.Context, userID int) error
	GetDailyProgress(ctx context.Context, userID int, date time.Time) (*domain.DailyGoalProgress, error)
	Recompute(ctx context.Context, userID int, date time.Time) (*domain.DailyGoalProgress, error)
	LogActivity(ctx context.Context, userID int, activity domain.Activity) (*domain.DailyGoalProgress, error)
	LogFood(ctx context.Context, userID int, food domain.FoodIntake) (*domain.DailyGoalProgress, error)
	GetExperience(ctx context.Context, userID int) (*domain.ExperienceData, error)
}

type GoalHandler struct {
	goalService Service
}

func New(goalService Service) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal godoc
//
//	@Summary		Set a new goal
//	@Description	Creates the active goal and deactivates the previous one.
//	@Tags			Goals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GoalRequestDTO	true	"Goal targets"
//	@Success		201		{object}	dto.GoalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/goals [post]
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.GoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.CreateGoal(r.Context(), userID, req.ToDomain())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGoalResponse(goal))
}

// GetActiveGoal godoc
//
//	@Summary		Get the active goal
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GoalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No active goal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/goals/active [get]
func (h *GoalHandler) GetActiveGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	goal, err := h.goalService.GetActiveGoal(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoalResponse(goal))
}

// DeactivateGoal godoc
//
//	@Summary		Deactivate the active goal
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No active goal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/goals/active [delete]
func (h *GoalHandler) DeactivateGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.goalService.DeactivateGoal(r.Context(), userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProgress godoc
//
//	@Summary		Get daily goal progress
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Day (YYYY-MM-DD), today by default"
//	@Success		200		{object}	dto.DailyProgressResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"No active goal or no progress"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/goals/progress [get]
func (h *GoalHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	date, ok := parseDate(w, r)
	if !ok {
		return
	}
	progress, err := h.goalService.GetDailyProgress(r.Context(), userID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDailyProgressResponse(progress))
}

// Recompute godoc
//
//	@Summary		Recompute daily goal progress
//	@Description	Rebuilds the day's progress from logged activity and food.
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	false	"Day (YYYY-MM-DD), today by default"
//	@Success		200		{object}	dto.DailyProgressResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"No active goal"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/goals/progress/recompute [post]
func (h *GoalHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	date, ok := parseDate(w, r)
	if !ok {
		return
	}
	progress, err := h.goalService.Recompute(r.Context(), userID, date)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDailyProgressResponse(progress))
}

// LogActivity godoc
//
//	@Summary		Log an activity
//	@Tags			Activity
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ActivityRequestDTO	true	"Steps, workout or weight"
//	@Success		201		{object}	dto.LogResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/activities [post]
func (h *GoalHandler) LogActivity(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ActivityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	activity := domain.Activity{Kind: domain.ActivityKind(req.Kind), Value: req.Value}
	if req.PerformedAt != nil {
		activity.PerformedAt = req.PerformedAt.UTC()
	}

	progress, err := h.goalService.LogActivity(r.Context(), userID, activity)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.LogResponseDTO{
		Logged:   true,
		Progress: dto.NewDailyProgressResponse(progress),
	})
}

// LogFood godoc
//
//	@Summary		Log a food intake
//	@Tags			Activity
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FoodRequestDTO	true	"Meal and macros"
//	@Success		201		{object}	dto.LogResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/food [post]
func (h *GoalHandler) LogFood(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.FoodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	food := domain.FoodIntake{
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}
	if req.EatenAt != nil {
		food.EatenAt = req.EatenAt.UTC()
	}

	progress, err := h.goalService.LogFood(r.Context(), userID, food)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.LogResponseDTO{
		Logged:   true,
		Progress: dto.NewDailyProgressResponse(progress),
	})
}

// GetExperience godoc
//
//	@Summary		Get level and experience
//	@Tags			Goals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.ExperienceData
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/experience [get]
func (h *GoalHandler) GetExperience(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	data, err := h.goalService.GetExperience(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, data)
}

func parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goalservice.ErrNoActiveGoal), errors.Is(err, goalservice.ErrNoProgress),
		errors.Is(err, goalservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, goalservice.ErrInvalidGoalType), errors.Is(err, goalservice.ErrInvalidTarget),
		errors.Is(err, goalservice.ErrInvalidActivity):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
