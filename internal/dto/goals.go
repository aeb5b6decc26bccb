package dto

import (
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
)

type GoalRequestDTO struct {
	GoalType              string   `json:"goal_type" validate:"required,oneof=weight_loss weight_maintain muscle_gain"`
	TargetCalories        *float64 `json:"target_calories,omitempty" validate:"omitempty,gte=0" example:"2000"`
	TargetProtein         *float64 `json:"target_protein,omitempty" validate:"omitempty,gte=0" example:"120"`
	TargetCarbs           *float64 `json:"target_carbs,omitempty" validate:"omitempty,gte=0"`
	TargetFats            *float64 `json:"target_fats,omitempty" validate:"omitempty,gte=0"`
	TargetStepsPerDay     *int     `json:"target_steps_per_day,omitempty" validate:"omitempty,gte=0" example:"10000"`
	TargetWorkoutsPerWeek *int     `json:"target_workouts_per_week,omitempty" validate:"omitempty,gte=0" example:"3"`
	TargetWeight          *float64 `json:"target_weight,omitempty" validate:"omitempty,gte=0"`
}

func (r GoalRequestDTO) ToDomain() domain.Goal {
	return domain.Goal{
		GoalType:              domain.GoalType(r.GoalType),
		TargetCalories:        r.TargetCalories,
		TargetProtein:         r.TargetProtein,
		TargetCarbs:           r.TargetCarbs,
		TargetFats:            r.TargetFats,
		TargetStepsPerDay:     r.TargetStepsPerDay,
		TargetWorkoutsPerWeek: r.TargetWorkoutsPerWeek,
		TargetWeight:          r.TargetWeight,
	}
}

type GoalResponseDTO struct {
	ID                    int       `json:"id"`
	GoalType              string    `json:"goal_type"`
	TargetCalories        *float64  `json:"target_calories,omitempty"`
	TargetProtein         *float64  `json:"target_protein,omitempty"`
	TargetCarbs           *float64  `json:"target_carbs,omitempty"`
	TargetFats            *float64  `json:"target_fats,omitempty"`
	TargetStepsPerDay     *int      `json:"target_steps_per_day,omitempty"`
	TargetWorkoutsPerWeek *int      `json:"target_workouts_per_week,omitempty"`
	TargetWeight          *float64  `json:"target_weight,omitempty"`
	IsActive              bool      `json:"is_active"`
	ProgressPercentage    float64   `json:"progress_percentage" example:"87.5"`
	CreatedAt             time.Time `json:"created_at"`
}

func NewGoalResponse(g *domain.Goal) GoalResponseDTO {
	return GoalResponseDTO{
		ID:                    g.ID,
		GoalType:              string(g.GoalType),
		TargetCalories:        g.TargetCalories,
		TargetProtein:         g.TargetProtein,
		TargetCarbs:           g.TargetCarbs,
		TargetFats:            g.TargetFats,
		TargetStepsPerDay:     g.TargetStepsPerDay,
		TargetWorkoutsPerWeek: g.TargetWorkoutsPerWeek,
		TargetWeight:          g.TargetWeight,
		IsActive:              g.IsActive,
		ProgressPercentage:    g.ProgressPercentage,
		CreatedAt:             g.CreatedAt,
	}
}

type DailyProgressResponseDTO struct {
	Date             string   `json:"date" example:"2026-10-19"`
	ActualCalories   float64  `json:"actual_calories"`
	ActualProtein    float64  `json:"actual_protein"`
	ActualCarbs      float64  `json:"actual_carbs"`
	ActualFats       float64  `json:"actual_fats"`
	ActualSteps      int      `json:"actual_steps"`
	ActualWorkouts   int      `json:"actual_workouts"`
	ActualWeight     *float64 `json:"actual_weight,omitempty"`
	CaloriesProgress *float64 `json:"calories_progress,omitempty"`
	ProteinProgress  *float64 `json:"protein_progress,omitempty"`
	CarbsProgress    *float64 `json:"carbs_progress,omitempty"`
	FatsProgress     *float64 `json:"fats_progress,omitempty"`
	StepsProgress    *float64 `json:"steps_progress,omitempty"`
	WorkoutsProgress *float64 `json:"workouts_progress,omitempty"`
	OverallProgress  float64  `json:"overall_progress" example:"87.5"`
	IsCompleted      bool     `json:"is_completed"`
}

func NewDailyProgressResponse(p *domain.DailyGoalProgress) *DailyProgressResponseDTO {
	if p == nil {
		return nil
	}
	return &DailyProgressResponseDTO{
		Date:             p.Date.Format(time.DateOnly),
		ActualCalories:   p.ActualCalories,
		ActualProtein:    p.ActualProtein,
		ActualCarbs:      p.ActualCarbs,
		ActualFats:       p.ActualFats,
		ActualSteps:      p.ActualSteps,
		ActualWorkouts:   p.ActualWorkouts,
		ActualWeight:     p.ActualWeight,
		CaloriesProgress: p.CaloriesProgress,
		ProteinProgress:  p.ProteinProgress,
		CarbsProgress:    p.CarbsProgress,
		FatsProgress:     p.FatsProgress,
		StepsProgress:    p.StepsProgress,
		WorkoutsProgress: p.WorkoutsProgress,
		OverallProgress:  p.OverallProgress,
		IsCompleted:      p.IsCompleted,
	}
}

type ActivityRequestDTO struct {
	Kind        string     `json:"kind" validate:"required,oneof=steps workout weight" example:"steps"`
	Value       float64    `json:"value" validate:"gte=0" example:"4500"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
}

type FoodRequestDTO struct {
	Name     string     `json:"name" validate:"required,max=255" example:"oatmeal"`
	Calories float64    `json:"calories" validate:"gte=0" example:"350"`
	Protein  float64    `json:"protein" validate:"gte=0" example:"12"`
	Carbs    float64    `json:"carbs" validate:"gte=0" example:"60"`
	Fats     float64    `json:"fats" validate:"gte=0" example:"6"`
	EatenAt  *time.Time `json:"eaten_at,omitempty"`
}

// LogResponseDTO reports the refreshed day; Progress is empty without an
// active goal.
type LogResponseDTO struct {
	Logged   bool                      `json:"logged"`
	Progress *DailyProgressResponseDTO `json:"progress,omitempty"`
}
