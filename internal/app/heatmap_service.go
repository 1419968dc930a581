package app

import (
	"context"
	"time"

	"habittracker/internal/domain"
)

// HeatmapService derives per-day heatmap cells from a habit's completion set.
type HeatmapService struct {
	repo domain.HabitRepository
}

// NewHeatmapService creates a HeatmapService backed by the given repository.
func NewHeatmapService(repo domain.HabitRepository) *HeatmapService {
	return &HeatmapService{repo: repo}
}

// YearCells is the heatmap payload for one habit over the trailing year.
type YearCells struct {
	HabitID string               `json:"habitId"`
	Start   string               `json:"start"`
	End     string               `json:"end"`
	Cells   []domain.HeatmapCell `json:"cells"`
}

// GetYear returns the heatmap cells for the year ending on today, inclusive.
// today is caller-supplied so results are reproducible in tests.
func (s *HeatmapService) GetYear(ctx context.Context, ownerID int64, habitID, today string) (*YearCells, error) {
	end, err := time.Parse(dayLayout, today)
	if err != nil {
		return nil, ErrBadDate
	}
	start := end.AddDate(-1, 0, 0).Format(dayLayout)

	habit, err := s.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}
	if habit.OwnerID != ownerID {
		return nil, ErrPermissionDenied
	}

	return &YearCells{
		HabitID: habit.ID,
		Start:   start,
		End:     today,
		Cells:   domain.HeatmapCells(habit.CompletedDates, start, today),
	}, nil
}
