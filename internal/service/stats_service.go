package service

import (
	"context"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
)

type StatsService struct {
	habits   HabitStore
	checkins CheckinStore
}

func NewStatsService(habits HabitStore, checkins CheckinStore) *StatsService {
	return &StatsService{habits: habits, checkins: checkins}
}

// Overview 当前用户全部习惯的汇总
func (s *StatsService) Overview(ctx context.Context, userID uint) (*model.Stats, error) {
	totalHabits, err := s.habits.CountOwned(ctx, userID)
	if err != nil {
		return nil, util.Internal(err)
	}

	tally, err := s.checkins.Tally(ctx, userID, 0)
	if err != nil {
		return nil, util.Internal(err)
	}

	return &model.Stats{
		TotalHabits:       totalHabits,
		TotalCheckins:     tally.Total,
		CompletedCheckins: tally.Completed,
		CompletionRate:    tally.CompletionRate(),
	}, nil
}

// ForHabit 单个习惯的完成率
func (s *StatsService) ForHabit(ctx context.Context, userID, habitID uint) (*model.HabitStats, error) {
	habit, err := s.habits.FindOwned(ctx, userID, habitID)
	if err != nil {
		return nil, habitError(err)
	}

	tally, err := s.checkins.Tally(ctx, userID, habit.ID)
	if err != nil {
		return nil, util.Internal(err)
	}

	return &model.HabitStats{
		HabitID:           habit.ID,
		HabitName:         habit.Name,
		Periodicity:       habit.Periodicity,
		TotalCheckins:     tally.Total,
		CompletedCheckins: tally.Completed,
		CompletionRate:    tally.CompletionRate(),
	}, nil
}
