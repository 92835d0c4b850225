package service

import (
	"context"
	"errors"
	"fmt"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

type HabitService struct {
	habits HabitStore
}

func NewHabitService(habits HabitStore) *HabitService {
	return &HabitService{habits: habits}
}

func (s *HabitService) Create(ctx context.Context, userID uint, name string, periodicity int) (*model.Habit, error) {
	name, err := validateHabit(name, periodicity)
	if err != nil {
		return nil, err
	}

	habit := &model.Habit{Name: name, Periodicity: periodicity}
	if err := s.habits.Create(ctx, userID, habit); err != nil {
		return nil, util.Internal(err)
	}
	return habit, nil
}

func (s *HabitService) Get(ctx context.Context, userID, id uint) (*model.Habit, error) {
	habit, err := s.habits.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, habitError(err)
	}
	return habit, nil
}

// GetDetailed 返回习惯及其全部打卡
func (s *HabitService) GetDetailed(ctx context.Context, userID, id uint) (*model.Habit, error) {
	habit, err := s.habits.FindOwnedWithCheckins(ctx, userID, id)
	if err != nil {
		return nil, habitError(err)
	}
	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID uint) ([]model.Habit, error) {
	habits, err := s.habits.ListOwned(ctx, userID)
	if err != nil {
		return nil, util.Internal(err)
	}
	return habits, nil
}

func (s *HabitService) Update(ctx context.Context, userID, id uint, name string, periodicity int) (*model.Habit, error) {
	name, err := validateHabit(name, periodicity)
	if err != nil {
		return nil, err
	}

	habit, err := s.habits.UpdateOwned(ctx, userID, id, name, periodicity)
	if err != nil {
		return nil, habitError(err)
	}
	return habit, nil
}

// Delete 级联删除该习惯的所有打卡
func (s *HabitService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.habits.DeleteOwned(ctx, userID, id); err != nil {
		return habitError(err)
	}
	return nil
}

// 不存在与不属于当前用户对调用方不可区分
func habitError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrHabitNotFound
	}
	return util.Internal(err)
}

func validateHabit(name string, periodicity int) (string, error) {
	name = strings.TrimSpace(name)
	var fields []util.FieldError
	if n := utf8.RuneCountInString(name); n < 1 || n > util.HabitNameMaxLength {
		fields = append(fields, util.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("must be between 1 and %d characters", util.HabitNameMaxLength),
		})
	}
	if periodicity < 1 {
		fields = append(fields, util.FieldError{
			Field:   "periodicity",
			Message: "must be greater than 0",
		})
	}
	if len(fields) > 0 {
		return "", util.Validation("Request validation failed", fields...)
	}
	return name, nil
}
