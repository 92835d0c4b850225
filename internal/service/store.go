package service

import (
	"context"
	"habit_tracker/internal/model"
)

// 存储接口由 repository 实现，所有 habit / checkin 方法都以 owner 为第一个数据参数

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type HabitStore interface {
	Create(ctx context.Context, userID uint, habit *model.Habit) error
	FindOwned(ctx context.Context, userID, id uint) (*model.Habit, error)
	FindOwnedWithCheckins(ctx context.Context, userID, id uint) (*model.Habit, error)
	ListOwned(ctx context.Context, userID uint) ([]model.Habit, error)
	UpdateOwned(ctx context.Context, userID, id uint, name string, periodicity int) (*model.Habit, error)
	DeleteOwned(ctx context.Context, userID, id uint) error
	CountOwned(ctx context.Context, userID uint) (int64, error)
}

type CheckinStore interface {
	Create(ctx context.Context, userID uint, checkin *model.Checkin) error
	FindOwned(ctx context.Context, userID, id uint) (*model.Checkin, error)
	ListOwned(ctx context.Context, userID, habitID uint) ([]model.Checkin, error)
	ExistsOnDate(ctx context.Context, userID, habitID uint, date model.Date, excludeID uint) (bool, error)
	Save(ctx context.Context, userID uint, checkin *model.Checkin) error
	DeleteOwned(ctx context.Context, userID, id uint) error
	Tally(ctx context.Context, userID, habitID uint) (model.CheckinTally, error)
}
