package repository

import (
	"context"
	"fmt"
	"habit_tracker/internal/model"

	"gorm.io/gorm"
)

// HabitRepository 习惯数据访问，每个方法都以 owner 为第一个参数
type HabitRepository struct {
	DB *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{DB: db}
}

func (r *HabitRepository) Create(ctx context.Context, userID uint, habit *model.Habit) error {
	habit.UserID = userID
	if err := r.DB.WithContext(ctx).Create(habit).Error; err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	return nil
}

// FindOwned 不存在或不属于该用户都返回 gorm.ErrRecordNotFound
func (r *HabitRepository) FindOwned(ctx context.Context, userID, id uint) (*model.Habit, error) {
	var habit model.Habit
	if err := ownedHabits(r.DB.WithContext(ctx), userID).Where("habits.id = ?", id).First(&habit).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

// FindOwnedWithCheckins 同时加载该习惯的全部打卡，按日期排序
func (r *HabitRepository) FindOwnedWithCheckins(ctx context.Context, userID, id uint) (*model.Habit, error) {
	var habit model.Habit
	err := ownedHabits(r.DB.WithContext(ctx), userID).
		Preload("Checkins", func(db *gorm.DB) *gorm.DB {
			return db.Order("checkin_date, id")
		}).
		Where("habits.id = ?", id).
		First(&habit).Error
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *HabitRepository) ListOwned(ctx context.Context, userID uint) ([]model.Habit, error) {
	var habits []model.Habit
	if err := ownedHabits(r.DB.WithContext(ctx), userID).Order("habits.id").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func (r *HabitRepository) UpdateOwned(ctx context.Context, userID, id uint, name string, periodicity int) (*model.Habit, error) {
	var habit model.Habit
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedHabits(tx, userID).Where("habits.id = ?", id).First(&habit).Error; err != nil {
			return err
		}
		habit.Name = name
		habit.Periodicity = periodicity
		return tx.Save(&habit).Error
	})
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// DeleteOwned 在同一事务内删除习惯及其所有打卡
func (r *HabitRepository) DeleteOwned(ctx context.Context, userID, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var habit model.Habit
		if err := ownedHabits(tx, userID).Where("habits.id = ?", id).First(&habit).Error; err != nil {
			return err
		}
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&model.Checkin{}).Error; err != nil {
			return fmt.Errorf("delete checkins of habit %d: %w", habit.ID, err)
		}
		if err := tx.Delete(&habit).Error; err != nil {
			return fmt.Errorf("delete habit %d: %w", habit.ID, err)
		}
		return nil
	})
}

func (r *HabitRepository) CountOwned(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := ownedHabits(r.DB.WithContext(ctx), userID).Count(&count).Error
	return count, err
}
