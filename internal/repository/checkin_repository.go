package repository

import (
	"context"
	"fmt"
	"habit_tracker/internal/model"

	"gorm.io/gorm"
)

type CheckinRepository struct {
	DB *gorm.DB
}

// NewCheckinRepository 创建新的打卡仓库实例
func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

// Create 在事务内确认 habit 归属后插入；(habit, date) 冲突时返回 gorm.ErrDuplicatedKey
func (r *CheckinRepository) Create(ctx context.Context, userID uint, checkin *model.Checkin) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var habit model.Habit
		if err := ownedHabits(tx, userID).Where("habits.id = ?", checkin.HabitID).First(&habit).Error; err != nil {
			return err
		}
		return tx.Create(checkin).Error
	})
}

// FindOwned 通过 habit 判断归属
func (r *CheckinRepository) FindOwned(ctx context.Context, userID, id uint) (*model.Checkin, error) {
	var checkin model.Checkin
	if err := ownedCheckins(r.DB.WithContext(ctx), userID).Where("checkins.id = ?", id).First(&checkin).Error; err != nil {
		return nil, err
	}
	return &checkin, nil
}

// ListOwned habitID 为 0 时返回全部打卡
func (r *CheckinRepository) ListOwned(ctx context.Context, userID, habitID uint) ([]model.Checkin, error) {
	var checkins []model.Checkin
	query := ownedCheckins(r.DB.WithContext(ctx), userID)
	if habitID != 0 {
		query = query.Where("checkins.habit_id = ?", habitID)
	}
	if err := query.Order("checkins.checkin_date, checkins.id").Find(&checkins).Error; err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	return checkins, nil
}

// ExistsOnDate 检查 (habit, date) 是否已被占用，excludeID 用于更新时排除自身
func (r *CheckinRepository) ExistsOnDate(ctx context.Context, userID, habitID uint, date model.Date, excludeID uint) (bool, error) {
	var count int64
	query := ownedCheckins(r.DB.WithContext(ctx), userID).
		Where("checkins.habit_id = ? AND checkins.checkin_date = ?", habitID, date)
	if excludeID != 0 {
		query = query.Where("checkins.id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save 更新打卡，原 habit 与新 habit 都必须属于该用户
func (r *CheckinRepository) Save(ctx context.Context, userID uint, checkin *model.Checkin) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Checkin
		if err := ownedCheckins(tx, userID).Where("checkins.id = ?", checkin.ID).First(&existing).Error; err != nil {
			return err
		}
		var habit model.Habit
		if err := ownedHabits(tx, userID).Where("habits.id = ?", checkin.HabitID).First(&habit).Error; err != nil {
			return err
		}
		checkin.CreatedAt = existing.CreatedAt
		return tx.Save(checkin).Error
	})
}

func (r *CheckinRepository) DeleteOwned(ctx context.Context, userID, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var checkin model.Checkin
		if err := ownedCheckins(tx, userID).Where("checkins.id = ?", id).First(&checkin).Error; err != nil {
			return err
		}
		return tx.Delete(&checkin).Error
	})
}

// Tally 统计打卡总数与完成数，habitID 为 0 时统计该用户全部习惯
func (r *CheckinRepository) Tally(ctx context.Context, userID, habitID uint) (model.CheckinTally, error) {
	var tally model.CheckinTally
	query := ownedCheckins(r.DB.WithContext(ctx), userID).
		Select("COUNT(checkins.id) AS total, COALESCE(SUM(CASE WHEN checkins.completed = ? THEN 1 ELSE 0 END), 0) AS completed", true)
	if habitID != 0 {
		query = query.Where("checkins.habit_id = ?", habitID)
	}
	if err := query.Scan(&tally).Error; err != nil {
		return model.CheckinTally{}, fmt.Errorf("tally checkins: %w", err)
	}
	return tally, nil
}
