package repository

import (
	"habit_tracker/internal/model"

	"gorm.io/gorm"
)

// 所有 habit / checkin 查询都必须从这两个函数开始，保证按 owner 过滤

func ownedHabits(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&model.Habit{}).Where("habits.user_id = ?", userID)
}

// checkin 的归属通过所属 habit 传递
func ownedCheckins(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&model.Checkin{}).
		Joins("JOIN habits ON habits.id = checkins.habit_id").
		Where("habits.user_id = ?", userID)
}
