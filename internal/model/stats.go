package model

import "math"

// CheckinTally 打卡计数的聚合结果
type CheckinTally struct {
	Total     int64
	Completed int64
}

// CompletionRate 完成率百分比保留两位小数，total 为 0 时为 0
func (t CheckinTally) CompletionRate() float64 {
	if t.Total <= 0 {
		return 0.0
	}
	rate := float64(t.Completed) / float64(t.Total) * 100
	return math.Round(rate*100) / 100
}

// swagger:model Stats
type Stats struct {
	TotalHabits       int64   `json:"total_habits"`
	TotalCheckins     int64   `json:"total_checkins"`
	CompletedCheckins int64   `json:"completed_checkins"`
	CompletionRate    float64 `json:"completion_rate"`
}

// swagger:model HabitStats
type HabitStats struct {
	HabitID           uint    `json:"habit_id"`
	HabitName         string  `json:"habit_name"`
	Periodicity       int     `json:"periodicity"`
	TotalCheckins     int64   `json:"total_checkins"`
	CompletedCheckins int64   `json:"completed_checkins"`
	CompletionRate    float64 `json:"completion_rate"`
}
