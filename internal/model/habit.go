package model

// Habit 用户的周期性习惯，periodicity 表示每 N 天一次
// swagger:model Habit
type Habit struct {
	BaseModel
	Name        string    `gorm:"size:100;not null" json:"name"`
	Periodicity int       `gorm:"not null" json:"periodicity"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Checkins    []Checkin `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Habit) TableName() string {
	return "habits"
}
