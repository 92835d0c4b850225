package model

// swagger:model User
type User struct {
	BaseModel
	Username string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Habits   []Habit `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
