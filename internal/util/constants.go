package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

const (
	HabitNameMaxLength = 100
	UsernameMinLength  = 3
	UsernameMaxLength  = 50
	PasswordMinLength  = 8
	PasswordMaxBytes   = 72
	TokenTypeBearer    = "bearer"
	RequestIDHeader    = "X-Request-ID"
)
