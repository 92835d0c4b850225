package service

import (
	"context"
	"errors"
	"habit_tracker/internal/model"
	"habit_tracker/internal/util"
	"habit_tracker/pkg/monitoring"

	"gorm.io/gorm"
)

// CheckinInput 创建和更新打卡共用的输入
type CheckinInput struct {
	HabitID     uint
	CheckinDate model.Date
	Completed   bool
}

type CheckinService struct {
	habits   HabitStore
	checkins CheckinStore
}

func NewCheckinService(habits HabitStore, checkins CheckinStore) *CheckinService {
	return &CheckinService{habits: habits, checkins: checkins}
}

// Create habit 必须属于当前用户，且同一 habit 同一天只能有一条打卡
func (s *CheckinService) Create(ctx context.Context, userID uint, in CheckinInput) (*model.Checkin, error) {
	if _, err := s.habits.FindOwned(ctx, userID, in.HabitID); err != nil {
		return nil, habitError(err)
	}

	exists, err := s.checkins.ExistsOnDate(ctx, userID, in.HabitID, in.CheckinDate, 0)
	if err != nil {
		return nil, util.Internal(err)
	}
	if exists {
		return nil, util.ErrDuplicateCheckin
	}

	checkin := &model.Checkin{
		HabitID:     in.HabitID,
		CheckinDate: in.CheckinDate,
		Completed:   in.Completed,
	}
	// 并发请求可能同时通过上面的检查，由唯一索引兜底
	if err := s.checkins.Create(ctx, userID, checkin); err != nil {
		return nil, checkinWriteError(err, util.ErrHabitNotFound)
	}

	monitoring.CheckinsCreated.Inc()
	return checkin, nil
}

func (s *CheckinService) Get(ctx context.Context, userID, id uint) (*model.Checkin, error) {
	checkin, err := s.checkins.FindOwned(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCheckinNotFound
		}
		return nil, util.Internal(err)
	}
	return checkin, nil
}

// List habitID 非 0 时只返回该习惯的打卡
func (s *CheckinService) List(ctx context.Context, userID, habitID uint) ([]model.Checkin, error) {
	checkins, err := s.checkins.ListOwned(ctx, userID, habitID)
	if err != nil {
		return nil, util.Internal(err)
	}
	return checkins, nil
}

// Update 修改 habit 时新 habit 也必须属于当前用户；修改 habit 或日期时重新检查唯一性
func (s *CheckinService) Update(ctx context.Context, userID, id uint, in CheckinInput) (*model.Checkin, error) {
	checkin, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	habitChanged := checkin.HabitID != in.HabitID
	if habitChanged {
		if _, err := s.habits.FindOwned(ctx, userID, in.HabitID); err != nil {
			return nil, habitError(err)
		}
	}

	if habitChanged || !checkin.CheckinDate.Equal(in.CheckinDate) {
		exists, err := s.checkins.ExistsOnDate(ctx, userID, in.HabitID, in.CheckinDate, checkin.ID)
		if err != nil {
			return nil, util.Internal(err)
		}
		if exists {
			return nil, util.ErrDuplicateCheckin
		}
	}

	checkin.HabitID = in.HabitID
	checkin.CheckinDate = in.CheckinDate
	checkin.Completed = in.Completed
	if err := s.checkins.Save(ctx, userID, checkin); err != nil {
		return nil, checkinWriteError(err, util.ErrCheckinNotFound)
	}
	return checkin, nil
}

func (s *CheckinService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.checkins.DeleteOwned(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCheckinNotFound
		}
		return util.Internal(err)
	}
	return nil
}

// checkinWriteError 写入阶段的错误映射；notFound 区分是 habit 还是 checkin 在事务中消失
func checkinWriteError(err error, notFound *util.AppError) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return util.ErrDuplicateCheckin
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	default:
		return util.Internal(err)
	}
}
