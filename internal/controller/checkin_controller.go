package controller

import (
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	service *service.CheckinService
}

func NewCheckinController(s *service.CheckinService) *CheckinController {
	return &CheckinController{service: s}
}

// CheckinRequest 创建与更新打卡共用；completed 必须显式给出
// swagger:model CheckinRequest
type CheckinRequest struct {
	HabitID     uint   `json:"habit_id" binding:"required,gt=0"`
	CheckinDate string `json:"checkin_date" binding:"required,datetime=2006-01-02"`
	Completed   *bool  `json:"completed" binding:"required"`
}

// swagger:model CheckinResponse
type CheckinResponse struct {
	ID          uint       `json:"id"`
	HabitID     uint       `json:"habit_id"`
	CheckinDate model.Date `json:"checkin_date" swaggertype:"string" example:"2024-01-15"`
	Completed   bool       `json:"completed"`
}

func toCheckinResponse(c *model.Checkin) CheckinResponse {
	return CheckinResponse{
		ID:          c.ID,
		HabitID:     c.HabitID,
		CheckinDate: c.CheckinDate,
		Completed:   c.Completed,
	}
}

func (r *CheckinRequest) input() (service.CheckinInput, error) {
	date, err := model.ParseDate(r.CheckinDate)
	if err != nil {
		return service.CheckinInput{}, util.Validation("Request validation failed", util.FieldError{
			Field:   "checkin_date",
			Message: "must be a valid date (YYYY-MM-DD)",
		})
	}
	return service.CheckinInput{
		HabitID:     r.HabitID,
		CheckinDate: date,
		Completed:   *r.Completed,
	}, nil
}

func (c *CheckinController) bind(ctx *gin.Context) (service.CheckinInput, bool) {
	var req CheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.BindingError(err))
		return service.CheckinInput{}, false
	}
	in, err := req.input()
	if err != nil {
		util.Fail(ctx, err)
		return service.CheckinInput{}, false
	}
	return in, true
}

// CreateCheckin godoc
// @Summary 创建打卡
// @Description 同一习惯同一天只能打卡一次
// @Tags 打卡
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CheckinRequest true "打卡内容"
// @Success 200 {object} CheckinResponse
// @Failure 400 {object} util.Problem "重复打卡"
// @Failure 404 {object} util.Problem "习惯不存在"
// @Failure 422 {object} util.Problem
// @Router /checkins [post]
func (c *CheckinController) CreateCheckin(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	in, ok := c.bind(ctx)
	if !ok {
		return
	}

	checkin, err := c.service.Create(ctx.Request.Context(), user.ID, in)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, toCheckinResponse(checkin))
}

// ListCheckins godoc
// @Summary 获取打卡列表
// @Tags 打卡
// @Produce json
// @Security ApiKeyAuth
// @Param habit_id query int false "只返回该习惯的打卡"
// @Success 200 {array} CheckinResponse
// @Failure 422 {object} util.Problem
// @Router /checkins [get]
func (c *CheckinController) ListCheckins(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var habitID uint
	if raw, present := ctx.GetQuery("habit_id"); present {
		habitID, ok = util.ParseID(raw)
		if !ok {
			util.Fail(ctx, util.Validation("Request validation failed", util.FieldError{
				Field:   "habit_id",
				Message: "must be a positive integer",
			}))
			return
		}
	}

	checkins, err := c.service.List(ctx.Request.Context(), user.ID, habitID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	resp := make([]CheckinResponse, 0, len(checkins))
	for i := range checkins {
		resp = append(resp, toCheckinResponse(&checkins[i]))
	}
	util.Success(ctx, resp)
}

// GetCheckin godoc
// @Summary 获取打卡
// @Tags 打卡
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "打卡ID"
// @Success 200 {object} CheckinResponse
// @Failure 404 {object} util.Problem
// @Router /checkins/{id} [get]
func (c *CheckinController) GetCheckin(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrCheckinNotFound)
	if !ok {
		return
	}

	checkin, err := c.service.Get(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, toCheckinResponse(checkin))
}

// UpdateCheckin godoc
// @Summary 更新打卡
// @Tags 打卡
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "打卡ID"
// @Param body body CheckinRequest true "打卡内容"
// @Success 200 {object} CheckinResponse
// @Failure 400 {object} util.Problem "重复打卡"
// @Failure 404 {object} util.Problem
// @Failure 422 {object} util.Problem
// @Router /checkins/{id} [put]
func (c *CheckinController) UpdateCheckin(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrCheckinNotFound)
	if !ok {
		return
	}
	in, ok := c.bind(ctx)
	if !ok {
		return
	}

	checkin, err := c.service.Update(ctx.Request.Context(), user.ID, id, in)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, toCheckinResponse(checkin))
}

// DeleteCheckin godoc
// @Summary 删除打卡
// @Tags 打卡
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "打卡ID"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.Problem
// @Router /checkins/{id} [delete]
func (c *CheckinController) DeleteCheckin(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrCheckinNotFound)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), user.ID, id); err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Message(ctx, "Checkin deleted")
}
