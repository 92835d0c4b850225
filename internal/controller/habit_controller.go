package controller

import (
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	service *service.HabitService
}

func NewHabitController(s *service.HabitService) *HabitController {
	return &HabitController{service: s}
}

// HabitRequest 创建与更新习惯共用
// swagger:model HabitRequest
type HabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Periodicity int    `json:"periodicity" binding:"required,gt=0"`
}

// HabitResponse 名称已做 HTML 转义
// swagger:model HabitResponse
type HabitResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Periodicity int    `json:"periodicity"`
	UserID      uint   `json:"user_id"`
}

// HabitDetailResponse 习惯及其全部打卡
// swagger:model HabitDetailResponse
type HabitDetailResponse struct {
	HabitResponse
	Checkins []CheckinResponse `json:"checkins"`
}

func toHabitResponse(h *model.Habit) HabitResponse {
	return HabitResponse{
		ID:          h.ID,
		Name:        util.EscapeText(h.Name),
		Periodicity: h.Periodicity,
		UserID:      h.UserID,
	}
}

// CreateHabit godoc
// @Summary 创建习惯
// @Tags 习惯
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body HabitRequest true "习惯内容"
// @Success 200 {object} HabitResponse
// @Failure 422 {object} util.Problem
// @Router /habits [post]
func (c *HabitController) CreateHabit(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req HabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.BindingError(err))
		return
	}

	habit, err := c.service.Create(ctx.Request.Context(), user.ID, req.Name, req.Periodicity)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, toHabitResponse(habit))
}

// ListHabits godoc
// @Summary 获取当前用户的全部习惯
// @Tags 习惯
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} HabitResponse
// @Router /habits [get]
func (c *HabitController) ListHabits(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	habits, err := c.service.List(ctx.Request.Context(), user.ID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	resp := make([]HabitResponse, 0, len(habits))
	for i := range habits {
		resp = append(resp, toHabitResponse(&habits[i]))
	}
	util.Success(ctx, resp)
}

// GetHabit godoc
// @Summary 获取习惯
// @Tags 习惯
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "习惯ID"
// @Success 200 {object} HabitResponse
// @Failure 404 {object} util.Problem
// @Router /habits/{id} [get]
func (c *HabitController) GetHabit(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrHabitNotFound)
	if !ok {
		return
	}

	habit, err := c.service.Get(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, toHabitResponse(habit))
}

// GetHabitDetailed godoc
// @Summary 获取习惯及其全部打卡
// @Tags 习惯
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "习惯ID"
// @Success 200 {object} HabitDetailResponse
// @Failure 404 {object} util.Problem
// @Router /habits/{id}/detailed [get]
func (c *HabitController) GetHabitDetailed(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrHabitNotFound)
	if !ok {
		return
	}

	habit, err := c.service.GetDetailed(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	resp := HabitDetailResponse{
		HabitResponse: toHabitResponse(habit),
		Checkins:      make([]CheckinResponse, 0, len(habit.Checkins)),
	}
	for i := range habit.Checkins {
		resp.Checkins = append(resp.Checkins, toCheckinResponse(&habit.Checkins[i]))
	}
	util.Success(ctx, resp)
}

// UpdateHabit godoc
// @Summary 更新习惯
// @Tags 习惯
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "习惯ID"
// @Param body body HabitRequest true "习惯内容"
// @Success 200 {object} HabitResponse
// @Failure 404 {object} util.Problem
// @Failure 422 {object} util.Problem
// @Router /habits/{id} [put]
func (c *HabitController) UpdateHabit(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrHabitNotFound)
	if !ok {
		return
	}

	var req HabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Fail(ctx, util.BindingError(err))
		return
	}

	habit, err := c.service.Update(ctx.Request.Context(), user.ID, id, req.Name, req.Periodicity)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, toHabitResponse(habit))
}

// DeleteHabit godoc
// @Summary 删除习惯（同时删除其全部打卡）
// @Tags 习惯
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "习惯ID"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.Problem
// @Router /habits/{id} [delete]
func (c *HabitController) DeleteHabit(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrHabitNotFound)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), user.ID, id); err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Message(ctx, "Habit deleted")
}
