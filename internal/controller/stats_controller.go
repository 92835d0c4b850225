package controller

import (
	"habit_tracker/internal/model"
	"habit_tracker/internal/service"
	"habit_tracker/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	service *service.StatsService
}

func NewStatsController(s *service.StatsService) *StatsController {
	return &StatsController{service: s}
}

// GetStats godoc
// @Summary 当前用户的总体统计
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Stats
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	stats, err := c.service.Overview(ctx.Request.Context(), user.ID)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// GetHabitStats godoc
// @Summary 单个习惯的统计
// @Tags 统计
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "习惯ID"
// @Success 200 {object} model.HabitStats
// @Failure 404 {object} util.Problem
// @Router /habits/{id}/stats [get]
func (c *StatsController) GetHabitStats(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, util.ErrHabitNotFound)
	if !ok {
		return
	}

	stats, err := c.service.ForHabit(ctx.Request.Context(), user.ID, id)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, escapeHabitStats(stats))
}

func escapeHabitStats(s *model.HabitStats) *model.HabitStats {
	out := *s
	out.HabitName = util.EscapeText(s.HabitName)
	return &out
}
