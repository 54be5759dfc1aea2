package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/service"
	"HabitBoard/pkg/response"
)

// ListGoals 目标列表
// GET /v1/goals
func ListGoals(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.ListGoals(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// CreateGoal 创建目标
// POST /v1/goals
func CreateGoal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.CreateGoal(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, result)
}

// UpdateGoal 更新目标
// PATCH /v1/goals/:goal_id
func UpdateGoal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.UpdateGoal(ctx, userID, c.Param("goal_id"), &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DeleteGoal 删除目标
// DELETE /v1/goals/:goal_id
func DeleteGoal(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	if err := service.DeleteGoal(ctx, userID, c.Param("goal_id")); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
