package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/service"
	"HabitBoard/pkg/response"
)

// ListFocusSessions 按日期区间列出专注会话
// GET /v1/focus-sessions?start_date=&end_date=
func ListFocusSessions(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.ListFocusSessions(ctx, userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// CreateFocusSession 记录一次完成的专注会话
// POST /v1/focus-sessions
func CreateFocusSession(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateFocusSessionRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.CreateFocusSession(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, result)
}
