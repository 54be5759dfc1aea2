package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/service"
	"HabitBoard/pkg/response"
)

// ListSleepLogs 按日期区间列出睡眠记录
// GET /v1/sleep-logs?start_date=&end_date=
func ListSleepLogs(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.ListSleepLogs(ctx, userID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpsertSleepLog 按日期写入睡眠记录
// PUT /v1/sleep-logs
func UpsertSleepLog(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.UpsertSleepLogRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.UpsertSleepLog(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DeleteSleepLog 删除某天的睡眠记录
// DELETE /v1/sleep-logs/:date
func DeleteSleepLog(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	if err := service.DeleteSleepLog(ctx, userID, c.Param("date")); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
