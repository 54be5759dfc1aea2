package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/service"
	"HabitBoard/pkg/response"
)

// ListHabits 某月的习惯列表
// GET /v1/habits?month=&year=
func ListHabits(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	month, year, err := monthYearQuery(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	result, err := service.ListHabits(ctx, userID, month, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// CreateHabit 创建习惯
// POST /v1/habits
func CreateHabit(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateHabitRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.CreateHabit(ctx, userID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Created(ctx, c, result)
}

// UpdateHabit 更新习惯
// PATCH /v1/habits/:habit_id
func UpdateHabit(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.UpdateHabitRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.UpdateHabit(ctx, userID, c.Param("habit_id"), &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DeleteHabit 删除习惯及其打卡记录
// DELETE /v1/habits/:habit_id
func DeleteHabit(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	if err := service.DeleteHabit(ctx, userID, c.Param("habit_id")); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

// ListHabitLogs 批量拉取打卡记录，habit_ids 逗号分隔，为空取当月全部
// GET /v1/habits/logs?month=&year=&habit_ids=1,2,3
func ListHabitLogs(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	month, year, err := monthYearQuery(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	var habitIDs []string
	if raw := c.Query("habit_ids"); raw != "" {
		habitIDs = strings.Split(raw, ",")
	}

	result, err := service.ListHabitLogs(ctx, userID, habitIDs, month, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpsertHabitLog 直接写入某天的状态，幂等
// PUT /v1/habits/:habit_id/logs/:date
func UpsertHabitLog(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.UpsertHabitLogRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.UpsertHabitLog(ctx, userID, c.Param("habit_id"), c.Param("date"), req.Status)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ToggleHabitLog 按 empty→done→skip→empty 循环推进某天的状态
// POST /v1/habits/:habit_id/logs/:date/toggle
func ToggleHabitLog(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.ToggleHabitLog(ctx, userID, c.Param("habit_id"), c.Param("date"))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// HabitStreaks 当前视图月份内每个习惯的连续天数
// GET /v1/habits/streaks?month=&year=
func HabitStreaks(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	month, year, err := monthYearQuery(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	result, err := service.HabitStreaks(ctx, userID, month, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// MonthGrid 月视图矩阵
// GET /v1/habits/grid?month=&year=
func MonthGrid(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	month, year, err := monthYearQuery(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	result, err := service.MonthGrid(ctx, userID, month, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ExportHabits 导出某月打卡表 CSV
// GET /v1/habits/export?month=&year=
func ExportHabits(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	month, year, err := monthYearQuery(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	csvData, err := service.ExportMonthCSV(ctx, userID, month, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	filename := fmt.Sprintf("habits-%04d-%02d.csv", year, month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "text/csv; charset=utf-8", []byte(csvData))
}
