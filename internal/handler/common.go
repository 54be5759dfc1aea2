package handler

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/middleware"
	"HabitBoard/pkg/errors"
	"HabitBoard/pkg/response"
)

var errMissingCredentials = stderrors.New("email and password are required")

// currentUser 从上下文取用户 ID，取不到时直接写 401 响应
func currentUser(ctx context.Context, c *app.RequestContext) (int64, bool) {
	userID, ok := middleware.GetUserIDInt(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return 0, false
	}
	return userID, true
}

// monthYearQuery 解析 month/year 查询参数
func monthYearQuery(c *app.RequestContext) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, errors.InvalidMonth
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, errors.InvalidMonth
	}
	return month, year, nil
}
