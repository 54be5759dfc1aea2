package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/service"
	"HabitBoard/pkg/response"
)

// MonthlySummary 月度汇总
// GET /v1/analytics/summary?month=&year=
func MonthlySummary(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	month, year, err := monthYearQuery(c)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	result, err := service.MonthlySummary(ctx, userID, month, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
