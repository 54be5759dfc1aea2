package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/service"
	"HabitBoard/pkg/response"
)

// GetNote 查某天的笔记
// GET /v1/notes/:date
func GetNote(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	result, err := service.GetNote(ctx, userID, c.Param("date"))
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpsertNote 写某天的笔记
// PUT /v1/notes/:date
func UpsertNote(ctx context.Context, c *app.RequestContext) {
	userID, ok := currentUser(ctx, c)
	if !ok {
		return
	}

	var req dto.UpsertNoteRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.UpsertNote(ctx, userID, c.Param("date"), &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
