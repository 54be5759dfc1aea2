package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/calc"
	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

func goalToItem(goal *model.Goal) dto.GoalItem {
	return dto.GoalItem{
		ID:          strconv.FormatInt(goal.ID, 10),
		Title:       goal.Title,
		Description: goal.Description,
		TargetDate:  goal.TargetDate,
		Completed:   goal.Completed,
		Progress:    goal.Progress,
	}
}

// ListGoals 列出全部目标
func ListGoals(ctx context.Context, userID int64) ([]dto.GoalItem, error) {
	goals, err := repository.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.GoalItem, 0, len(goals))
	for _, g := range goals {
		items = append(items, goalToItem(g))
	}
	return items, nil
}

// CreateGoal 创建目标
func CreateGoal(ctx context.Context, userID int64, req *dto.CreateGoalRequest) (*dto.GoalItem, error) {
	if req.Title == "" {
		return nil, errors.GoalTitleRequired
	}
	if req.TargetDate != "" {
		if _, ok := calc.ParseDate(req.TargetDate); !ok {
			return nil, errors.InvalidDate
		}
	}

	goal := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	}
	if err := repository.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}

	item := goalToItem(goal)
	return &item, nil
}

// UpdateGoal 更新目标
func UpdateGoal(ctx context.Context, userID int64, goalID string, req *dto.UpdateGoalRequest) (*dto.GoalItem, error) {
	id, err := parseEntityID(goalID, errors.GoalNotFound)
	if err != nil {
		return nil, err
	}

	goal, err := repository.GetGoal(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.GoalNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.GoalTitleRequired
		}
		updates["title"] = *req.Title
		goal.Title = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		goal.Description = *req.Description
	}
	if req.TargetDate != nil {
		if *req.TargetDate != "" {
			if _, ok := calc.ParseDate(*req.TargetDate); !ok {
				return nil, errors.InvalidDate
			}
		}
		updates["target_date"] = *req.TargetDate
		goal.TargetDate = *req.TargetDate
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
		goal.Completed = *req.Completed
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, errors.InvalidProgress
		}
		updates["progress"] = *req.Progress
		goal.Progress = *req.Progress
	}

	if len(updates) > 0 {
		if err := repository.UpdateGoal(ctx, userID, id, updates); err != nil {
			return nil, err
		}
	}

	item := goalToItem(goal)
	return &item, nil
}

// DeleteGoal 删除目标
func DeleteGoal(ctx context.Context, userID int64, goalID string) error {
	id, err := parseEntityID(goalID, errors.GoalNotFound)
	if err != nil {
		return err
	}

	if err := repository.DeleteGoal(ctx, userID, id); err != nil {
		if isNotFound(err) {
			return errors.GoalNotFound
		}
		return err
	}
	return nil
}
