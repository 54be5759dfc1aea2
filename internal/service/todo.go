package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
)

func todoToItem(todo *model.Todo) dto.TodoItem {
	return dto.TodoItem{
		ID:        strconv.FormatInt(todo.ID, 10),
		Title:     todo.Title,
		Completed: todo.Completed,
		Position:  todo.Position,
	}
}

// ListTodos 列出全部待办
func ListTodos(ctx context.Context, userID int64) ([]dto.TodoItem, error) {
	todos, err := repository.ListTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TodoItem, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoToItem(t))
	}
	return items, nil
}

// CreateTodo 创建待办
func CreateTodo(ctx context.Context, userID int64, req *dto.CreateTodoRequest) (*dto.TodoItem, error) {
	if req.Title == "" {
		return nil, errors.TodoTitleRequired
	}

	todo := &model.Todo{
		UserID:   userID,
		Title:    req.Title,
		Position: req.Position,
	}
	if err := repository.CreateTodo(ctx, todo); err != nil {
		return nil, err
	}

	item := todoToItem(todo)
	return &item, nil
}

// UpdateTodo 更新待办
func UpdateTodo(ctx context.Context, userID int64, todoID string, req *dto.UpdateTodoRequest) (*dto.TodoItem, error) {
	id, err := parseEntityID(todoID, errors.TodoNotFound)
	if err != nil {
		return nil, err
	}

	todo, err := repository.GetTodo(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, errors.TodoNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.TodoTitleRequired
		}
		updates["title"] = *req.Title
		todo.Title = *req.Title
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
		todo.Completed = *req.Completed
	}
	if req.Position != nil {
		updates["position"] = *req.Position
		todo.Position = *req.Position
	}

	if len(updates) > 0 {
		if err := repository.UpdateTodo(ctx, userID, id, updates); err != nil {
			return nil, err
		}
	}

	item := todoToItem(todo)
	return &item, nil
}

// DeleteTodo 删除待办
func DeleteTodo(ctx context.Context, userID int64, todoID string) error {
	id, err := parseEntityID(todoID, errors.TodoNotFound)
	if err != nil {
		return err
	}

	if err := repository.DeleteTodo(ctx, userID, id); err != nil {
		if isNotFound(err) {
			return errors.TodoNotFound
		}
		return err
	}
	return nil
}
