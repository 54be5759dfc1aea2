package service

import (
	"context"
	"strconv"

	"HabitBoard/internal/model"
	"HabitBoard/internal/model/dto"
	"HabitBoard/internal/repository"
	"HabitBoard/pkg/errors"
	"HabitBoard/utils"
)

func shortcutToItem(shortcut *model.Shortcut) dto.ShortcutItem {
	return dto.ShortcutItem{
		ID:       strconv.FormatInt(shortcut.ID, 10),
		Title:    shortcut.Title,
		URL:      shortcut.URL,
		Category: shortcut.Category,
		Position: shortcut.Position,
	}
}

// ListShortcuts 列出全部快捷方式
func ListShortcuts(ctx context.Context, userID int64) ([]dto.ShortcutItem, error) {
	shortcuts, err := repository.ListShortcuts(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ShortcutItem, 0, len(shortcuts))
	for _, s := range shortcuts {
		items = append(items, shortcutToItem(s))
	}
	return items, nil
}

// CreateShortcut 创建快捷方式
func CreateShortcut(ctx context.Context, userID int64, req *dto.CreateShortcutRequest) (*dto.ShortcutItem, error) {
	if req.Title == "" {
		return nil, errors.ShortcutTitleRequired
	}
	if req.URL == "" {
		return nil, errors.ShortcutURLRequired
	}
	if !utils.ValidURL(req.URL) {
		return nil, errors.ShortcutURLInvalid
	}

	shortcut := &model.Shortcut{
		UserID:   userID,
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
		Position: req.Position,
	}
	if err := repository.CreateShortcut(ctx, shortcut); err != nil {
		return nil, err
	}

	item := shortcutToItem(shortcut)
	return &item, nil
}

// UpdateShortcut 更新快捷方式
func UpdateShortcut(ctx context.Context, userID int64, shortcutID string, req *dto.UpdateShortcutRequest) (*dto.ShortcutItem, error) {
	id, err := parseEntityID(shortcutID, errors.ShortcutNotFound)
	if err != nil {
		return nil, err
	}

	shortcut, err := repository.GetShortcut(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if shortcut == nil {
		return nil, errors.ShortcutNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, errors.ShortcutTitleRequired
		}
		updates["title"] = *req.Title
		shortcut.Title = *req.Title
	}
	if req.URL != nil {
		if *req.URL == "" {
			return nil, errors.ShortcutURLRequired
		}
		if !utils.ValidURL(*req.URL) {
			return nil, errors.ShortcutURLInvalid
		}
		updates["url"] = *req.URL
		shortcut.URL = *req.URL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
		shortcut.Category = *req.Category
	}
	if req.Position != nil {
		updates["position"] = *req.Position
		shortcut.Position = *req.Position
	}

	if len(updates) > 0 {
		if err := repository.UpdateShortcut(ctx, userID, id, updates); err != nil {
			return nil, err
		}
	}

	item := shortcutToItem(shortcut)
	return &item, nil
}

// DeleteShortcut 删除快捷方式
func DeleteShortcut(ctx context.Context, userID int64, shortcutID string) error {
	id, err := parseEntityID(shortcutID, errors.ShortcutNotFound)
	if err != nil {
		return err
	}

	if err := repository.DeleteShortcut(ctx, userID, id); err != nil {
		if isNotFound(err) {
			return errors.ShortcutNotFound
		}
		return err
	}
	return nil
}
