package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"HabitBoard/internal/model"
	"HabitBoard/pkg/logger"
)

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	// 迁移所有模型
	err := db.AutoMigrate(
		&model.User{},
		&model.Habit{},
		&model.HabitLog{},
		&model.DailyNote{},
		&model.Todo{},
		&model.Shortcut{},
		&model.FocusSession{},
		&model.SleepLog{},
		&model.Goal{},
		&model.WaterReminder{},
	)

	if err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}
