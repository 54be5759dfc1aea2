package model

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"HabitBoard/internal/calc"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&HabitLog{}, &SleepLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func upsertHabitLog(db *gorm.DB, log *HabitLog) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(log).Error
}

func upsertSleepLog(db *gorm.DB, log *SleepLog) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"sleep_time", "wake_time", "duration", "quality", "notes", "updated_at"}),
	}).Create(log).Error
}

// 打卡循环会把某天删回 empty 再重新 upsert，删行必须真正释放 (habit_id, date) 唯一键
func TestHabitLogUpsertAfterDelete(t *testing.T) {
	db := openTestDB(t)
	const date = "2026-08-01"

	if err := upsertHabitLog(db, &HabitLog{HabitID: 1, Date: date, Status: calc.StatusDone}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := db.Where("habit_id = ? AND date = ?", 1, date).Delete(&HabitLog{}).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := upsertHabitLog(db, &HabitLog{HabitID: 1, Date: date, Status: calc.StatusDone}); err != nil {
		t.Fatalf("upsert after delete: %v", err)
	}

	var log HabitLog
	if err := db.Where("habit_id = ? AND date = ?", 1, date).First(&log).Error; err != nil {
		t.Fatalf("read back after delete+upsert: %v", err)
	}
	if log.Status != calc.StatusDone {
		t.Errorf("Status = %q, want %q", log.Status, calc.StatusDone)
	}

	var count int64
	if err := db.Model(&HabitLog{}).Where("habit_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows for habit = %d, want 1", count)
	}
}

// 删除某天的睡眠记录后再按同一天 upsert，记录必须能读回来
func TestSleepLogUpsertAfterDelete(t *testing.T) {
	db := openTestDB(t)
	const date = "2026-08-01"

	first := &SleepLog{UserID: 7, Date: date, SleepTime: "23:30", WakeTime: "07:00", Duration: 450, Quality: 4}
	if err := upsertSleepLog(db, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := db.Where("user_id = ? AND date = ?", 7, date).Delete(&SleepLog{}).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	second := &SleepLog{UserID: 7, Date: date, SleepTime: "00:15", WakeTime: "08:00", Duration: 465, Quality: 3}
	if err := upsertSleepLog(db, second); err != nil {
		t.Fatalf("upsert after delete: %v", err)
	}

	var logs []*SleepLog
	if err := db.Where("user_id = ? AND date >= ? AND date <= ?", 7, date, date).Find(&logs).Error; err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d sleep logs, want 1", len(logs))
	}
	if logs[0].SleepTime != "00:15" || logs[0].Duration != 465 {
		t.Errorf("read back SleepTime=%q Duration=%d, want 00:15/465", logs[0].SleepTime, logs[0].Duration)
	}
}
