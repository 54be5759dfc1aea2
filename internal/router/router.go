package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"HabitBoard/internal/handler"
	"HabitBoard/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.OpenTelemetryMiddleware())

	v1 := h.Group("/v1")

	// 认证相关路由
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware()) // 认证接口限流，按 IP
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/token/refresh", handler.RefreshToken)
	}

	// 用户相关路由
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", handler.GetProfile)
		users.PUT("/me", handler.UpdateProfile)
	}

	// 习惯打卡路由
	habits := v1.Group("/habits")
	habits.Use(middleware.AuthMiddleware())
	habits.Use(middleware.GeneralRateLimitMiddleware())
	{
		habits.GET("", handler.ListHabits)
		habits.POST("", handler.CreateHabit)
		habits.GET("/logs", handler.ListHabitLogs)
		habits.GET("/streaks", handler.HabitStreaks)
		habits.GET("/grid", handler.MonthGrid)
		habits.GET("/export", handler.ExportHabits)
		habits.PATCH("/:habit_id", handler.UpdateHabit)
		habits.DELETE("/:habit_id", handler.DeleteHabit)
		habits.PUT("/:habit_id/logs/:date", handler.UpsertHabitLog)
		habits.POST("/:habit_id/logs/:date/toggle", handler.ToggleHabitLog)
	}

	// 待办路由
	todos := v1.Group("/todos")
	todos.Use(middleware.AuthMiddleware())
	{
		todos.GET("", handler.ListTodos)
		todos.POST("", handler.CreateTodo)
		todos.PATCH("/:todo_id", handler.UpdateTodo)
		todos.DELETE("/:todo_id", handler.DeleteTodo)
	}

	// 快捷方式路由
	shortcuts := v1.Group("/shortcuts")
	shortcuts.Use(middleware.AuthMiddleware())
	{
		shortcuts.GET("", handler.ListShortcuts)
		shortcuts.POST("", handler.CreateShortcut)
		shortcuts.PATCH("/:shortcut_id", handler.UpdateShortcut)
		shortcuts.DELETE("/:shortcut_id", handler.DeleteShortcut)
	}

	// 目标路由
	goals := v1.Group("/goals")
	goals.Use(middleware.AuthMiddleware())
	{
		goals.GET("", handler.ListGoals)
		goals.POST("", handler.CreateGoal)
		goals.PATCH("/:goal_id", handler.UpdateGoal)
		goals.DELETE("/:goal_id", handler.DeleteGoal)
	}

	// 每日笔记路由
	notes := v1.Group("/notes")
	notes.Use(middleware.AuthMiddleware())
	{
		notes.GET("/:date", handler.GetNote)
		notes.PUT("/:date", handler.UpsertNote)
	}

	// 睡眠记录路由
	sleepLogs := v1.Group("/sleep-logs")
	sleepLogs.Use(middleware.AuthMiddleware())
	{
		sleepLogs.GET("", handler.ListSleepLogs)
		sleepLogs.PUT("", handler.UpsertSleepLog)
		sleepLogs.DELETE("/:date", handler.DeleteSleepLog)
	}

	// 专注会话路由
	focusSessions := v1.Group("/focus-sessions")
	focusSessions.Use(middleware.AuthMiddleware())
	{
		focusSessions.GET("", handler.ListFocusSessions)
		focusSessions.POST("", handler.CreateFocusSession)
	}

	// 饮水计数路由
	water := v1.Group("/water")
	water.Use(middleware.AuthMiddleware())
	{
		water.GET("/:date", handler.GetWater)
		water.PUT("/:date", handler.UpsertWater)
		water.POST("/:date/increment", handler.IncrementWater)
	}

	// 汇总分析路由
	analytics := v1.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	{
		analytics.GET("/summary", handler.MonthlySummary)
	}
}
