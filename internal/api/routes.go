package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.Refresh)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	user := app.Group("/user", handler.AuthRequired)
	user.Put("/profile", handler.UpdateProfile)
	user.Put("/password", handler.ChangePassword)

	goals := app.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.GetGoals)
	goals.Post("", handler.CreateGoal)
	goals.Post("/ai-roadmap", handler.GenerateRoadmap)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)
	goals.Get("/:id/steps", handler.GetGoalSteps)
	goals.Post("/:id/steps", handler.CreateGoalStep)
	goals.Put("/:id/steps/:stepId", handler.UpdateGoalStep)
	goals.Delete("/:id/steps/:stepId", handler.DeleteGoalStep)

	finances := app.Group("/finances", handler.AuthRequired)
	finances.Get("/transactions", handler.GetTransactions)
	finances.Post("/transactions", handler.CreateTransaction)
	finances.Put("/transactions/:id", handler.UpdateTransaction)
	finances.Delete("/transactions/:id", handler.DeleteTransaction)
	finances.Get("/summary", handler.GetFinanceSummary)
	finances.Get("/budget", handler.GetBudgets)
	finances.Post("/budget", handler.CreateBudget)

	habits := app.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/log", handler.LogHabit)
	habits.Get("/:id/logs", handler.GetHabitLogs)

	tasks := app.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.GetTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	health := app.Group("/health", handler.AuthRequired)
	health.Get("/metrics", handler.GetHealthMetrics)
	health.Post("/metrics", handler.CreateHealthMetric)
	health.Get("/workouts", handler.GetWorkouts)
	health.Post("/workouts", handler.CreateWorkout)

	bucketlist := app.Group("/bucketlist", handler.AuthRequired)
	bucketlist.Get("/summary", handler.GetBucketListSummary)
	bucketlist.Get("", handler.GetBucketItems)
	bucketlist.Post("", handler.CreateBucketItem)
	bucketlist.Put("/:id", handler.UpdateBucketItem)
	bucketlist.Patch("/:id/status", handler.UpdateBucketItemStatus)
	bucketlist.Delete("/:id", handler.DeleteBucketItem)
}
