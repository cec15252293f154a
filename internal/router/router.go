package router

import (
	"github.com/labstack/echo/v4"

	"todo-service/internal/database"
	"todo-service/internal/handler"
	"todo-service/internal/handler/auth"
	"todo-service/internal/handler/todos"
	"todo-service/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, pool database.Pool) {
	// 健康檢查直接打連線池
	e.GET("/healthz", handler.HealthHandler(pool))

	// 使用者註冊
	e.POST("/auth", auth.CreateUserHandler(), middleware.WithSession(pool))

	// 待辦事項 CRUD，每個請求各自持有一個 Session
	apiTodos := e.Group("/todos", middleware.WithSession(pool))
	apiTodos.GET("", todos.ListTodosHandler())
	apiTodos.POST("", todos.CreateTodoHandler())
	apiTodos.GET("/:todo_id", todos.GetTodoHandler())
	apiTodos.PUT("/:todo_id", todos.UpdateTodoHandler())
	apiTodos.DELETE("/:todo_id", todos.DeleteTodoHandler())
}
