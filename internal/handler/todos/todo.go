package todos

import (
	"errors"
	"net/http"
	"strconv"

	"todo-service/internal/api"
	"todo-service/internal/middleware"
	"todo-service/internal/model"
	"todo-service/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listTodos   = store.ListTodos
	getTodoByID = store.GetTodoByID
	createTodo  = store.CreateTodo
	updateTodo  = store.UpdateTodo
	deleteTodo  = store.DeleteTodo
)

func toResponse(t *model.Todo) api.TodoResponse {
	return api.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    t.Complete,
	}
}

// @Summary     List all todos
// @Description 回傳全部待辦事項
// @Tags        todos
// @Produce     json
// @Success     200 {array}  api.TodoResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /todos [get]
func ListTodosHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		db, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "no database session"})
		}
		todos, err := listTodos(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.TodoResponse, 0, len(todos))
		for i := range todos {
			resp = append(resp, toResponse(&todos[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a todo by ID
// @Description 透過 ID 查詢並回傳單筆待辦事項
// @Tags        todos
// @Produce     json
// @Param       todo_id path int true "待辦事項 ID"
// @Success     200 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /todos/{todo_id} [get]
func GetTodoHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("todo_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo ID"})
		}
		db, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "no database session"})
		}
		todo, err := getTodoByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "todo not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, toResponse(todo))
	}
}

// @Summary     Create a new todo
// @Description 建立一筆新的待辦事項
// @Tags        todos
// @Accept      json
// @Produce     json
// @Param       request body api.TodoRequest true "待辦事項內容"
// @Success     201 {object} api.TodoResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /todos [post]
func CreateTodoHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		db, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "no database session"})
		}
		todo, err := createTodo(c.Request().Context(), db, &model.Todo{
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Complete:    req.Complete,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, toResponse(todo))
	}
}

// @Summary     Update a todo by ID
// @Description 根據 ID 更新待辦事項全部欄位
// @Tags        todos
// @Accept      json
// @Param       todo_id path int             true "待辦事項 ID"
// @Param       request body api.TodoRequest true "待辦事項內容"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /todos/{todo_id} [put]
func UpdateTodoHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("todo_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo ID"})
		}
		var req api.TodoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		db, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "no database session"})
		}
		if err := updateTodo(c.Request().Context(), db, &model.Todo{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Priority:    req.Priority,
			Complete:    req.Complete,
		}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "todo not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a todo by ID
// @Description 根據 ID 刪除待辦事項
// @Tags        todos
// @Param       todo_id path int true "待辦事項 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /todos/{todo_id} [delete]
func DeleteTodoHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("todo_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid todo ID"})
		}
		db, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "no database session"})
		}
		if err := deleteTodo(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "todo not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
