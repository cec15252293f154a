package auth

import (
	"net/http"

	"todo-service/internal/api"
	"todo-service/internal/middleware"
	"todo-service/internal/model"
	"todo-service/internal/service"
	"todo-service/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// @Summary     Register a new user
// @Description 接收 JSON 註冊資料並建立新帳號，密碼以 bcrypt 哈希後儲存，成功時不回傳任何 body
// @Tags        auth
// @Accept      json
// @Param       request body api.CreateUserRequest true "註冊資料"
// @Success     201 "Created"
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth [post]
func CreateUserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
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

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		// 重複的 username/email 會在這裡以唯一性違反浮出，不在本層攔截
		if _, err := createUser(c.Request().Context(), db, &model.User{
			Username:       req.Username,
			Email:          req.Email,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			HashedPassword: hash,
			IsActive:       true,
			Role:           req.Role,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusCreated)
	}
}
