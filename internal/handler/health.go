package handler

import (
	"net/http"

	"todo-service/internal/api"
	"todo-service/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 回應訊息
	Message string `json:"message" example:"ok"`
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 ok，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /healthz [get]
func HealthHandler(pool database.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Message: "ok"})
	}
}
