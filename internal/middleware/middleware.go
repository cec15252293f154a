package middleware

import (
	"net/http"

	"todo-service/internal/api"
	"todo-service/internal/database"

	"github.com/labstack/echo/v4"
)

const ContextSessionKey = "session"

// WithSession 為每個請求從連線池取得一個 Session，放入 echo context，
// 並保證在請求結束時釋放。defer 確保 handler 正常回傳、回傳錯誤
// 或 panic 時都會走到 Release。
func WithSession(pool database.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := pool.Acquire(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
			}
			defer sess.Release()
			c.Set(ContextSessionKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext 取出 WithSession 放入的請求層 Session。
func SessionFromContext(c echo.Context) (database.DB, bool) {
	sess, ok := c.Get(ContextSessionKey).(database.Session)
	if !ok {
		return nil, false
	}
	return sess, true
}
