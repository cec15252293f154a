package api

// CreateUserRequest 定義註冊新使用者的請求格式 (JSON body)
// 六個欄位皆為必填字串；除必填檢查外不做格式或強度驗證。
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required" example:"alice"`
	Email     string `json:"email" validate:"required" example:"alice@example.com"`
	FirstName string `json:"first_name" validate:"required" example:"Alice"`
	LastName  string `json:"last_name" validate:"required" example:"Liddell"`
	Password  string `json:"password" validate:"required" example:"Secret123!"`
	Role      string `json:"role" validate:"required" example:"user"`
}
