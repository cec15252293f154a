package api

// swagger:model api.TodoRequest
type TodoRequest struct {
	Title       string `json:"title" validate:"required" example:"Buy milk"`
	Description string `json:"description" example:"2L, whole"`
	Priority    int    `json:"priority" validate:"gte=1,lte=5" example:"3"`
	Complete    bool   `json:"complete" example:"false"`
}
