package api

// swagger:model api.TodoResponse
type TodoResponse struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"2L, whole"`
	Priority    int    `json:"priority" example:"3"`
	Complete    bool   `json:"complete" example:"false"`
}
