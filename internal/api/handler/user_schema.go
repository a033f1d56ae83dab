package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createUserRequest accepts both JSON and form-encoded bodies; the original
// client submits the landing-page form urlencoded.
type createUserRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

type userResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}
