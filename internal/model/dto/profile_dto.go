package dto

// ProfileResponse 用户资料
type ProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UpdateProfileRequest 更新资料请求，目前只允许改用户名
type UpdateProfileRequest struct {
	Username string `json:"username"`
}
