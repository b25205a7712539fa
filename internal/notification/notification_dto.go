package notification

type CreateNotificationRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	CompanyID string `json:"company_id"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id,omitempty"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	ReadAt    string `json:"read_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
