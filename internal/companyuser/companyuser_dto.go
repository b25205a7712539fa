package companyuser

type CreateMembershipRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	Role        string   `json:"role" binding:"required,oneof=owner admin manager viewer"`
	Permissions []string `json:"permissions"`
}

type UpdateMembershipRequest struct {
	Role        string   `json:"role" binding:"required,oneof=owner admin manager viewer"`
	Permissions []string `json:"permissions"`
}

type MembershipResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	CompanyID   string   `json:"company_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	CreatedAt   string   `json:"created_at"`
}
