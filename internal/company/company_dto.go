package company

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Industry string `json:"industry"`
}

type UpdateCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Industry string `json:"industry"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CompanyStatsResponse struct {
	TotalEmployees   int64 `json:"total_employees"`
	ActiveEmployees  int64 `json:"active_employees"`
	PendingLeaves    int64 `json:"pending_leaves"`
	ExpiringLicenses int64 `json:"expiring_licenses"`
}
