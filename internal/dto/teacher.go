package dto

// ── 師資模組 DTO ──

// CreateTeacherRequest 新增教師請求
type CreateTeacherRequest struct {
	Name      string `json:"name"       binding:"required,max=100"`
	Title     string `json:"title"      binding:"omitempty,max=100"`
	Email     string `json:"email"      binding:"omitempty,email,max=255"`
	Office    string `json:"office"     binding:"omitempty,max=200"`
	Bio       string `json:"bio"        binding:"omitempty"`
	IsPrimary bool   `json:"is_primary"`
	PhotoURL  string `json:"photo_url"  binding:"omitempty,url"`
}

// UpdateTeacherRequest 更新教師請求（僅合併有出現的欄位）
type UpdateTeacherRequest struct {
	Name      *string `json:"name"       binding:"omitempty,max=100"`
	Title     *string `json:"title"      binding:"omitempty,max=100"`
	Email     *string `json:"email"      binding:"omitempty,email,max=255"`
	Office    *string `json:"office"     binding:"omitempty,max=200"`
	Bio       *string `json:"bio"`
	IsPrimary *bool   `json:"is_primary"`
	PhotoURL  *string `json:"photo_url"  binding:"omitempty,url"`
}
