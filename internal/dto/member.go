package dto

// ── 成員模組 DTO ──

// MemberListRequest 成員列表查詢參數
type MemberListRequest struct {
	ListQuery
	Status string `form:"status" binding:"omitempty,oneof=在學 已畢業 已離職"`
}

// CreateMemberRequest 新增成員請求
type CreateMemberRequest struct {
	Name           string `json:"name"            binding:"required,max=100"`
	Position       string `json:"position"        binding:"omitempty,max=50"`
	Status         string `json:"status"          binding:"omitempty,oneof=在學 已畢業 已離職"`
	Year           string `json:"year"            binding:"omitempty,max=10"`
	ResearchTopic  string `json:"research_topic"`
	GraduationYear string `json:"graduation_year" binding:"omitempty,max=10"`
}

// UpdateMemberRequest 更新成員請求（僅合併有出現的欄位）
type UpdateMemberRequest struct {
	Name           *string `json:"name"            binding:"omitempty,max=100"`
	Position       *string `json:"position"        binding:"omitempty,max=50"`
	Status         *string `json:"status"          binding:"omitempty,oneof=在學 已畢業 已離職"`
	Year           *string `json:"year"            binding:"omitempty,max=10"`
	ResearchTopic  *string `json:"research_topic"`
	GraduationYear *string `json:"graduation_year" binding:"omitempty,max=10"`
}
