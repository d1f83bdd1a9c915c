package dto

// ── 研究模組 DTO ──

// ResearchListRequest 研究列表查詢參數
type ResearchListRequest struct {
	ListQuery
	Type string `form:"type" binding:"omitempty,oneof=研究方向 研究專案"`
}

// CreateResearchRequest 新增研究請求
type CreateResearchRequest struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"        binding:"omitempty,oneof=研究方向 研究專案"`
	Status      string `json:"status"      binding:"omitempty,max=20"`
	StartYear   int    `json:"start_year"  binding:"omitempty,min=1900,max=2200"`
	EndYear     int    `json:"end_year"    binding:"omitempty,min=1900,max=2200"`
}

// UpdateResearchRequest 更新研究請求（僅合併有出現的欄位）
type UpdateResearchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"       binding:"omitempty,oneof=研究方向 研究專案"`
	Status      *string `json:"status"     binding:"omitempty,max=20"`
	StartYear   *int    `json:"start_year" binding:"omitempty,min=1900,max=2200"`
	EndYear     *int    `json:"end_year"   binding:"omitempty,min=1900,max=2200"`
}
