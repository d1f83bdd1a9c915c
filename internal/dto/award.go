package dto

// ── 獲獎模組 DTO ──

// AwardListRequest 獲獎列表查詢參數
type AwardListRequest struct {
	ListQuery
	Year     int    `form:"year"     binding:"omitempty,min=1900,max=2200"`
	Category string `form:"category" binding:"omitempty,max=50"`
}

// CreateAwardRequest 新增獲獎請求
type CreateAwardRequest struct {
	Title        string `json:"title"        binding:"required,max=200"`
	Recipient    string `json:"recipient"    binding:"omitempty,max=100"`
	Organization string `json:"organization" binding:"omitempty,max=200"`
	Year         int    `json:"year"         binding:"omitempty,min=1900,max=2200"`
	Category     string `json:"category"     binding:"omitempty,max=50"`
}

// UpdateAwardRequest 更新獲獎請求（僅合併有出現的欄位）
type UpdateAwardRequest struct {
	Title        *string `json:"title"        binding:"omitempty,max=200"`
	Recipient    *string `json:"recipient"    binding:"omitempty,max=100"`
	Organization *string `json:"organization" binding:"omitempty,max=200"`
	Year         *int    `json:"year"         binding:"omitempty,min=1900,max=2200"`
	Category     *string `json:"category"     binding:"omitempty,max=50"`
}
