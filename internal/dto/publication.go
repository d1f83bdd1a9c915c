package dto

// ── 論文模組 DTO ──

// PublicationListRequest 論文列表查詢參數
type PublicationListRequest struct {
	ListQuery
	Year int    `form:"year" binding:"omitempty,min=1900,max=2200"`
	Type string `form:"type" binding:"omitempty,max=50"`
}

// CreatePublicationRequest 新增論文請求
type CreatePublicationRequest struct {
	Title    string `json:"title"    binding:"required"`
	Authors  string `json:"authors"  binding:"omitempty"`
	Journal  string `json:"journal"  binding:"omitempty"`
	Year     int    `json:"year"     binding:"omitempty,min=1900,max=2200"`
	Type     string `json:"type"     binding:"omitempty,max=50"`
	DOI      string `json:"doi"      binding:"omitempty,max=200"`
	PDFURL   string `json:"pdf_url"  binding:"omitempty,url"`
	Abstract string `json:"abstract"`
}

// UpdatePublicationRequest 更新論文請求（僅合併有出現的欄位）
type UpdatePublicationRequest struct {
	Title    *string `json:"title"`
	Authors  *string `json:"authors"`
	Journal  *string `json:"journal"`
	Year     *int    `json:"year"    binding:"omitempty,min=1900,max=2200"`
	Type     *string `json:"type"    binding:"omitempty,max=50"`
	DOI      *string `json:"doi"     binding:"omitempty,max=200"`
	PDFURL   *string `json:"pdf_url" binding:"omitempty,url"`
	Abstract *string `json:"abstract"`
}
