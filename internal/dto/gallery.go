package dto

// ── 相簿模組 DTO ──

// GalleryListRequest 相簿列表查詢參數
type GalleryListRequest struct {
	ListQuery
	Category string `form:"category" binding:"omitempty,max=50"`
}

// GalleryImageInput 相簿內單張照片
type GalleryImageInput struct {
	URL     string `json:"url"     binding:"required,url"`
	Caption string `json:"caption" binding:"omitempty,max=200"`
	Date    string `json:"date"    binding:"omitempty,datetime=2006-01-02"`
}

// CreateGalleryRequest 新增相簿請求
type CreateGalleryRequest struct {
	Title         string              `json:"title"           binding:"required,max=200"`
	Description   string              `json:"description"`
	CoverImageURL string              `json:"cover_image_url" binding:"omitempty,url"`
	Images        []GalleryImageInput `json:"images"          binding:"omitempty,dive"`
	EventDate     string              `json:"event_date"      binding:"omitempty,datetime=2006-01-02"`
	Category      string              `json:"category"        binding:"omitempty,max=50"`
}

// UpdateGalleryRequest 更新相簿請求（僅合併有出現的欄位）
// Images 出現時整組取代，照片順序即為顯示順序
type UpdateGalleryRequest struct {
	Title         *string              `json:"title"           binding:"omitempty,max=200"`
	Description   *string              `json:"description"`
	CoverImageURL *string              `json:"cover_image_url" binding:"omitempty,url"`
	Images        *[]GalleryImageInput `json:"images"          binding:"omitempty,dive"`
	EventDate     *string              `json:"event_date"      binding:"omitempty,datetime=2006-01-02"`
	Category      *string              `json:"category"        binding:"omitempty,max=50"`
}
