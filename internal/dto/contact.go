package dto

// ── 聯絡資訊模組 DTO ──

// UpdateContactRequest 更新聯絡資訊請求（僅合併有出現的欄位）
type UpdateContactRequest struct {
	LabName    *string  `json:"lab_name"   binding:"omitempty,max=200"`
	Department *string  `json:"department" binding:"omitempty,max=200"`
	University *string  `json:"university" binding:"omitempty,max=200"`
	Address    *string  `json:"address"`
	Phone      *string  `json:"phone"      binding:"omitempty,max=50"`
	Email      *string  `json:"email"      binding:"omitempty,email,max=255"`
	Latitude   *float64 `json:"latitude"   binding:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude"  binding:"omitempty,min=-180,max=180"`
}
