package dto

// ── 課程模組 DTO ──

// CourseListRequest 課程列表查詢參數
type CourseListRequest struct {
	ListQuery
	Year  int    `form:"year"  binding:"omitempty,min=1900,max=2200"`
	Level string `form:"level" binding:"omitempty,max=50"`
}

// CreateCourseRequest 新增課程請求
type CreateCourseRequest struct {
	Title      string `json:"title"      binding:"required,max=200"`
	Code       string `json:"code"       binding:"omitempty,max=50"`
	Semester   string `json:"semester"   binding:"omitempty,max=10"`
	Year       int    `json:"year"       binding:"omitempty,min=1900,max=2200"`
	Credits    int    `json:"credits"    binding:"omitempty,min=0,max=20"`
	Level      string `json:"level"      binding:"omitempty,max=50"`
	Instructor string `json:"instructor" binding:"omitempty,max=100"`
}

// UpdateCourseRequest 更新課程請求（僅合併有出現的欄位）
type UpdateCourseRequest struct {
	Title      *string `json:"title"      binding:"omitempty,max=200"`
	Code       *string `json:"code"       binding:"omitempty,max=50"`
	Semester   *string `json:"semester"   binding:"omitempty,max=10"`
	Year       *int    `json:"year"       binding:"omitempty,min=1900,max=2200"`
	Credits    *int    `json:"credits"    binding:"omitempty,min=0,max=20"`
	Level      *string `json:"level"      binding:"omitempty,max=50"`
	Instructor *string `json:"instructor" binding:"omitempty,max=100"`
}
