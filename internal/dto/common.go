package dto

// ListQuery 通用列表查詢參數
// sort 沿用前端排序規格（例 "-year"）；limit 為 0 時不限制筆數
type ListQuery struct {
	Sort  string `form:"sort"  binding:"omitempty,max=50"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
