package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// CourseHandler 課程模組 HTTP 處理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 建立 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 取得課程列表
// GET /api/v1/courses?year=2024&level=大學部
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var req dto.CourseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courses})
}

// GetCourse 取得課程詳情
// GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// CreateCourse 新增課程
// POST /api/v1/admin/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.Created(c, course)
}

// UpdateCourse 更新課程
// PUT /api/v1/admin/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, course)
}

// DeleteCourse 刪除課程
// DELETE /api/v1/admin/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCourseError 統一處理課程模組業務錯誤
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 16001, "課程不存在")
	default:
		response.InternalError(c)
	}
}
