package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// TeacherHandler 師資模組 HTTP 處理器
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler 建立 TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// ListTeachers 取得師資列表
// GET /api/v1/teachers
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	teachers, err := h.teacherSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": teachers})
}

// GetTeacher 取得教師詳情
// GET /api/v1/teachers/:id
func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	teacher, err := h.teacherSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, teacher)
}

// CreateTeacher 新增教師
// POST /api/v1/admin/teachers
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.Created(c, teacher)
}

// UpdateTeacher 更新教師
// PUT /api/v1/admin/teachers/:id
func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, teacher)
}

// DeleteTeacher 刪除教師
// DELETE /api/v1/admin/teachers/:id
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleTeacherError 統一處理師資模組業務錯誤
func (h *TeacherHandler) handleTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 12001, "教師不存在")
	default:
		response.InternalError(c)
	}
}
