package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// MemberHandler 成員模組 HTTP 處理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 建立 MemberHandler
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// ListMembers 取得成員列表
// GET /api/v1/members?status=在學&sort=-year&limit=20
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var req dto.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	members, err := h.memberSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": members})
}

// GetMember 取得成員詳情
// GET /api/v1/members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	member, err := h.memberSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, member)
}

// CreateMember 新增成員
// POST /api/v1/admin/members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	member, err := h.memberSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.Created(c, member)
}

// UpdateMember 更新成員
// PUT /api/v1/admin/members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	member, err := h.memberSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, member)
}

// DeleteMember 刪除成員
// DELETE /api/v1/admin/members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleMemberError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleMemberError 統一處理成員模組業務錯誤
func (h *MemberHandler) handleMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		response.NotFound(c, 13001, "成員不存在")
	default:
		response.InternalError(c)
	}
}
