package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// PublicationHandler 論文模組 HTTP 處理器
type PublicationHandler struct {
	pubSvc service.PublicationService
}

// NewPublicationHandler 建立 PublicationHandler
func NewPublicationHandler(pubSvc service.PublicationService) *PublicationHandler {
	return &PublicationHandler{pubSvc: pubSvc}
}

// ListPublications 取得論文列表
// GET /api/v1/publications?sort=-year&year=2024&type=期刊論文
func (h *PublicationHandler) ListPublications(c *gin.Context) {
	var req dto.PublicationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	pubs, err := h.pubSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": pubs})
}

// GetPublication 取得論文詳情
// GET /api/v1/publications/:id
func (h *PublicationHandler) GetPublication(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	pub, err := h.pubSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePublicationError(c, err)
		return
	}

	response.OK(c, pub)
}

// CreatePublication 新增論文
// POST /api/v1/admin/publications
func (h *PublicationHandler) CreatePublication(c *gin.Context) {
	var req dto.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	pub, err := h.pubSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePublicationError(c, err)
		return
	}

	response.Created(c, pub)
}

// UpdatePublication 更新論文
// PUT /api/v1/admin/publications/:id
func (h *PublicationHandler) UpdatePublication(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	pub, err := h.pubSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePublicationError(c, err)
		return
	}

	response.OK(c, pub)
}

// DeletePublication 刪除論文
// DELETE /api/v1/admin/publications/:id
func (h *PublicationHandler) DeletePublication(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.pubSvc.Delete(c.Request.Context(), id); err != nil {
		h.handlePublicationError(c, err)
		return
	}

	response.OK(c, nil)
}

// handlePublicationError 統一處理論文模組業務錯誤
func (h *PublicationHandler) handlePublicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPublicationNotFound):
		response.NotFound(c, 14001, "論文不存在")
	default:
		response.InternalError(c)
	}
}
