package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// GalleryHandler 相簿模組 HTTP 處理器
type GalleryHandler struct {
	gallerySvc service.GalleryService
}

// NewGalleryHandler 建立 GalleryHandler
func NewGalleryHandler(gallerySvc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallerySvc: gallerySvc}
}

// ListGalleries 取得相簿列表
// GET /api/v1/galleries?category=實驗室活動&sort=-event_date
func (h *GalleryHandler) ListGalleries(c *gin.Context) {
	var req dto.GalleryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	galleries, err := h.gallerySvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": galleries})
}

// GetGallery 取得相簿詳情
// GET /api/v1/galleries/:id
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	gallery, err := h.gallerySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleGalleryError(c, err)
		return
	}

	response.OK(c, gallery)
}

// CreateGallery 新增相簿
// POST /api/v1/admin/galleries
func (h *GalleryHandler) CreateGallery(c *gin.Context) {
	var req dto.CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	gallery, err := h.gallerySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleGalleryError(c, err)
		return
	}

	response.Created(c, gallery)
}

// UpdateGallery 更新相簿
// PUT /api/v1/admin/galleries/:id
func (h *GalleryHandler) UpdateGallery(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	gallery, err := h.gallerySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleGalleryError(c, err)
		return
	}

	response.OK(c, gallery)
}

// DeleteGallery 刪除相簿
// DELETE /api/v1/admin/galleries/:id
func (h *GalleryHandler) DeleteGallery(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.gallerySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleGalleryError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleGalleryError 統一處理相簿模組業務錯誤
func (h *GalleryHandler) handleGalleryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGalleryNotFound):
		response.NotFound(c, 18001, "相簿不存在")
	default:
		response.InternalError(c)
	}
}
