package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// ResearchHandler 研究模組 HTTP 處理器
type ResearchHandler struct {
	researchSvc service.ResearchService
}

// NewResearchHandler 建立 ResearchHandler
func NewResearchHandler(researchSvc service.ResearchService) *ResearchHandler {
	return &ResearchHandler{researchSvc: researchSvc}
}

// ListResearch 取得研究列表
// GET /api/v1/research?type=研究方向
func (h *ResearchHandler) ListResearch(c *gin.Context) {
	var req dto.ResearchListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	items, err := h.researchSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// GetResearch 取得研究詳情
// GET /api/v1/research/:id
func (h *ResearchHandler) GetResearch(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	item, err := h.researchSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleResearchError(c, err)
		return
	}

	response.OK(c, item)
}

// CreateResearch 新增研究
// POST /api/v1/admin/research
func (h *ResearchHandler) CreateResearch(c *gin.Context) {
	var req dto.CreateResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	item, err := h.researchSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleResearchError(c, err)
		return
	}

	response.Created(c, item)
}

// UpdateResearch 更新研究
// PUT /api/v1/admin/research/:id
func (h *ResearchHandler) UpdateResearch(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	item, err := h.researchSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleResearchError(c, err)
		return
	}

	response.OK(c, item)
}

// DeleteResearch 刪除研究
// DELETE /api/v1/admin/research/:id
func (h *ResearchHandler) DeleteResearch(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.researchSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleResearchError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleResearchError 統一處理研究模組業務錯誤
func (h *ResearchHandler) handleResearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResearchNotFound):
		response.NotFound(c, 15001, "研究項目不存在")
	default:
		response.InternalError(c)
	}
}
