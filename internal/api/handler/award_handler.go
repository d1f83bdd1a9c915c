package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// AwardHandler 獲獎模組 HTTP 處理器
type AwardHandler struct {
	awardSvc service.AwardService
}

// NewAwardHandler 建立 AwardHandler
func NewAwardHandler(awardSvc service.AwardService) *AwardHandler {
	return &AwardHandler{awardSvc: awardSvc}
}

// ListAwards 取得獲獎列表
// GET /api/v1/awards?sort=-year&category=學生獲獎
func (h *AwardHandler) ListAwards(c *gin.Context) {
	var req dto.AwardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	awards, err := h.awardSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": awards})
}

// GetAward 取得獲獎詳情
// GET /api/v1/awards/:id
func (h *AwardHandler) GetAward(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	award, err := h.awardSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleAwardError(c, err)
		return
	}

	response.OK(c, award)
}

// CreateAward 新增獲獎
// POST /api/v1/admin/awards
func (h *AwardHandler) CreateAward(c *gin.Context) {
	var req dto.CreateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	award, err := h.awardSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAwardError(c, err)
		return
	}

	response.Created(c, award)
}

// UpdateAward 更新獲獎
// PUT /api/v1/admin/awards/:id
func (h *AwardHandler) UpdateAward(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	award, err := h.awardSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAwardError(c, err)
		return
	}

	response.OK(c, award)
}

// DeleteAward 刪除獲獎
// DELETE /api/v1/admin/awards/:id
func (h *AwardHandler) DeleteAward(c *gin.Context) {
	id, ok := MustGetIDParam(c)
	if !ok {
		return
	}

	if err := h.awardSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAwardError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAwardError 統一處理獲獎模組業務錯誤
func (h *AwardHandler) handleAwardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAwardNotFound):
		response.NotFound(c, 17001, "獲獎紀錄不存在")
	default:
		response.InternalError(c)
	}
}
