package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// ContactHandler 聯絡資訊模組 HTTP 處理器
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler 建立 ContactHandler
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// GetContact 取得聯絡資訊
// GET /api/v1/contact
func (h *ContactHandler) GetContact(c *gin.Context) {
	contact, err := h.contactSvc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.NotFound(c, 19001, "尚未設定聯絡資訊")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, contact)
}

// UpdateContact 更新聯絡資訊
// PUT /api/v1/admin/contact
// 尚無資料時以本次請求內容建立
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	contact, err := h.contactSvc.Update(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, contact)
}
