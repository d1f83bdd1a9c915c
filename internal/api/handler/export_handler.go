package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 匯出模組 HTTP 處理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 建立 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export 匯出指定集合為 Excel
// GET /api/v1/admin/export/:entity
func (h *ExportHandler) Export(c *gin.Context) {
	entity := c.Param("entity")
	if entity == "" {
		response.BadRequest(c, 10001, "匯出項目不能為空")
		return
	}

	buf, filename, err := h.exportSvc.Export(c.Request.Context(), entity)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// handleExportError 統一處理匯出模組業務錯誤
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportUnknownEntity):
		response.BadRequest(c, 20001, "不支援的匯出項目")
	case errors.Is(err, service.ErrExportEmpty):
		response.NotFound(c, 20002, "沒有可匯出的資料")
	default:
		response.InternalError(c)
	}
}
