package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/jrsamyy/sami-work-v2/internal/service"
	"github.com/jrsamyy/sami-work-v2/pkg/i18n"
	"github.com/jrsamyy/sami-work-v2/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRecords 导出全部记录为 xlsx
// GET /api/v1/export/records?locale=en
func (h *ExportHandler) ExportRecords(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	locale := i18n.Normalize(c.Query("locale"))

	buf, filename, err := h.exportSvc.ExportRecords(c.Request.Context(), userID, locale)
	if err != nil {
		response.InternalError(c)
		return
	}

	writeDownload(c, contentTypeXLSX, filename, buf.Bytes())
}

// ExportCalendar 导出请假记录为 iCalendar
// GET /api/v1/export/calendar
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	writeDownload(c, contentTypeICS, filename, buf.Bytes())
}

// writeDownload 设置文件下载响应头并写出内容
func writeDownload(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
