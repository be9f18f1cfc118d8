package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/model"
	"github.com/jrsamyy/sami-work-v2/pkg/i18n"
	"github.com/jrsamyy/sami-work-v2/pkg/response"
)

// MetaHandler 元数据 HTTP 处理器
type MetaHandler struct{}

// NewMetaHandler 创建 MetaHandler
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// ListLeaveTypes 获取请假类别选项（按 locale 本地化标签）
// GET /api/v1/meta/leave-types?locale=ar
func (h *MetaHandler) ListLeaveTypes(c *gin.Context) {
	locale := i18n.Normalize(c.Query("locale"))

	types := model.LeaveTypes()
	options := make([]dto.LeaveTypeOption, 0, len(types))
	for _, t := range types {
		options = append(options, dto.LeaveTypeOption{
			Value: string(t),
			Label: i18n.LeaveTypeLabel(locale, t),
		})
	}

	response.OK(c, gin.H{"list": options})
}
