package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/service"
	"github.com/jrsamyy/sami-work-v2/pkg/response"
)

// LieuHandler 调休模块 HTTP 处理器
type LieuHandler struct {
	lieuSvc service.LieuService
}

// NewLieuHandler 创建 LieuHandler
func NewLieuHandler(lieuSvc service.LieuService) *LieuHandler {
	return &LieuHandler{lieuSvc: lieuSvc}
}

// CreateLieu 提交调休记录
// POST /api/v1/lieu
func (h *LieuHandler) CreateLieu(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLieuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.lieuSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleLieuError(c, err)
		return
	}

	response.Created(c, entry)
}

// ListLieu 获取当前用户的调休记录列表
// GET /api/v1/lieu
func (h *LieuHandler) ListLieu(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	entries, err := h.lieuSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": entries})
}

// SetLieuUsed 更新调休使用状态
// PATCH /api/v1/lieu/:id/used
func (h *LieuHandler) SetLieuUsed(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.SetUsedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	entry, err := h.lieuSvc.SetUsed(c.Request.Context(), userID, id, *req.IsUsed)
	if err != nil {
		h.handleLieuError(c, err)
		return
	}

	response.OK(c, entry)
}

// DeleteLieu 删除调休记录
// DELETE /api/v1/lieu/:id
func (h *LieuHandler) DeleteLieu(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.lieuSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleLieuError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *LieuHandler) handleLieuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 12001, "记录不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12003, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidDays):
		response.BadRequest(c, 12006, "调休天数必须 ≥0.5 且为 0.5 的倍数")
	default:
		response.InternalError(c)
	}
}
