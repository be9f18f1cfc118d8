package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jrsamyy/sami-work-v2/internal/dto"
	"github.com/jrsamyy/sami-work-v2/internal/service"
	"github.com/jrsamyy/sami-work-v2/pkg/response"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// parseIDParam 解析路径中的记录 ID
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "记录ID无效")
		return 0, false
	}
	return uint(id), true
}

// CreateLeave 提交请假记录
// POST /api/v1/leaves
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	leave, err := h.leaveSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}

	response.Created(c, leave)
}

// ListLeaves 获取当前用户的请假记录列表
// GET /api/v1/leaves
func (h *LeaveHandler) ListLeaves(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	leaves, err := h.leaveSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": leaves})
}

// DeleteLeave 删除请假记录
// DELETE /api/v1/leaves/:id
func (h *LeaveHandler) DeleteLeave(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.leaveSvc.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleLeaveError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *LeaveHandler) handleLeaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecordNotFound):
		response.NotFound(c, 12001, "记录不存在")
	case errors.Is(err, service.ErrInvalidLeaveType):
		response.BadRequest(c, 12002, "无效的请假类别")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 12003, "日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidDateRange):
		response.BadRequest(c, 12004, "结束日期不能早于开始日期")
	default:
		response.InternalError(c)
	}
}
