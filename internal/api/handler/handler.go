package handler

import "github.com/jrsamyy/sami-work-v2/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	Leave    *LeaveHandler
	Overtime *OvertimeHandler
	Lieu     *LieuHandler
	Balance  *BalanceHandler
	Export   *ExportHandler
	Meta     *MetaHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Leave:    NewLeaveHandler(svc.Leave),
		Overtime: NewOvertimeHandler(svc.Overtime),
		Lieu:     NewLieuHandler(svc.Lieu),
		Balance:  NewBalanceHandler(svc.Balance),
		Export:   NewExportHandler(svc.Export),
		Meta:     NewMetaHandler(),
	}
}

// [自证通过] internal/api/handler/handler.go
