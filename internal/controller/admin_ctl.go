package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/api/dto"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/middleware"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/repository"
	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// AdminController 管理员会话与审计日志
type AdminController struct {
	authService  *service.AuthService
	auditService *service.AuditService
}

func NewAdminController(authService *service.AuthService, auditService *service.AuditService) *AdminController {
	return &AdminController{authService: authService, auditService: auditService}
}

// ==================== 会话 ====================

// Login 管理员登录
// @Summary 管理员登录
// @Description 邮箱与密码先做格式校验，再调用店铺后端登录，成功后创建本地会话
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录信息"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]interface{} "格式错误"
// @Failure 401 {object} map[string]interface{} "后端拒绝"
// @Router /api/admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	sess, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateAccessToken(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	respondMsg(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Session:     dto.NewSessionInfo(sess),
	})
}

// Logout 登出
// @Summary 登出并删除会话
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/logout [post]
func (ctrl *AdminController) Logout(c *gin.Context) {
	if err := ctrl.authService.Logout(c.Request.Context(), actor(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMsg(c, "Logged out", nil)
}

// Session 当前会话
// @Summary 当前会话信息
// @Tags Admin
// @Security BearerAuth
// @Success 200 {object} dto.SessionInfo
// @Failure 401 {object} map[string]interface{} "未登录或已过期"
// @Router /api/admin/session [get]
func (ctrl *AdminController) Session(c *gin.Context) {
	respondOK(c, dto.NewSessionInfo(middleware.GetSession(c)))
}

// ==================== 审计日志 ====================

// AuditLogs 审计日志列表
// @Summary 管理员操作记录
// @Tags Admin
// @Security BearerAuth
// @Param resource query string false "资源类型"
// @Param action query string false "操作"
// @Param email query string false "管理员邮箱"
// @Param status query string false "success / failed"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(50)
// @Success 200 {object} dto.AuditLogListResp
// @Router /api/admin/audit-logs [get]
func (ctrl *AdminController) AuditLogs(c *gin.Context) {
	var q dto.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "参数错误: "+err.Error())
		return
	}

	list, total, err := ctrl.auditService.List(c.Request.Context(), repository.AuditLogFilter{
		Resource: q.Resource,
		Action:   q.Action,
		Email:    q.Email,
		Status:   q.Status,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, dto.AuditLogListResp{
		Total:    total,
		List:     list,
		Page:     q.Page,
		PageSize: q.PageSize,
	})
}

// AuditStats 按资源统计
// @Summary 最近 N 天的操作统计
// @Tags Admin
// @Security BearerAuth
// @Param days query int false "统计天数" default(7)
// @Success 200 {array} repository.AuditStats
// @Router /api/admin/audit-logs/stats [get]
func (ctrl *AdminController) AuditStats(c *gin.Context) {
	days := 7
	if v, ok := c.GetQuery("days"); ok {
		n, err := parsePositiveInt(v)
		if err != nil {
			badRequest(c, "days 必须是正整数")
			return
		}
		days = n
	}

	stats, err := ctrl.auditService.Stats(c.Request.Context(), time.Now().AddDate(0, 0, -days))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}
