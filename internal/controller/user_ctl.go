package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Sumeet011/Phone-Wraps-Admin-Pannel/internal/service"
)

// UserController 用户报表 (只读)
type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Report 用户报表
// @Summary 用户列表及汇总 (总数、已验证、订单数、营收)
// @Tags User
// @Security BearerAuth
// @Param q query string false "用户名 / 邮箱 / 手机号"
// @Success 200 {object} service.UserReport
// @Router /api/users [get]
func (ctrl *UserController) Report(c *gin.Context) {
	report, err := ctrl.userService.Report(c.Request.Context(), actor(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}
