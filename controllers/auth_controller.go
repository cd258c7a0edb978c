package controllers

import (
	"errors"

	"bukukula_go/middleware"
	"bukukula_go/services"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController 认证控制器
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController 创建认证控制器实例
func NewAuthController() *AuthController {
	return &AuthController{
		authService: services.NewAuthService(),
	}
}

// LoginResponse 登录成功响应
type LoginResponse struct {
	Token       string            `json:"token"`
	User        interface{}       `json:"user"`
	Preferences store.Preferences `json:"preferences"`
}

// Login 处理登录/注册提交
// 同一个入口：白名单邮箱走管理员校验，其余走普通用户逻辑
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	session, token, err := ac.authService.Login(&req)
	if err != nil {
		// 表单内联错误：邮箱保留，会话不创建
		if errors.Is(err, services.ErrWrongAdminPassword) || errors.Is(err, services.ErrWeakPassword) {
			utils.ErrorWithData(c, utils.CodeError, err.Error(), gin.H{"email": req.Email})
			return
		}
		middleware.ErrorLogger("login failed", zap.String("email", req.Email), zap.Error(err))
		utils.InternalError(c, "")
		return
	}

	middleware.InfoLogger("user logged in",
		zap.String("session_id", session.ID),
		zap.String("email", session.User.Email),
		zap.String("role", session.User.Role),
	)

	utils.SuccessWithMessage(c, "Selamat datang kembali", LoginResponse{
		Token:       token,
		User:        session.User,
		Preferences: session.Prefs,
	})
}

// Logout 注销当前会话
// 心愿单清空，所有浮层关闭，token 随会话销毁而失效
func (ac *AuthController) Logout(c *gin.Context) {
	sessionID := middleware.CurrentSessionID(c)
	if ac.authService.Logout(sessionID) {
		middleware.InfoLogger("user logged out", zap.String("session_id", sessionID))
	}
	utils.SuccessWithMessage(c, "Sampai jumpa lagi", nil)
}

// Me 返回当前会话状态
func (ac *AuthController) Me(c *gin.Context) {
	session, ok := store.Sessions.Get(middleware.CurrentSessionID(c))
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	utils.Success(c, gin.H{
		"user":             session.User,
		"preferences":      session.Prefs,
		"wishlist_count":   len(session.Wishlist),
		"selected_book_id": session.SelectedBookID,
		"wishlist_open":    session.WishlistOpen,
		"add_form_open":    session.AddFormOpen,
	})
}
