package services

import (
	"errors"
	"fmt"
	"strings"

	"bukukula_go/config"
	"bukukula_go/models"
	"bukukula_go/store"

	"golang.org/x/crypto/bcrypt"
)

// 登录失败的固定提示
var (
	// ErrWrongAdminPassword 管理员邮箱 + 错误密码
	// 绝不能落入普通用户注册分支
	ErrWrongAdminPassword = errors.New("Password salah untuk akun Admin.")
	// ErrWeakPassword 普通用户密码不足6位
	ErrWeakPassword = errors.New("Password minimal 6 karakter.")
)

// adminDisplayName 管理员登录后的显示名
const adminDisplayName = "Admin Bukukula"

// defaultAdminEmails 固定的管理员邮箱白名单
// 占位安全模型：不是真正的认证，换成真实凭证校验时只需改动本服务
var defaultAdminEmails = []string{
	"mutiarojabifiyani20@guru.smp.belajar.id",
	"mutiasaqueena@gmail.com",
	"mutiabackup317@gmail.com",
}

// AuthService 认证服务
// 登录是无状态的身份声明：白名单邮箱 + 共享密钥 = admin，
// 其余合法邮箱 + 足够长的密码 = user，没有账户存储
type AuthService struct {
	jwtService      *config.JWTService
	adminEmails     map[string]bool
	adminSecretHash []byte
}

// NewAuthService 创建认证服务实例
func NewAuthService() *AuthService {
	emails := config.GetEnvList("ADMIN_EMAILS", defaultAdminEmails)
	adminEmails := make(map[string]bool, len(emails))
	for _, email := range emails {
		adminEmails[strings.ToLower(email)] = true
	}

	// 共享密钥只保留bcrypt散列，比较时逐次校验
	secret := config.GetEnv("ADMIN_PASSWORD", "Rojabi98")
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		// DefaultCost 下只有密钥超长才会失败
		panic(fmt.Sprintf("failed to hash admin secret: %v", err))
	}

	return &AuthService{
		jwtService:      config.GetJWTService(),
		adminEmails:     adminEmails,
		adminSecretHash: hash,
	}
}

// LoginRequest 登录/注册请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"omitempty,max=100"` // 注册时的显示名，可留空
}

// Login 处理一次登录提交
// 成功时创建服务端会话并签发 token
func (as *AuthService) Login(req *LoginRequest) (store.Session, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 1. 管理员分支：白名单邮箱必须配对共享密钥，错了直接拒绝
	if as.adminEmails[email] {
		if err := bcrypt.CompareHashAndPassword(as.adminSecretHash, []byte(req.Password)); err != nil {
			return store.Session{}, "", ErrWrongAdminPassword
		}
		return as.createSession(models.User{
			Email: email,
			Name:  adminDisplayName,
			Role:  models.RoleAdmin,
		})
	}

	// 2. 普通用户分支：只做本地形状检查，不是安全边界
	if len(req.Password) < 6 {
		return store.Session{}, "", ErrWeakPassword
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		// 显示名默认取邮箱 @ 前的部分
		name = strings.SplitN(email, "@", 2)[0]
	}

	return as.createSession(models.User{
		Email: email,
		Name:  name,
		Role:  models.RoleUser,
	})
}

// Logout 注销：销毁会话，心愿单清空，所有浮层关闭
// 临时封面一并释放
func (as *AuthService) Logout(sessionID string) bool {
	if store.Images != nil {
		store.Images.ReleaseSession(sessionID)
	}
	return store.Sessions.Delete(sessionID)
}

// createSession 创建会话并签发token
func (as *AuthService) createSession(user models.User) (store.Session, string, error) {
	session := store.Sessions.Create(user)

	token, err := as.jwtService.GenerateToken(session.ID, user.Email, user.Name, user.Role)
	if err != nil {
		store.Sessions.Delete(session.ID)
		return store.Session{}, "", fmt.Errorf("failed to generate token: %w", err)
	}

	snapshot, _ := store.Sessions.Get(session.ID)
	return snapshot, token, nil
}

// IsAdminEmail 邮箱是否在管理员白名单内
func (as *AuthService) IsAdminEmail(email string) bool {
	return as.adminEmails[strings.ToLower(strings.TrimSpace(email))]
}
