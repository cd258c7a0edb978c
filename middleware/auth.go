package middleware

import (
	"strings"

	"bukukula_go/config"
	"bukukula_go/models"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 访问门禁
// 未登录时整个目录不可访问，登录表单是唯一可达的界面
// token 有效但服务端会话已销毁（已注销）同样拒绝
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Silakan masuk terlebih dahulu")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.Unauthorized(c, "Format token tidak valid")
			c.Abort()
			return
		}

		claims, err := config.GetJWTService().ValidateToken(tokenString)
		if err != nil {
			utils.Unauthorized(c, "Sesi tidak valid, silakan masuk kembali")
			c.Abort()
			return
		}

		// 注销后会话即被销毁，不需要黑名单
		session, ok := store.Sessions.Get(claims.SessionID)
		if !ok {
			utils.Unauthorized(c, "Sesi telah berakhir, silakan masuk kembali")
			c.Abort()
			return
		}

		c.Set("session_id", session.ID)
		c.Set("user_email", session.User.Email)
		c.Set("user_name", session.User.Name)
		c.Set("user_role", session.User.Role)
		c.Next()
	}
}

// AdminMiddleware 管理员门禁，必须在 AuthMiddleware 之后使用
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != models.RoleAdmin {
			utils.Forbidden(c, "Hanya admin yang dapat melakukan aksi ini")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSessionID 从上下文取当前会话ID
func CurrentSessionID(c *gin.Context) string {
	return c.GetString("session_id")
}

// IsAdmin 当前请求是否来自管理员会话
func IsAdmin(c *gin.Context) bool {
	return c.GetString("user_role") == models.RoleAdmin
}
