package models

// 用户角色
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User 当前会话的身份信息
// 没有持久化的账户表，每次登录都是一次无状态的身份声明
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // admin 或 user
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
