package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerateSessionID 生成会话ID (UUID)
func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateImageID 生成临时封面图片ID (UUID)
func GenerateImageID() string {
	return uuid.New().String()
}

// GenerateBookID 生成书籍ID（创建时刻的毫秒时间戳）
func GenerateBookID() int64 {
	return time.Now().UnixMilli()
}
