package controllers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bukukula_go/middleware"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 封面上传限制
const maxCoverSize = 10 * 1024 * 1024 // 10MB

// allowedCoverFormats 允许的封面格式
var allowedCoverFormats = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageController 临时封面控制器
// 封面只驻留内存：被新封面取代、会话注销或过期时释放
type ImageController struct{}

// NewImageController 创建封面控制器实例
func NewImageController() *ImageController {
	return &ImageController{}
}

// UploadCover 上传封面（仅管理员，创建表单用）
func (ic *ImageController) UploadCover(c *gin.Context) {
	file, err := c.FormFile("cover")
	if err != nil {
		utils.Error(c, utils.CodeValidationError, "File cover tidak ditemukan")
		return
	}

	// 验证文件大小
	if file.Size > maxCoverSize {
		utils.Error(c, utils.CodeValidationError, "Ukuran file maksimal 10MB")
		return
	}

	// 验证文件格式
	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, allowed := allowedCoverFormats[ext]
	if !allowed {
		utils.Error(c, utils.CodeValidationError, fmt.Sprintf("Format %s tidak didukung", ext))
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.InternalError(c, "")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		utils.InternalError(c, "")
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	img := store.Images.Put(sessionID, contentType, data)

	middleware.DebugLogger("cover uploaded",
		zap.String("image_id", img.ID),
		zap.String("session_id", sessionID),
		zap.Int("size", len(data)),
	)

	utils.Success(c, gin.H{
		"image_id": img.ID,
		"url":      "/api/images/" + img.ID,
	})
}

// ServeCover 输出封面内容
// URL 由 UploadCover 返回，供 <img> 直接引用
func (ic *ImageController) ServeCover(c *gin.Context) {
	img, ok := store.Images.Get(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Gambar tidak ditemukan")
		return
	}
	c.Data(200, img.ContentType, img.Data)
}

// ReleaseCover 主动释放封面（表单取消或卸载时调用）
func (ic *ImageController) ReleaseCover(c *gin.Context) {
	id := c.Param("id")
	sessionID := middleware.CurrentSessionID(c)

	// 只允许释放本会话上传的封面
	if img, ok := store.Images.Get(id); ok && img.SessionID == sessionID {
		store.Images.Release(id)
	}
	utils.Success(c, nil)
}
