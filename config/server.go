package config

import (
	"fmt"
	"log"
	"time"

	"bukukula_go/store"

	"github.com/gin-gonic/gin"
)

// serverStartTime 进程启动时间，用于健康检查的 uptime
var serverStartTime = time.Now()

// ServerConfig 服务器配置结构
type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

// GetServerConfig 获取服务器配置
func GetServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:         GetEnv("SERVER_PORT", "8080"),
		Mode:         GetEnv("GIN_MODE", "debug"),
		ReadTimeout:  30,
		WriteTimeout: 30,
	}
}

// SetupRouter 设置路由
func SetupRouter() *gin.Engine {
	serverConfig := GetServerConfig()

	// 根据环境设置Gin模式
	gin.SetMode(serverConfig.Mode)

	// 创建Gin实例
	r := gin.New()

	// 恢复panic
	r.Use(gin.Recovery())

	// 健康检查端点（报告内存状态，没有任何外部依赖可探测）
	r.GET("/health", func(c *gin.Context) {
		health := gin.H{
			"status":         "ok",
			"message":        "Server is running",
			"uptime_seconds": int64(time.Since(serverStartTime).Seconds()),
		}

		if store.Catalog != nil {
			health["catalog_books"] = store.Catalog.Count()
		} else {
			health["catalog_books"] = "not initialized"
		}

		if store.Sessions != nil {
			health["active_sessions"] = store.Sessions.Count()
		} else {
			health["active_sessions"] = "not initialized"
		}

		if store.Images != nil {
			health["transient_images"] = store.Images.Count()
		}

		c.JSON(200, health)
	})

	return r
}

// StartServer 启动服务器
func StartServer(r *gin.Engine) error {
	serverConfig := GetServerConfig()

	addr := fmt.Sprintf(":%s", serverConfig.Port)
	log.Printf("🚀 Server starting on port %s in %s mode", serverConfig.Port, serverConfig.Mode)
	log.Printf("📚 API root: http://localhost%s/api", addr)
	log.Printf("❤️  Health check: http://localhost%s/health", addr)

	if err := r.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
