package main

import (
	"log"
	"os"

	"bukukula_go/config"
	"bukukula_go/middleware"
	"bukukula_go/routes"
	"bukukula_go/store"
	"bukukula_go/websocket"

	"github.com/joho/godotenv"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 设置环境
	env := os.Getenv("GIN_MODE")
	if env == "" {
		os.Setenv("GIN_MODE", "debug")
	}

	// 初始化日志系统
	if err := middleware.InitLogger(env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer middleware.FlushLogger()

	// 初始化内存目录（加载种子书单）
	if err := store.InitCatalog(); err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}

	// 初始化会话仓库
	if err := store.InitSessions(); err != nil {
		log.Fatalf("Failed to initialize sessions: %v", err)
	}

	// 初始化临时封面仓库
	if err := store.InitImages(); err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}
	defer store.Images.StopSweeper()

	// 初始化WebSocket时钟
	if err := websocket.InitWebSocket(); err != nil {
		log.Fatalf("Failed to initialize WebSocket: %v", err)
	}

	// 设置路由
	r := config.SetupRouter()

	// 注册自定义路由
	routes.SetupRoutes(r)

	if err := config.StartServer(r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
