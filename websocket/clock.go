package websocket

import (
	"log"
	"net/http"
	"sync"
	"time"

	"bukukula_go/middleware"
	"bukukula_go/models"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	// 升级器 - 将HTTP连接升级为WebSocket连接
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// 生产环境应该验证origin
			return true
		},
	}

	// 客户端连接管理
	clients      = make(map[string]*Client)
	clientsMutex sync.RWMutex
)

// Client 时钟推送客户端
type Client struct {
	ID         string
	Connection *websocket.Conn
}

// ClockMessage 页脚时钟推送消息
// 纯展示用途，对其他任何状态没有影响
type ClockMessage struct {
	Type      string `json:"type"` // 固定为 clock
	Time      string `json:"time"` // HH:MM:SS
	Date      string `json:"date"`
	Zone      string `json:"zone"` // WIB
	Timestamp int64  `json:"timestamp"`
}

// InitWebSocket 初始化WebSocket服务
func InitWebSocket() error {
	log.Println("✅ WebSocket clock service initialized")
	return nil
}

// ClientCount 当前连接数
func ClientCount() int {
	clientsMutex.RLock()
	defer clientsMutex.RUnlock()
	return len(clients)
}

// HandleClock 处理时钟推送连接
// 每个连接一个ticker，每秒推送一次雅加达时间，断开时取消
func HandleClock(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.ErrorLogger("failed to upgrade clock connection", zap.Error(err))
		return
	}

	client := &Client{
		ID:         models.GenerateSessionID(),
		Connection: conn,
	}

	clientsMutex.Lock()
	clients[client.ID] = client
	clientsMutex.Unlock()

	middleware.DebugLogger("clock client connected", zap.String("client_id", client.ID))

	// 读协程只负责感知对端关闭
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go client.tick(done)
}

// tick 每秒推送一次时间，连接断开或视图卸载时停止
func (cl *Client) tick(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer func() {
		ticker.Stop()
		cl.Connection.Close()

		clientsMutex.Lock()
		delete(clients, cl.ID)
		clientsMutex.Unlock()

		middleware.DebugLogger("clock client disconnected", zap.String("client_id", cl.ID))
	}()

	// 连接建立后立即推送一次，不等第一个tick
	if err := cl.push(time.Now()); err != nil {
		return
	}

	for {
		select {
		case now := <-ticker.C:
			if err := cl.push(now); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// push 推送一条时钟消息
func (cl *Client) push(now time.Time) error {
	cl.Connection.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return cl.Connection.WriteJSON(ClockMessage{
		Type:      "clock",
		Time:      utils.FormatClock(now),
		Date:      utils.FormatClockDate(now),
		Zone:      utils.ClockZone,
		Timestamp: now.Unix(),
	})
}
