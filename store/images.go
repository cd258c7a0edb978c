package store

import (
	"log"
	"sync"
	"time"

	"bukukula_go/models"
)

// CoverImage 临时封面图片
// 创建书籍时可选上传，内容只驻留内存，不落盘
type CoverImage struct {
	ID          string
	SessionID   string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// ImageStore 临时图片仓库
// 同一会话再次上传会释放上一张，过期图片由后台清理
type ImageStore struct {
	mu     sync.Mutex
	images map[string]*CoverImage
	ttl    time.Duration
	stop   chan struct{}
}

// Images 全局图片仓库实例
var Images *ImageStore

// InitImages 初始化图片仓库并启动清理协程
func InitImages() error {
	Images = NewImageStore(30 * time.Minute)
	Images.StartSweeper(5 * time.Minute)
	log.Println("✅ Transient image store initialized")
	return nil
}

// NewImageStore 创建图片仓库
func NewImageStore(ttl time.Duration) *ImageStore {
	return &ImageStore{
		images: make(map[string]*CoverImage),
		ttl:    ttl,
		stop:   make(chan struct{}),
	}
}

// Put 存入一张封面，返回可访问的图片记录
// 同一会话的旧封面被新封面取代时立即释放
func (is *ImageStore) Put(sessionID, contentType string, data []byte) *CoverImage {
	is.mu.Lock()
	defer is.mu.Unlock()

	for id, img := range is.images {
		if img.SessionID == sessionID {
			delete(is.images, id)
		}
	}

	img := &CoverImage{
		ID:          models.GenerateImageID(),
		SessionID:   sessionID,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	is.images[img.ID] = img
	return img
}

// Get 按ID读取封面
func (is *ImageStore) Get(id string) (*CoverImage, bool) {
	is.mu.Lock()
	defer is.mu.Unlock()

	img, ok := is.images[id]
	return img, ok
}

// Release 主动释放一张封面，不存在时为空操作
func (is *ImageStore) Release(id string) {
	is.mu.Lock()
	defer is.mu.Unlock()
	delete(is.images, id)
}

// ReleaseSession 会话销毁时释放其全部封面
func (is *ImageStore) ReleaseSession(sessionID string) {
	is.mu.Lock()
	defer is.mu.Unlock()

	for id, img := range is.images {
		if img.SessionID == sessionID {
			delete(is.images, id)
		}
	}
}

// Count 当前驻留的图片数量
func (is *ImageStore) Count() int {
	is.mu.Lock()
	defer is.mu.Unlock()
	return len(is.images)
}

// StartSweeper 启动过期清理协程
func (is *ImageStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				is.sweep()
			case <-is.stop:
				return
			}
		}
	}()
}

// StopSweeper 停止清理协程
func (is *ImageStore) StopSweeper() {
	close(is.stop)
}

func (is *ImageStore) sweep() {
	is.mu.Lock()
	defer is.mu.Unlock()

	now := time.Now()
	for id, img := range is.images {
		if now.Sub(img.CreatedAt) > is.ttl {
			delete(is.images, id)
		}
	}
}
