package store

import (
	"log"
	"sync"

	"bukukula_go/models"
)

// CatalogStore 内存书籍目录，进程生命周期内唯一的数据来源
// 按插入顺序保存，新创建的条目插在最前面
type CatalogStore struct {
	mu    sync.RWMutex
	books []models.Book
}

// Catalog 全局目录实例
var Catalog *CatalogStore

// InitCatalog 初始化目录并加载种子数据
func InitCatalog() error {
	Catalog = NewCatalogStore(models.SeedBooks())
	log.Printf("✅ Catalog store initialized with %d books", Catalog.Count())
	return nil
}

// NewCatalogStore 创建目录实例
func NewCatalogStore(seed []models.Book) *CatalogStore {
	books := make([]models.Book, len(seed))
	copy(books, seed)
	return &CatalogStore{books: books}
}

// List 返回全部书籍的副本（保持存储顺序）
func (cs *CatalogStore) List() []models.Book {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	result := make([]models.Book, len(cs.books))
	copy(result, cs.books)
	return result
}

// Get 按ID查找书籍
func (cs *CatalogStore) Get(id int64) (models.Book, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	for i := range cs.books {
		if cs.books[i].ID == id {
			return cs.books[i], true
		}
	}
	return models.Book{}, false
}

// Count 当前书籍数量
func (cs *CatalogStore) Count() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.books)
}

// Add 在最前面插入一本新书
// 调用方负责提供带有全新唯一ID的完整记录
func (cs *CatalogStore) Add(book models.Book) models.Book {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	// ID 冲突时向前递增，保证目录内唯一
	// 毫秒时间戳在同一毫秒内连续创建才会触发
	for cs.containsLocked(book.ID) {
		book.ID++
	}

	cs.books = append([]models.Book{book}, cs.books...)
	return book
}

// Update 用编辑后的完整快照替换记录，保留原ID
// ID 不存在时静默跳过
func (cs *CatalogStore) Update(id int64, book models.Book) (models.Book, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.books {
		if cs.books[i].ID == id {
			book.ID = id
			cs.books[i] = book
			return book, true
		}
	}
	return models.Book{}, false
}

// Remove 按ID删除书籍
// 心愿单的级联清理由会话仓库负责
func (cs *CatalogStore) Remove(id int64) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.books {
		if cs.books[i].ID == id {
			cs.books = append(cs.books[:i], cs.books[i+1:]...)
			return true
		}
	}
	return false
}

// Rate 提交一次用户评分（1-5星），按在线均值更新
// ID 不存在时静默跳过
func (cs *CatalogStore) Rate(id int64, stars int) (models.Book, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.books {
		if cs.books[i].ID == id {
			cs.books[i].ApplyRating(stars)
			return cs.books[i], true
		}
	}
	return models.Book{}, false
}

func (cs *CatalogStore) containsLocked(id int64) bool {
	for i := range cs.books {
		if cs.books[i].ID == id {
			return true
		}
	}
	return false
}
