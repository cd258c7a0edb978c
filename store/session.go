package store

import (
	"log"
	"sync"
	"time"

	"bukukula_go/models"
)

// 排序方式
const (
	SortDefault = "default"
	SortAsc     = "asc"
	SortDesc    = "desc"
)

// 展示模式（纯展示层参数，不影响数据）
const (
	ViewGrid    = "grid"
	ViewList    = "list"
	ViewMinimal = "minimal"
)

// CategoryAll 合成的全部分类选项
const CategoryAll = "Semua"

// Preferences 每个会话的筛选/排序/展示参数
// 不做任何持久化，随会话销毁
type Preferences struct {
	ActiveCategory string `json:"active_category"`
	SortOrder      string `json:"sort_order"`
	ViewMode       string `json:"view_mode"`
}

// DefaultPreferences 登录后的初始参数
func DefaultPreferences() Preferences {
	return Preferences{
		ActiveCategory: CategoryAll,
		SortOrder:      SortDefault,
		ViewMode:       ViewGrid,
	}
}

// Session 服务端会话
// 持有身份、心愿单和各浮层的打开状态
type Session struct {
	ID             string      `json:"id"`
	User           models.User `json:"user"`
	Wishlist       []int64     `json:"wishlist"`
	Prefs          Preferences `json:"preferences"`
	SelectedBookID int64       `json:"selected_book_id"` // 详情面板打开的书籍，0 表示关闭
	WishlistOpen   bool        `json:"wishlist_open"`
	AddFormOpen    bool        `json:"add_form_open"`
	CreatedAt      time.Time   `json:"created_at"`
}

// SessionStore 会话仓库
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// Sessions 全局会话仓库实例
var Sessions *SessionStore

// InitSessions 初始化会话仓库
func InitSessions() error {
	Sessions = NewSessionStore()
	log.Println("✅ Session store initialized")
	return nil
}

// NewSessionStore 创建会话仓库
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create 登录成功后创建会话
func (ss *SessionStore) Create(user models.User) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session := &Session{
		ID:        models.GenerateSessionID(),
		User:      user,
		Wishlist:  make([]int64, 0),
		Prefs:     DefaultPreferences(),
		CreatedAt: time.Now(),
	}
	ss.sessions[session.ID] = session
	return session
}

// Get 按ID查找会话，返回快照副本
func (ss *SessionStore) Get(id string) (Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	session, ok := ss.sessions[id]
	if !ok {
		return Session{}, false
	}
	return ss.snapshotLocked(session), true
}

// Delete 注销时销毁会话
// 心愿单随之清空，所有浮层随之关闭
func (ss *SessionStore) Delete(id string) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if _, ok := ss.sessions[id]; !ok {
		return false
	}
	delete(ss.sessions, id)
	return true
}

// Count 当前会话数量
func (ss *SessionStore) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

// ToggleWishlist 心愿单开关：存在则移除，不存在则加入
// 只按ID操作，书籍已不在目录中也安全
// 返回切换后的收藏状态
func (ss *SessionStore) ToggleWishlist(sessionID string, bookID int64) (bool, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session, ok := ss.sessions[sessionID]
	if !ok {
		return false, false
	}

	for i, id := range session.Wishlist {
		if id == bookID {
			session.Wishlist = append(session.Wishlist[:i], session.Wishlist[i+1:]...)
			return false, true
		}
	}
	session.Wishlist = append(session.Wishlist, bookID)
	return true, true
}

// RemoveWishlist 无条件移除，ID 不存在时为空操作
func (ss *SessionStore) RemoveWishlist(sessionID string, bookID int64) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session, ok := ss.sessions[sessionID]
	if !ok {
		return false
	}

	for i, id := range session.Wishlist {
		if id == bookID {
			session.Wishlist = append(session.Wishlist[:i], session.Wishlist[i+1:]...)
			return true
		}
	}
	return false
}

// HasWishlist 查询收藏状态
func (ss *SessionStore) HasWishlist(sessionID string, bookID int64) bool {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	session, ok := ss.sessions[sessionID]
	if !ok {
		return false
	}
	for _, id := range session.Wishlist {
		if id == bookID {
			return true
		}
	}
	return false
}

// WishlistIDs 返回心愿单ID列表副本（保持加入顺序）
func (ss *SessionStore) WishlistIDs(sessionID string) []int64 {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	session, ok := ss.sessions[sessionID]
	if !ok {
		return nil
	}
	result := make([]int64, len(session.Wishlist))
	copy(result, session.Wishlist)
	return result
}

// UpdatePrefs 更新筛选/排序/展示参数
func (ss *SessionStore) UpdatePrefs(sessionID string, prefs Preferences) (Preferences, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	session, ok := ss.sessions[sessionID]
	if !ok {
		return Preferences{}, false
	}
	session.Prefs = prefs
	return session.Prefs, true
}

// SetSelectedBook 记录详情面板打开的书籍，0 表示关闭面板
func (ss *SessionStore) SetSelectedBook(sessionID string, bookID int64) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if session, ok := ss.sessions[sessionID]; ok {
		session.SelectedBookID = bookID
	}
}

// SetWishlistOpen 更新心愿单抽屉的打开状态
func (ss *SessionStore) SetWishlistOpen(sessionID string, open bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if session, ok := ss.sessions[sessionID]; ok {
		session.WishlistOpen = open
	}
}

// SetAddFormOpen 更新新增表单的打开状态
func (ss *SessionStore) SetAddFormOpen(sessionID string, open bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if session, ok := ss.sessions[sessionID]; ok {
		session.AddFormOpen = open
	}
}

// CascadeRemoveBook 书籍被删除后的级联清理
// 从所有会话的心愿单移除，正打开该书详情的面板一并关闭
func (ss *SessionStore) CascadeRemoveBook(bookID int64) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	for _, session := range ss.sessions {
		for i, id := range session.Wishlist {
			if id == bookID {
				session.Wishlist = append(session.Wishlist[:i], session.Wishlist[i+1:]...)
				break
			}
		}
		if session.SelectedBookID == bookID {
			session.SelectedBookID = 0
		}
	}
}

// snapshotLocked 复制会话，避免调用方拿到内部指针
func (ss *SessionStore) snapshotLocked(session *Session) Session {
	snapshot := *session
	snapshot.Wishlist = make([]int64, len(session.Wishlist))
	copy(snapshot.Wishlist, session.Wishlist)
	return snapshot
}
