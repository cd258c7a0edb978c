package services

import (
	"bukukula_go/models"
	"bukukula_go/store"
)

// WishlistService 心愿单服务
// 心愿单只保存书籍ID，不持有书籍副本，展示时再回表解析
type WishlistService struct{}

// NewWishlistService 创建心愿单服务实例
func NewWishlistService() *WishlistService {
	return &WishlistService{}
}

// Toggle 收藏开关：已收藏则移除，未收藏则加入
// 两次调用回到原状态；书籍已不在目录也安全（只按ID操作）
func (ws *WishlistService) Toggle(sessionID string, bookID int64) (bool, bool) {
	return store.Sessions.ToggleWishlist(sessionID, bookID)
}

// Remove 无条件移除，不存在时为空操作
func (ws *WishlistService) Remove(sessionID string, bookID int64) bool {
	return store.Sessions.RemoveWishlist(sessionID, bookID)
}

// Contains 收藏状态查询，目录列表和详情面板共用
func (ws *WishlistService) Contains(sessionID string, bookID int64) bool {
	return store.Sessions.HasWishlist(sessionID, bookID)
}

// List 解析心愿单为书籍列表（保持加入顺序）
// 目录中已删除的ID直接跳过
func (ws *WishlistService) List(sessionID string) []models.Book {
	ids := store.Sessions.WishlistIDs(sessionID)
	result := make([]models.Book, 0, len(ids))
	for _, id := range ids {
		if book, ok := store.Catalog.Get(id); ok {
			result = append(result, book)
		}
	}
	return result
}
