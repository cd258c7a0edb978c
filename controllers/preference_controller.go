package controllers

import (
	"bukukula_go/middleware"
	"bukukula_go/services"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
)

// PreferenceController 筛选/排序/展示参数控制器
// 参数随会话存在，不做任何持久化
type PreferenceController struct {
	bookService *services.BookService
}

// NewPreferenceController 创建参数控制器实例
func NewPreferenceController() *PreferenceController {
	return &PreferenceController{
		bookService: services.NewBookService(),
	}
}

// GetPreferences 当前会话的界面状态
func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	session, ok := store.Sessions.Get(middleware.CurrentSessionID(c))
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	utils.Success(c, gin.H{
		"preferences":      session.Prefs,
		"selected_book_id": session.SelectedBookID,
		"wishlist_open":    session.WishlistOpen,
		"add_form_open":    session.AddFormOpen,
	})
}

// UpdatePreferencesRequest 参数更新请求
// 指针字段区分 "未提交" 和 "显式设置"
type UpdatePreferencesRequest struct {
	ActiveCategory *string `json:"active_category"`
	SortOrder      *string `json:"sort_order" binding:"omitempty,sort_order"`
	ViewMode       *string `json:"view_mode" binding:"omitempty,view_mode"`
	SelectedBookID *int64  `json:"selected_book_id"` // 0 表示关闭详情面板
	WishlistOpen   *bool   `json:"wishlist_open"`
	AddFormOpen    *bool   `json:"add_form_open"`
}

// UpdatePreferences 更新筛选/排序/展示参数和浮层状态
func (pc *PreferenceController) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	session, ok := store.Sessions.Get(sessionID)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	prefs := session.Prefs
	if req.ActiveCategory != nil {
		prefs.ActiveCategory = *req.ActiveCategory
	}
	if req.SortOrder != nil {
		prefs.SortOrder = *req.SortOrder
	}
	if req.ViewMode != nil {
		prefs.ViewMode = *req.ViewMode
	}

	// 分类必须是 "Semua" 或目录中真实存在的分类
	if !containsString(pc.bookService.Categories(), prefs.ActiveCategory) {
		prefs.ActiveCategory = store.CategoryAll
	}

	store.Sessions.UpdatePrefs(sessionID, prefs)

	if req.SelectedBookID != nil {
		store.Sessions.SetSelectedBook(sessionID, *req.SelectedBookID)
	}
	if req.WishlistOpen != nil {
		store.Sessions.SetWishlistOpen(sessionID, *req.WishlistOpen)
	}
	if req.AddFormOpen != nil {
		store.Sessions.SetAddFormOpen(sessionID, *req.AddFormOpen)
	}

	updated, _ := store.Sessions.Get(sessionID)
	utils.Success(c, gin.H{
		"preferences":      updated.Prefs,
		"selected_book_id": updated.SelectedBookID,
		"wishlist_open":    updated.WishlistOpen,
		"add_form_open":    updated.AddFormOpen,
	})
}
