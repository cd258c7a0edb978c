package controllers

import (
	"strconv"

	"bukukula_go/middleware"
	"bukukula_go/services"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
)

// WishlistController 心愿单控制器
type WishlistController struct {
	wishlistService *services.WishlistService
}

// NewWishlistController 创建心愿单控制器实例
func NewWishlistController() *WishlistController {
	return &WishlistController{
		wishlistService: services.NewWishlistService(),
	}
}

// GetWishlist 心愿单抽屉内容
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	sessionID := middleware.CurrentSessionID(c)
	books := wc.wishlistService.List(sessionID)

	views := make([]gin.H, len(books))
	for i, book := range books {
		views[i] = gin.H{
			"id":              book.ID,
			"title":           book.Title,
			"author":          book.Author,
			"category":        book.Category,
			"image":           book.Image,
			"price":           book.Price,
			"price_formatted": utils.FormatRupiah(book.Price),
			"rating":          book.Rating,
		}
	}

	utils.Success(c, gin.H{
		"books": views,
		"total": len(views),
	})
}

// ToggleRequest 收藏开关请求
type ToggleRequest struct {
	BookID int64 `json:"book_id" binding:"required"`
}

// ToggleWishlist 收藏开关
// 重复调用在收藏/未收藏之间往返，两次回到原状态
func (wc *WishlistController) ToggleWishlist(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	saved, ok := wc.wishlistService.Toggle(sessionID, req.BookID)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	message := "Dihapus dari Wishlist"
	if saved {
		message = "Disimpan di Wishlist"
	}
	utils.SuccessWithMessage(c, message, gin.H{
		"book_id": req.BookID,
		"saved":   saved,
	})
}

// RemoveFromWishlist 从心愿单移除，不存在时为空操作
func (wc *WishlistController) RemoveFromWishlist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, utils.CodeValidationError, "ID buku tidak valid")
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	wc.wishlistService.Remove(sessionID, id)
	utils.Success(c, gin.H{"book_id": id, "saved": false})
}

// OpenWishlist 打开/关闭心愿单抽屉
func (wc *WishlistController) OpenWishlist(c *gin.Context) {
	sessionID := middleware.CurrentSessionID(c)
	open := c.Query("open") != "false"
	store.Sessions.SetWishlistOpen(sessionID, open)
	utils.Success(c, gin.H{"wishlist_open": open})
}
