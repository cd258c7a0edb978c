package controllers

import (
	"errors"
	"strconv"

	"bukukula_go/middleware"
	"bukukula_go/models"
	"bukukula_go/services"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// deleteConfirmPrompt 删除前的确认提示
const deleteConfirmPrompt = "Apakah Anda yakin ingin menghapus buku ini dari katalog?"

// BookController 书籍控制器
type BookController struct {
	bookService     *services.BookService
	wishlistService *services.WishlistService
}

// NewBookController 创建书籍控制器实例
func NewBookController() *BookController {
	return &BookController{
		bookService:     services.NewBookService(),
		wishlistService: services.NewWishlistService(),
	}
}

// BookView 列表/详情用的展示结构
// 在原始记录之外附带格式化价格和收藏状态
type BookView struct {
	models.Book
	PriceFormatted string `json:"price_formatted"`
	IsSaved        bool   `json:"is_saved"`
}

// toBookView 组装展示结构
func (bc *BookController) toBookView(sessionID string, book models.Book) BookView {
	return BookView{
		Book:           book,
		PriceFormatted: utils.FormatRupiah(book.Price),
		IsSaved:        bc.wishlistService.Contains(sessionID, book.ID),
	}
}

// toBookViews 批量组装展示结构
func (bc *BookController) toBookViews(sessionID string, books []models.Book) []BookView {
	views := make([]BookView, len(books))
	for i, book := range books {
		views[i] = bc.toBookView(sessionID, book)
	}
	return views
}

// GetBooks 获取目录视图
// 带 category/sort 参数时同时写回会话的筛选状态
// 空结果不是错误：返回 empty 标记和重置入口提示
func (bc *BookController) GetBooks(c *gin.Context) {
	sessionID := middleware.CurrentSessionID(c)
	session, ok := store.Sessions.Get(sessionID)
	if !ok {
		utils.Unauthorized(c, "")
		return
	}

	prefs := session.Prefs
	if category, exists := c.GetQuery("category"); exists {
		prefs.ActiveCategory = category
	}
	if sortOrder, exists := c.GetQuery("sort"); exists {
		switch sortOrder {
		case store.SortDefault, store.SortAsc, store.SortDesc:
			prefs.SortOrder = sortOrder
		default:
			utils.Error(c, utils.CodeValidationError, "Parameter sort harus default, asc, atau desc")
			return
		}
	}

	categories := bc.bookService.Categories()

	// 活跃分类必须是 "Semua" 或目录中真实存在的分类
	// 分类随书籍删除消失时自动退回 "Semua"
	if !containsString(categories, prefs.ActiveCategory) {
		prefs.ActiveCategory = store.CategoryAll
	}

	store.Sessions.UpdatePrefs(sessionID, prefs)

	books := bc.bookService.CatalogView(prefs.ActiveCategory, prefs.SortOrder)

	utils.Success(c, gin.H{
		"books":           bc.toBookViews(sessionID, books),
		"categories":      categories,
		"active_category": prefs.ActiveCategory,
		"sort_order":      prefs.SortOrder,
		"view_mode":       prefs.ViewMode,
		"total":           len(books),
		"empty":           len(books) == 0,
	})
}

// GetHotBooks 每周推荐（管理员标记的热门书，最多4本）
func (bc *BookController) GetHotBooks(c *gin.Context) {
	sessionID := middleware.CurrentSessionID(c)
	utils.Success(c, gin.H{
		"books": bc.toBookViews(sessionID, bc.bookService.Recommendations()),
	})
}

// GetBook 获取书籍详情并打开详情面板
// 选中另一本书时旧的编辑缓冲直接作废，前端从返回的快照重建
func (bc *BookController) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, found := store.Catalog.Get(id)
	if !found {
		utils.NotFound(c, "Buku tidak ditemukan")
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	store.Sessions.SetSelectedBook(sessionID, book.ID)

	utils.Success(c, bc.toBookView(sessionID, book))
}

// CreateBook 创建书籍（仅管理员）
// 成功后新增表单关闭，临时封面的归属转移给目录
func (bc *BookController) CreateBook(c *gin.Context) {
	var req services.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	book, err := bc.bookService.Create(&req)
	if err != nil {
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.ValidationFailed(c, ve)
			return
		}
		middleware.ErrorLogger("create book failed", zap.Error(err))
		utils.InternalError(c, "")
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	store.Sessions.SetAddFormOpen(sessionID, false)

	middleware.InfoLogger("book created",
		zap.Int64("book_id", book.ID),
		zap.String("title", book.Title),
		zap.String("session_id", sessionID),
	)

	utils.SuccessWithMessage(c, "Review buku berhasil dipublikasikan", bc.toBookView(sessionID, book))
}

// UpdateBook 保存编辑快照（仅管理员）
// 返回保存结果，后续的编辑和评分在新快照上叠加
// ID 已不存在时静默跳过（无持久化存储，不可能与内存目录不一致）
func (bc *BookController) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req services.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	book, found, err := bc.bookService.Update(id, &req)
	if err != nil {
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			utils.ValidationFailed(c, ve)
			return
		}
		middleware.ErrorLogger("update book failed", zap.Int64("book_id", id), zap.Error(err))
		utils.InternalError(c, "")
		return
	}
	if !found {
		utils.SuccessWithMessage(c, "Buku sudah tidak ada di katalog", nil)
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	utils.SuccessWithMessage(c, "Perubahan berhasil disimpan", bc.toBookView(sessionID, book))
}

// DeleteBook 删除书籍（仅管理员）
// 必须带 confirm=true 才执行；未确认时只返回提示，不做任何修改
func (bc *BookController) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if c.Query("confirm") != "true" {
		// 取消确认是空操作，不是错误
		utils.SuccessWithMessage(c, deleteConfirmPrompt, gin.H{
			"requires_confirmation": true,
			"book_id":               id,
		})
		return
	}

	if !bc.bookService.Delete(id) {
		utils.SuccessWithMessage(c, "Buku sudah tidak ada di katalog", nil)
		return
	}

	middleware.InfoLogger("book deleted",
		zap.Int64("book_id", id),
		zap.String("session_id", middleware.CurrentSessionID(c)),
	)

	utils.SuccessWithMessage(c, "Buku berhasil dihapus dari katalog", gin.H{"deleted_id": id})
}

// RateRequest 评分提交
type RateRequest struct {
	Stars int `json:"stars" binding:"required,stars"`
}

// RateBook 提交一次用户评分
// 返回更新后的记录，详情面板据此立即刷新
func (bc *BookController) RateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationFailed(c, err)
		return
	}

	book, found := bc.bookService.Rate(id, req.Stars)
	if !found {
		// 内存目录之外不存在能产生这个ID的来源，静默跳过
		utils.SuccessWithMessage(c, "Buku sudah tidak ada di katalog", nil)
		return
	}

	sessionID := middleware.CurrentSessionID(c)
	utils.SuccessWithMessage(c, "Terima kasih atas rating Anda!", bc.toBookView(sessionID, book))
}

// parseBookID 解析路径中的书籍ID
func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, utils.CodeValidationError, "ID buku tidak valid")
		return 0, false
	}
	return id, true
}

// containsString 字符串是否在列表中
func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
