package services

import (
	"sort"

	"bukukula_go/models"
	"bukukula_go/store"
	"bukukula_go/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// recommendationLimit "Rekomendasi Minggu Ini" 最多展示的数量
const recommendationLimit = 4

// BookService 书籍服务
// 目录的派生视图（筛选 + 排序）在这里计算，不修改目录本身
type BookService struct {
	collator  *collate.Collator
	validator *utils.Validator
}

// NewBookService 创建书籍服务实例
func NewBookService() *BookService {
	return &BookService{
		// 书名排序使用印尼语排序规则
		collator:  collate.New(language.Indonesian),
		validator: utils.NewValidator(),
	}
}

// ==================== 派生视图 ====================

// CatalogView 按分类和排序参数派生目录视图
// 纯函数式计算：任何合法参数组合都不会出错，空结果也是合法状态
func (bs *BookService) CatalogView(category, sortOrder string) []models.Book {
	result := store.Catalog.List()

	// 按分类过滤，"Semua" 直接放行
	if category != "" && category != store.CategoryAll {
		filtered := make([]models.Book, 0, len(result))
		for _, book := range result {
			if book.Category == category {
				filtered = append(filtered, book)
			}
		}
		result = filtered
	}

	// 按书名排序，默认保持存储顺序
	switch sortOrder {
	case store.SortAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return bs.collator.CompareString(result[i].Title, result[j].Title) < 0
		})
	case store.SortDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return bs.collator.CompareString(result[i].Title, result[j].Title) > 0
		})
	}

	return result
}

// Categories 从当前目录快照合成分类列表
// "Semua" 永远排在第一位，其余按目录中首次出现的顺序
func (bs *BookService) Categories() []string {
	categories := []string{store.CategoryAll}
	seen := make(map[string]bool)

	for _, book := range store.Catalog.List() {
		if book.Category == "" || seen[book.Category] {
			continue
		}
		seen[book.Category] = true
		categories = append(categories, book.Category)
	}
	return categories
}

// Recommendations 每周推荐池：管理员标记为热门的书，最多取4本
func (bs *BookService) Recommendations() []models.Book {
	result := make([]models.Book, 0, recommendationLimit)
	for _, book := range store.Catalog.List() {
		if !book.IsPopular {
			continue
		}
		result = append(result, book)
		if len(result) == recommendationLimit {
			break
		}
	}
	return result
}

// ==================== CRUD操作 ====================

// CreateBookRequest 创建书籍请求
type CreateBookRequest struct {
	Title       string                `json:"title" binding:"required,max=200"`
	Author      string                `json:"author" binding:"required,max=100"`
	Category    string                `json:"category" binding:"required,max=50"`
	Price       *int64                `json:"price" binding:"required,gte=0"`
	Description string                `json:"description" binding:"required"`
	Rating      *float64              `json:"rating" binding:"omitempty"`
	IsPopular   bool                  `json:"is_popular"`
	Image       string                `json:"image" binding:"omitempty,url"`
	Links       models.AffiliateLinks `json:"affiliate_links"`
}

// UpdateBookRequest 更新书籍请求
// 编辑面板保存时提交完整快照，评论数不可编辑
type UpdateBookRequest struct {
	Title       string                `json:"title" binding:"required,max=200"`
	Author      string                `json:"author" binding:"required,max=100"`
	Category    string                `json:"category" binding:"required,max=50"`
	Price       *int64                `json:"price" binding:"required,gte=0"`
	Description string                `json:"description" binding:"required"`
	Rating      float64               `json:"rating" binding:"gte=0,lte=5"`
	IsPopular   bool                  `json:"is_popular"`
	Image       string                `json:"image" binding:"omitempty,url"`
	Links       models.AffiliateLinks `json:"affiliate_links"`
}

// Create 创建书籍并插入目录最前面
func (bs *BookService) Create(req *CreateBookRequest) (models.Book, error) {
	if err := bs.validator.Validate(req); err != nil {
		return models.Book{}, err
	}

	// 初始评分留空或不合法时默认4.5
	rating := 4.5
	if req.Rating != nil && *req.Rating >= 0 && *req.Rating <= 5 {
		rating = *req.Rating
	}

	// 没有选择封面时使用固定的默认图片
	image := req.Image
	if image == "" {
		image = models.FallbackImage
	}

	book := models.Book{
		ID:             models.GenerateBookID(),
		Title:          req.Title,
		Author:         req.Author,
		Category:       req.Category,
		Price:          *req.Price,
		Description:    req.Description,
		Image:          image,
		Rating:         rating,
		ReviewCount:    0, // 新书永远从零条评论开始
		IsPopular:      req.IsPopular,
		AffiliateLinks: req.Links,
	}

	return store.Catalog.Add(book), nil
}

// Update 用编辑快照替换记录
// ID 不存在时返回 false，调用方按静默跳过处理
func (bs *BookService) Update(id int64, req *UpdateBookRequest) (models.Book, bool, error) {
	if err := bs.validator.Validate(req); err != nil {
		return models.Book{}, false, err
	}

	current, ok := store.Catalog.Get(id)
	if !ok {
		return models.Book{}, false, nil
	}

	book := models.Book{
		ID:             id,
		Title:          req.Title,
		Author:         req.Author,
		Category:       req.Category,
		Price:          *req.Price,
		Description:    req.Description,
		Image:          req.Image,
		Rating:         req.Rating,
		ReviewCount:    current.ReviewCount,
		IsPopular:      req.IsPopular,
		AffiliateLinks: req.Links,
	}
	if book.Image == "" {
		book.Image = current.Image
	}

	saved, ok := store.Catalog.Update(id, book)
	return saved, ok, nil
}

// Delete 删除书籍并级联清理
// 所有会话的心愿单条目被移除，打开该书详情的面板被关闭
func (bs *BookService) Delete(id int64) bool {
	if !store.Catalog.Remove(id) {
		return false
	}
	store.Sessions.CascadeRemoveBook(id)
	return true
}

// Rate 提交一次1-5星的用户评分
// 没有按用户去重：每次点击就是一次被接受的评分事件
func (bs *BookService) Rate(id int64, stars int) (models.Book, bool) {
	if stars < 1 || stars > 5 {
		return models.Book{}, false
	}
	return store.Catalog.Rate(id, stars)
}
