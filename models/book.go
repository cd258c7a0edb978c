package models

// AffiliateLinks 各电商平台的联盟购买链接
// 字段为空表示该平台没有售卖此书
type AffiliateLinks struct {
	Shopee    string `json:"shopee,omitempty" binding:"omitempty,affiliate_url"`
	Tokopedia string `json:"tokopedia,omitempty" binding:"omitempty,affiliate_url"`
	Lazada    string `json:"lazada,omitempty" binding:"omitempty,affiliate_url"`
	TikTok    string `json:"tiktok,omitempty" binding:"omitempty,affiliate_url"`
}

// Book 书籍模型（目录条目）
// ID 为创建时刻的毫秒时间戳，整个生命周期内保持不变
type Book struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Author         string         `json:"author"`
	Category       string         `json:"category"`
	Price          int64          `json:"price"` // 单位：印尼盾，无小数
	Description    string         `json:"description"`
	Image          string         `json:"image"`
	Rating         float64        `json:"rating"`       // 0 到 5
	ReviewCount    int64          `json:"review_count"` // 每接受一次用户评分累加 1
	IsPopular      bool           `json:"is_popular"`   // "Paling Banyak Dibaca" 标记，仅管理员设置
	AffiliateLinks AffiliateLinks `json:"affiliate_links"`
}

// FallbackImage 创建书籍时未选择封面使用的默认图片
const FallbackImage = "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&q=80&w=800"

// ApplyRating 按在线均值更新评分
// newRating = (oldRating*reviewCount + stars) / (reviewCount + 1)
func (b *Book) ApplyRating(stars int) {
	newCount := b.ReviewCount + 1
	b.Rating = (b.Rating*float64(b.ReviewCount) + float64(stars)) / float64(newCount)
	b.ReviewCount = newCount
}

// HasAffiliateLink 是否存在至少一个联盟链接
func (b *Book) HasAffiliateLink() bool {
	return b.AffiliateLinks.Shopee != "" ||
		b.AffiliateLinks.Tokopedia != "" ||
		b.AffiliateLinks.Lazada != "" ||
		b.AffiliateLinks.TikTok != ""
}
