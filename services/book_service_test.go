package services

import (
	"testing"

	"bukukula_go/models"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlesOf(books []models.Book) []string {
	titles := make([]string, len(books))
	for i, book := range books {
		titles[i] = book.Title
	}
	return titles
}

func TestCatalogViewAllCategories(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	view := bs.CatalogView(store.CategoryAll, store.SortDefault)
	assert.Len(t, view, 6)
	// 默认排序保持目录顺序
	assert.Equal(t, "Filosofi Teras", view[0].Title)
}

func TestCatalogViewFiltersByCategory(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	view := bs.CatalogView("Self Improvement", store.SortDefault)
	assert.Equal(t, []string{"Filosofi Teras", "Atomic Habits"}, titlesOf(view))
}

func TestCatalogViewEmptyResultIsValid(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	view := bs.CatalogView("Horor", store.SortDefault)
	assert.Empty(t, view)
}

func TestCatalogViewSortAscDescAreInverses(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	asc := titlesOf(bs.CatalogView(store.CategoryAll, store.SortAsc))
	desc := titlesOf(bs.CatalogView(store.CategoryAll, store.SortDesc))

	require.Len(t, asc, 6)
	require.Len(t, desc, 6)
	assert.Equal(t, "Atomic Habits", asc[0])
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestCatalogViewDoesNotMutateCatalog(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	bs.CatalogView(store.CategoryAll, store.SortAsc)

	books := store.Catalog.List()
	assert.Equal(t, "Filosofi Teras", books[0].Title)
	assert.Equal(t, "Rich Dad Poor Dad", books[5].Title)
}

func TestCategoriesPutSemuaFirst(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	categories := bs.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, store.CategoryAll, categories[0])
	// 其余按目录中首次出现的顺序去重
	assert.Equal(t, []string{"Semua", "Self Improvement", "Fiksi Sejarah", "Filsafat", "Sastra Klasik", "Keuangan"}, categories)
}

func TestRecommendationsPopularOnly(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	recs := bs.Recommendations()
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 4)
	for _, book := range recs {
		assert.True(t, book.IsPopular)
	}
}

func TestCreateBookDefaults(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	price := int64(75000)
	book, err := bs.Create(&CreateBookRequest{
		Title:       "Sapiens",
		Author:      "Yuval Noah Harari",
		Category:    "Sejarah",
		Price:       &price,
		Description: "Riwayat singkat umat manusia.",
	})
	require.NoError(t, err)

	assert.Equal(t, 4.5, book.Rating)
	assert.Equal(t, int64(0), book.ReviewCount)
	assert.Equal(t, models.FallbackImage, book.Image)
	assert.NotZero(t, book.ID)

	// 新书插在目录最前面
	books := store.Catalog.List()
	require.Len(t, books, 7)
	assert.Equal(t, book.ID, books[0].ID)
}

func TestCreateBookOutOfRangeRatingFallsBack(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	price := int64(50000)
	rating := 9.9
	book, err := bs.Create(&CreateBookRequest{
		Title:       "Uji Rating",
		Author:      "Anon",
		Category:    "Fiksi",
		Price:       &price,
		Description: "-",
		Rating:      &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, book.Rating)
}

func TestCreateBookRejectsMissingFields(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	_, err := bs.Create(&CreateBookRequest{Title: "Tanpa Penulis"})
	require.Error(t, err)

	var ve *utils.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "Author")
	assert.Equal(t, 6, store.Catalog.Count())
}

func TestUpdateBookKeepsReviewCount(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	price := int64(99000)
	book, ok, err := bs.Update(1, &UpdateBookRequest{
		Title:       "Filosofi Teras",
		Author:      "Henry Manampiring",
		Category:    "Self Improvement",
		Price:       &price,
		Description: "Edisi baru.",
		Rating:      4.9,
		IsPopular:   true,
	})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, int64(99000), book.Price)
	assert.Equal(t, 4.9, book.Rating)
	// 评论数不可编辑，沿用原值
	assert.Equal(t, int64(3240), book.ReviewCount)
	// 留空封面沿用原图
	assert.NotEmpty(t, book.Image)
}

func TestUpdateBookMissingIDIsSilentSkip(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	price := int64(10000)
	_, ok, err := bs.Update(424242, &UpdateBookRequest{
		Title:       "Hantu",
		Author:      "Anon",
		Category:    "Fiksi",
		Price:       &price,
		Description: "-",
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteBookCascades(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	session := store.Sessions.Create(models.User{Email: "pembaca@gmail.com", Role: models.RoleUser})
	store.Sessions.ToggleWishlist(session.ID, 2)
	store.Sessions.SetSelectedBook(session.ID, 2)

	require.True(t, bs.Delete(2))

	_, found := store.Catalog.Get(2)
	assert.False(t, found)
	assert.False(t, store.Sessions.HasWishlist(session.ID, 2))

	snapshot, _ := store.Sessions.Get(session.ID)
	assert.Zero(t, snapshot.SelectedBookID)

	// 再次删除是空操作
	assert.False(t, bs.Delete(2))
}

func TestRateBook(t *testing.T) {
	setupStores(t)
	bs := NewBookService()

	book, ok := bs.Rate(1, 5)
	require.True(t, ok)
	assert.Equal(t, int64(3241), book.ReviewCount)
	assert.InDelta(t, (4.8*3240+5)/3241, book.Rating, 1e-9)

	// 星级越界直接拒绝，不产生评分事件
	_, ok = bs.Rate(1, 0)
	assert.False(t, ok)
	_, ok = bs.Rate(1, 6)
	assert.False(t, ok)

	current, _ := store.Catalog.Get(1)
	assert.Equal(t, int64(3241), current.ReviewCount)
}
