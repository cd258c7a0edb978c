package services

import (
	"testing"
	"time"

	"bukukula_go/models"
	"bukukula_go/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStores 每个用例独立的全局仓库
func setupStores(t *testing.T) {
	t.Helper()
	store.Catalog = store.NewCatalogStore(models.SeedBooks())
	store.Sessions = store.NewSessionStore()
	store.Images = store.NewImageStore(30 * time.Minute)
}

func TestLoginAdminWithSharedSecret(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	session, token, err := as.Login(&LoginRequest{
		Email:    "mutiasaqueena@gmail.com",
		Password: "Rojabi98",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
	assert.Equal(t, "Admin Bukukula", session.User.Name)
	assert.Equal(t, 1, store.Sessions.Count())
}

func TestLoginAdminEmailIsCaseInsensitive(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	session, _, err := as.Login(&LoginRequest{
		Email:    "  MutiaBackup317@Gmail.com ",
		Password: "Rojabi98",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
}

func TestLoginAdminWrongPasswordNeverFallsThrough(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	// 密码够长也不能降级成普通用户会话
	_, _, err := as.Login(&LoginRequest{
		Email:    "mutiarojabifiyani20@guru.smp.belajar.id",
		Password: "bukan-rahasia",
	})
	require.ErrorIs(t, err, ErrWrongAdminPassword)
	assert.Equal(t, 0, store.Sessions.Count())
}

func TestLoginUserRejectsWeakPassword(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	_, _, err := as.Login(&LoginRequest{
		Email:    "pembaca@gmail.com",
		Password: "12345",
	})
	require.ErrorIs(t, err, ErrWeakPassword)
	assert.Equal(t, 0, store.Sessions.Count())
}

func TestLoginUserDefaultsNameFromEmail(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	session, token, err := as.Login(&LoginRequest{
		Email:    "pembaca.setia@gmail.com",
		Password: "rahasia-panjang",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleUser, session.User.Role)
	assert.Equal(t, "pembaca.setia", session.User.Name)
}

func TestLoginUserKeepsProvidedName(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	session, _, err := as.Login(&LoginRequest{
		Email:    "pembaca@gmail.com",
		Password: "rahasia-panjang",
		Name:     "Pembaca Setia",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pembaca Setia", session.User.Name)
}

func TestLogoutDestroysSession(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	session, _, err := as.Login(&LoginRequest{Email: "pembaca@gmail.com", Password: "rahasia-panjang"})
	require.NoError(t, err)
	store.Sessions.ToggleWishlist(session.ID, 1)

	require.True(t, as.Logout(session.ID))
	_, ok := store.Sessions.Get(session.ID)
	assert.False(t, ok)

	// 重复注销是空操作
	assert.False(t, as.Logout(session.ID))
}

func TestIsAdminEmail(t *testing.T) {
	setupStores(t)
	as := NewAuthService()

	assert.True(t, as.IsAdminEmail("mutiasaqueena@gmail.com"))
	assert.True(t, as.IsAdminEmail("MUTIASAQUEENA@GMAIL.COM"))
	assert.False(t, as.IsAdminEmail("pembaca@gmail.com"))
}
