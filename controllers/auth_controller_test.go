package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"bukukula_go/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateBlocksWithoutToken(t *testing.T) {
	r := setupRouter(t)

	// 登录之前目录路由全部不可达
	for _, path := range []string{"/api/books", "/api/books/hot", "/api/wishlist", "/api/preferences"} {
		w, env := doRequest(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, utils.CodeUnauthorized, env.Code, path)
	}
}

func TestGateRejectsGarbageToken(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/books", "bukan.token.jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, utils.CodeUnauthorized, env.Code)
}

func TestLoginAdminIdentity(t *testing.T) {
	r := setupRouter(t)
	token := loginAdmin(t, r)

	w, env := doRequest(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, utils.CodeSuccess, env.Code)

	var data struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
			Role  string `json:"role"`
		} `json:"user"`
		Preferences struct {
			ActiveCategory string `json:"active_category"`
			SortOrder      string `json:"sort_order"`
			ViewMode       string `json:"view_mode"`
		} `json:"preferences"`
		WishlistCount int `json:"wishlist_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "admin", data.User.Role)
	assert.Equal(t, "Admin Bukukula", data.User.Name)
	assert.Equal(t, "Semua", data.Preferences.ActiveCategory)
	assert.Equal(t, "default", data.Preferences.SortOrder)
	assert.Equal(t, "grid", data.Preferences.ViewMode)
	assert.Zero(t, data.WishlistCount)
}

func TestLoginWrongAdminPasswordKeepsEmail(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "mutiasaqueena@gmail.com",
		"password": "password-yang-salah",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, utils.CodeError, env.Code)
	assert.Equal(t, "Password salah untuk akun Admin.", env.Message)

	// 表单里填过的邮箱原样返回，方便重试
	var data struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "mutiasaqueena@gmail.com", data.Email)
}

func TestLoginWeakPassword(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "pembaca@gmail.com",
		"password": "12345",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, utils.CodeError, env.Code)
	assert.Equal(t, "Password minimal 6 karakter.", env.Message)
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "bukan-email",
		"password": "rahasia-panjang",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, utils.CodeValidationError, env.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r := setupRouter(t)
	token := loginUser(t, r)

	// 注销前token有效
	w, _ := doRequest(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sampai jumpa lagi", env.Message)

	// 会话已销毁，同一个token不再被接受
	w, _ = doRequest(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
