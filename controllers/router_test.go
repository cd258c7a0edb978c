package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bukukula_go/models"
	"bukukula_go/routes"
	"bukukula_go/store"
	"bukukula_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// envelope 统一响应结构的测试侧镜像
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// setupRouter 每个用例独立的路由和全局仓库
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store.Catalog = store.NewCatalogStore(models.SeedBooks())
	store.Sessions = store.NewSessionStore()
	store.Images = store.NewImageStore(30 * time.Minute)

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doRequest 发送一次JSON请求并解析响应信封
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

// loginAs 登录并返回token
func loginAs(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, utils.CodeSuccess, env.Code, "message: %s", env.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

// loginAdmin 用白名单邮箱 + 共享密钥登录
func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	return loginAs(t, r, "mutiasaqueena@gmail.com", "Rojabi98")
}

// loginUser 用普通邮箱登录
func loginUser(t *testing.T, r *gin.Engine) string {
	t.Helper()
	return loginAs(t, r, "pembaca@gmail.com", "rahasia-panjang")
}
