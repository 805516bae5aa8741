package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sponsorly_backend/internal/app"
	"sponsorly_backend/internal/auth"
	"sponsorly_backend/internal/config"
	"sponsorly_backend/internal/repositories"
	"sponsorly_backend/internal/repositories/memory"
	"sponsorly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const TestJWTSecret = "my_super_secret_key_for_tests_12345"

type TestServer struct {
	Server *httptest.Server
	Store  *repositories.Store
	Config *config.Config
}

// NewTestServer поднимает полный роутер поверх хранилища в памяти.
// Каждый тест получает свое хранилище, поэтому тесты можно запускать параллельно.
func NewTestServer(t *testing.T, msgOpts ...services.MessageOption) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = config.DriverMemory
	cfg.JWT.Secret = TestJWTSecret

	store := memory.NewStore()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Hour)
	router := app.SetupRouter(cfg, store, tokens, msgOpts...)

	ts := &TestServer{
		Server: httptest.NewServer(router),
		Store:  store,
		Config: cfg,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("Не удалось распарсить JSON %q: %v", body, err)
	}
}
