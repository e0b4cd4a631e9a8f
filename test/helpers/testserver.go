package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"homeserve_backend/internal/app"
	"homeserve_backend/internal/config"
	"homeserve_backend/internal/metrics"
	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

type TestServer struct {
	Server  *httptest.Server
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Metrics
}

// NewTestServer serves the real router over a fresh SQLite database.
// mutate may adjust the configuration before the router is built.
func NewTestServer(t *testing.T, mutate ...func(*config.Config)) *TestServer {
	t.Helper()

	cfg := TestConfig(t)
	for _, m := range mutate {
		m(cfg)
	}
	db := OpenTestDB(t, cfg)
	m := metrics.New()

	server := httptest.NewServer(app.SetupRouter(cfg, db, m))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:  server,
		DB:      db,
		Config:  cfg,
		Metrics: m,
	}
}

// Envelope is the decoded response body.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// SendRequest sends body as JSON. A non-empty token goes into the
// Authorization header.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// SendForm sends values form-encoded.
func (ts *TestServer) SendForm(t *testing.T, method, path, token string, values url.Values) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.Server.URL+path, strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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

// DecodeEnvelope parses a response body, failing the test on bad JSON.
func DecodeEnvelope(t *testing.T, body string) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, body)
	}
	return env
}

// Login signs a fixture account in and returns its session token.
func (ts *TestServer) Login(t *testing.T, account models.Account) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"user_type": account.Kind(),
		"email":     account.ContactEmail(),
		"password":  TestPassword,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed with %d: %s", res.StatusCode, body)
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(DecodeEnvelope(t, body).Data, &session); err != nil || session.Token == "" {
		t.Fatalf("login response has no token: %s", body)
	}
	return session.Token
}
