package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"talentboard/internal/app"
	"talentboard/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps an httptest server whose requests run against either
// the base DB or, between BeginTransaction and RollbackTransaction, a
// transaction that never commits.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB

	mu sync.RWMutex
	tx *gorm.DB
}

// NewTestServer connects to the test database (DATABASE_URL), migrates it
// and starts an httptest server around the full router.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test DB (%s): %v", dsn, err)
	}

	ts := &TestServer{DB: db}

	router := app.SetupRouterWithDB(cfg, ts.currentDB)
	ts.Server = httptest.NewServer(router)

	log.Printf("Test server started, test DB (%s) ready.", dsn)
	return ts
}

func (ts *TestServer) currentDB() *gorm.DB {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	if ts.tx != nil {
		return ts.tx
	}
	return ts.DB
}

// BeginTransaction opens a transaction and routes all subsequent requests
// through it until RollbackTransaction is called.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin transaction: %v", tx.Error)
	}
	ts.mu.Lock()
	ts.tx = tx
	ts.mu.Unlock()
	return tx
}

// RollbackTransaction discards everything written during the test.
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	ts.mu.Lock()
	ts.tx = nil
	ts.mu.Unlock()
	if err := tx.Rollback().Error; err != nil {
		t.Logf("Rollback error (ignored): %v", err)
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request JSON: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to create HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
