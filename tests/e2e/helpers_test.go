//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/returns-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/returns-backend/internal/app"
	"github.com/heartmarshall/returns-backend/internal/config"
	"github.com/heartmarshall/returns-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). The pdftotext binary is not
// required: extraction failures fall back to filename signals.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadSize: 8 << 20},
		Import: config.ImportConfig{
			Workers:           2,
			ExtractTimeout:    5 * time.Second,
			PdftotextPath:     "pdftotext",
			MaxFileSize:       1 << 20,
			DefaultReturnType: "pre_receipt",
		},
		Matching: config.MatchingConfig{SimilarityThreshold: 0.3, RankLimit: 5, SubstringConfidence: 0.5},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id,X-User-Id",
			MaxAge:         86400,
		},
	}

	svc, err := app.NewServicesWithPool(t.Context(), pool, cfg, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(app.NewHandler(cfg, svc, nil, logger))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// doJSON sends body (if not nil) as JSON and decodes the JSON response.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, actor *uuid.UUID) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != nil {
		req.Header.Set(middleware.ActorHeader, actor.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "decode %s %s", method, path)
	return resp.StatusCode, result
}

// upload posts files as a multipart import with the given form fields.
func (ts *testServer) upload(t *testing.T, files map[string][]byte, fields map[string]string) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	resp, err := ts.Client.Post(ts.URL+"/returns/import", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// fakePDF returns bytes that pass the PDF header check. pdftotext rejects
// them, so only the filename carries signals.
func fakePDF() []byte {
	return []byte("%PDF-1.4\n% label fixture\n%%EOF\n")
}

func uniqueASIN() string {
	return strings.ToUpper(testhelper.UniqueASIN())
}

func num(t *testing.T, v any) int64 {
	t.Helper()
	f, ok := v.(float64)
	require.True(t, ok, "expected number, got %T (%v)", v, v)
	return int64(f)
}

func auditActions(t *testing.T, ts *testServer, returnID int64) []string {
	t.Helper()
	rows, err := ts.Pool.Query(t.Context(),
		`SELECT action FROM audit_log WHERE entity_type = 'RETURN' AND entity_id = $1 ORDER BY created_at, id`,
		returnID,
	)
	require.NoError(t, err)
	defer rows.Close()

	var actions []string
	for rows.Next() {
		var a string
		require.NoError(t, rows.Scan(&a))
		actions = append(actions, a)
	}
	require.NoError(t, rows.Err())
	return actions
}
