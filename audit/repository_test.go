package audit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeElasticsearch answers like a cluster; the client refuses servers without the product header
func fakeElasticsearch(t *testing.T, handler http.HandlerFunc) *ElasticsearchRepository {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	repo, err := NewElasticsearchRepository(srv.URL, "console-audit")
	require.NoError(t, err)
	return repo
}

func TestElasticsearchRepositoryLog(t *testing.T) {
	var indexed AuditLog
	repo := fakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/console-audit/_doc/evt-1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &indexed))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"result":"created"}`))
	})

	err := repo.Log(context.Background(), AuditLog{
		ID:       "evt-1",
		UserID:   "u1",
		Action:   ActionPermissionFetch,
		Resource: "table",
		Outcome:  OutcomeSuccess,
	})
	require.NoError(t, err)
	assert.Equal(t, ActionPermissionFetch, indexed.Action)
}

func TestElasticsearchRepositoryQuery(t *testing.T) {
	repo := fakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/_search"))
		w.Write([]byte(`{"hits":{"hits":[{"_source":{"id":"e1","user_id":"u1","action":"TEST_SUITE_DELETE","outcome":"success"}}]}}`))
	})

	logs, err := repo.Query(context.Background(), time.Now().Add(-time.Hour), time.Now(), "u1", ActionTestSuiteDelete)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "e1", logs[0].ID)
}

func TestElasticsearchRepositoryLogError(t *testing.T) {
	repo := fakeElasticsearch(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad"}`))
	})

	assert.Error(t, repo.Log(context.Background(), AuditLog{ID: "x"}))
}

type recordingRepo struct {
	logs []AuditLog
}

func (r *recordingRepo) Log(ctx context.Context, log AuditLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *recordingRepo) Query(ctx context.Context, from, to time.Time, userID, action string) ([]AuditLog, error) {
	return r.logs, nil
}

func TestServiceRecordFillsDefaults(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	svc.Record(context.Background(), AuditLog{Action: ActionSessionReset})

	require.Len(t, repo.logs, 1)
	assert.NotEmpty(t, repo.logs[0].ID)
	assert.False(t, repo.logs[0].Timestamp.IsZero())
}

func TestServiceWithoutRepository(t *testing.T) {
	svc := NewService(nil)
	assert.NotPanics(t, func() { svc.Record(context.Background(), AuditLog{}) })

	logs, err := svc.Query(context.Background(), time.Time{}, time.Now(), "", "")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
