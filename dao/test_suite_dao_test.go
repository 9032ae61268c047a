package dao_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/metacat/dao"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	"github.com/dev-mohitbeniwal/metacat/model"
)

func TestTestSuiteDAO(t *testing.T) {
	t.Run("ListTestSuites_Success", func(t *testing.T) {
		client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/testSuite", r.URL.Path)
			assert.Equal(t, "100000", r.URL.Query().Get("limit"))
			w.Write([]byte(`{"data":[{"id":"a","name":"Foo"},{"id":"b","name":"Bar"}],"paging":{"total":2}}`))
		})

		suites, err := dao.NewTestSuiteDAO(client).ListTestSuites(context.Background(), 100000)
		require.NoError(t, err)
		assert.Equal(t, []model.TestSuite{{ID: "a", Name: "Foo"}, {ID: "b", Name: "Bar"}}, suites)
	})

	t.Run("GetTestSuiteByName_Failure_NotFound", func(t *testing.T) {
		client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := dao.NewTestSuiteDAO(client).GetTestSuiteByName(context.Background(), "missing")
		assert.ErrorIs(t, err, metacat_errors.ErrTestSuiteNotFound)
	})

	t.Run("PatchTestSuite_SendsJSONPatch", func(t *testing.T) {
		client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "application/json-patch+json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			var ops []model.JSONPatchOperation
			require.NoError(t, json.Unmarshal(body, &ops))
			assert.Equal(t, "/description", ops[0].Path)
			w.Write([]byte(`{"id":"a","name":"Foo","description":"new"}`))
		})

		suite, err := dao.NewTestSuiteDAO(client).PatchTestSuite(context.Background(), "a", []model.JSONPatchOperation{
			{Op: "replace", Path: "/description", Value: "new"},
		})
		require.NoError(t, err)
		assert.Equal(t, "new", suite.Description)
	})

	t.Run("DeleteTestSuite_Soft", func(t *testing.T) {
		client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "false", r.URL.Query().Get("hardDelete"))
			w.WriteHeader(http.StatusOK)
		})

		assert.NoError(t, dao.NewTestSuiteDAO(client).DeleteTestSuite(context.Background(), "a", false))
	})

	t.Run("DeleteTestSuite_Failure", func(t *testing.T) {
		client := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		err := dao.NewTestSuiteDAO(client).DeleteTestSuite(context.Background(), "a", true)
		assert.ErrorIs(t, err, metacat_errors.ErrTestSuiteDeleteFailed)
	})
}
