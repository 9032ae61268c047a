// dao/test_suite_dao.go
package dao

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
)

// ITestSuiteDAO is the catalog test suite API as seen by the console
type ITestSuiteDAO interface {
	ListTestSuites(ctx context.Context, limit int) ([]model.TestSuite, error)
	GetTestSuiteByName(ctx context.Context, fqn string) (*model.TestSuite, error)
	PatchTestSuite(ctx context.Context, id string, ops []model.JSONPatchOperation) (*model.TestSuite, error)
	DeleteTestSuite(ctx context.Context, id string, hardDelete bool) error
}

type TestSuiteDAO struct {
	Client *CatalogClient
}

var _ ITestSuiteDAO = &TestSuiteDAO{}

func NewTestSuiteDAO(client *CatalogClient) *TestSuiteDAO {
	return &TestSuiteDAO{Client: client}
}

func (dao *TestSuiteDAO) ListTestSuites(ctx context.Context, limit int) ([]model.TestSuite, error) {
	start := time.Now()
	var list model.TestSuiteList
	err := dao.Client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "test_suites_list",
		path:     "/v1/testSuite",
		query: url.Values{
			"limit":  []string{strconv.Itoa(limit)},
			"fields": []string{"owner"},
		},
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("failed to list test suites: %w", err)
	}

	logger.Info("Listed test suites",
		zap.Int("count", len(list.Data)),
		zap.Int("limit", limit),
		zap.Duration("duration", time.Since(start)))
	return list.Data, nil
}

func (dao *TestSuiteDAO) GetTestSuiteByName(ctx context.Context, fqn string) (*model.TestSuite, error) {
	var suite model.TestSuite
	err := dao.Client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "test_suites_get",
		path:     "/v1/testSuite/name/" + url.PathEscape(fqn),
		query:    url.Values{"fields": []string{"owner"}},
	}, &suite)
	if err != nil {
		if isNotFound(err) {
			return nil, metacat_errors.ErrTestSuiteNotFound
		}
		return nil, fmt.Errorf("failed to get test suite %q: %w", fqn, err)
	}
	return &suite, nil
}

func (dao *TestSuiteDAO) PatchTestSuite(ctx context.Context, id string, ops []model.JSONPatchOperation) (*model.TestSuite, error) {
	var suite model.TestSuite
	err := dao.Client.do(ctx, request{
		method:      http.MethodPatch,
		endpoint:    "test_suites_patch",
		path:        "/v1/testSuite/" + url.PathEscape(id),
		body:        ops,
		contentType: "application/json-patch+json",
	}, &suite)
	if err != nil {
		if isNotFound(err) {
			return nil, metacat_errors.ErrTestSuiteNotFound
		}
		return nil, fmt.Errorf("%w: %w", metacat_errors.ErrTestSuiteUpdateFailed, err)
	}

	logger.Info("Test suite patched", zap.String("testSuiteID", id), zap.Int("operations", len(ops)))
	return &suite, nil
}

func (dao *TestSuiteDAO) DeleteTestSuite(ctx context.Context, id string, hardDelete bool) error {
	err := dao.Client.do(ctx, request{
		method:   http.MethodDelete,
		endpoint: "test_suites_delete",
		path:     "/v1/testSuite/" + url.PathEscape(id),
		query: url.Values{
			"hardDelete": []string{strconv.FormatBool(hardDelete)},
			"recursive":  []string{"true"},
		},
	}, nil)
	if err != nil {
		if isNotFound(err) {
			return metacat_errors.ErrTestSuiteNotFound
		}
		return fmt.Errorf("%w: %w", metacat_errors.ErrTestSuiteDeleteFailed, err)
	}

	logger.Info("Test suite deleted", zap.String("testSuiteID", id), zap.Bool("hardDelete", hardDelete))
	return nil
}
