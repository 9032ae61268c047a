package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/metacat/model"
	mock_service "github.com/dev-mohitbeniwal/metacat/test/service_mock"
	"github.com/dev-mohitbeniwal/metacat/util"
	"github.com/dev-mohitbeniwal/metacat/view"
)

func TestShowTestSuite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDetailsService := mock_service.NewMockITestSuiteDetailsService(ctrl)

	t.Run("Renders_Header_And_Card", func(t *testing.T) {
		suite := &model.TestSuite{ID: "ts-1", Name: "critical", FullyQualifiedName: "critical", Description: "orders checks", UpdatedBy: "alice"}
		mockDetailsService.EXPECT().
			Header(gomock.Any(), cliSessionID, "critical").
			Return(&view.TestSuiteHeader{Props: view.TestSuiteHeaderProps{
				Breadcrumb:   view.TestSuiteBreadcrumb(suite),
				ExtraInfo:    []view.ExtraInfo{view.OwnerInfo(nil)},
				TestSuite:    suite,
				Description:  suite.Description,
				DeleteWidget: view.NewDeleteWidget(suite, false),
			}}, nil)

		var out bytes.Buffer
		err := showTestSuite(context.Background(), &out, mockDetailsService, util.NewNotificationService(nil), "critical")
		require.NoError(t, err)

		rendered := out.String()
		assert.Contains(t, rendered, "Test Suites")
		assert.Contains(t, rendered, "No Owner")
		assert.Contains(t, rendered, "orders checks")
		assert.Contains(t, rendered, "updated by alice")
	})

	t.Run("Prints_Notifications_On_Failure", func(t *testing.T) {
		notifications := util.NewNotificationService(nil)
		mockDetailsService.EXPECT().
			Header(gomock.Any(), cliSessionID, "missing").
			DoAndReturn(func(ctx context.Context, sessionID, fqn string) (*view.TestSuiteHeader, error) {
				notifications.ShowError(ctx, sessionID, errors.New("not found"), "Error while fetching test suite")
				return nil, errors.New("not found")
			})

		var out bytes.Buffer
		err := showTestSuite(context.Background(), &out, mockDetailsService, notifications, "missing")
		assert.Error(t, err)
		assert.Contains(t, out.String(), "error: Error while fetching test suite")
		assert.Zero(t, notifications.Pending(cliSessionID))
	})
}
