package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/metacat/audit"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/service"
	testmock "github.com/dev-mohitbeniwal/metacat/test/mock"
	"github.com/dev-mohitbeniwal/metacat/util"
)

const selectorLimit = 100000

type selectorFixture struct {
	dao           *testmock.MockTestSuiteDAO
	drafts        *testmock.MemoryDraftStore
	notifications *util.NotificationService
	bus           *util.EventBus
	selector      *service.TestSuiteSelector
}

func newSelectorFixture(t *testing.T, suites []model.TestSuite, listErr error) *selectorFixture {
	t.Helper()
	f := &selectorFixture{
		dao:           &testmock.MockTestSuiteDAO{},
		drafts:        testmock.NewMemoryDraftStore(),
		notifications: util.NewNotificationService(nil),
		bus:           util.NewEventBus(),
	}
	f.dao.On("ListTestSuites", mock.Anything, selectorLimit).Return(suites, listErr)
	f.selector = service.NewTestSuiteSelector(
		f.dao,
		f.drafts,
		util.NewValidationUtil(),
		f.notifications,
		audit.NewService(nil),
		f.bus,
		selectorLimit,
	)
	t.Cleanup(f.bus.Close)
	return f
}

func strPtr(s string) *string { return &s }

func existingSuites() []model.TestSuite {
	return []model.TestSuite{{ID: "a", Name: "Foo"}, {ID: "b", Name: "Bar"}}
}

func TestSelectorOpenLoadsSuitesOnce(t *testing.T) {
	f := newSelectorFixture(t, existingSuites(), nil)
	ctx := context.Background()

	state, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
	require.NoError(t, err)
	assert.Len(t, state.TestSuites, 2)
	assert.False(t, state.IsNewTestSuite)

	_, err = f.selector.SetMode(ctx, "s1", true)
	require.NoError(t, err)
	_, err = f.selector.Update(ctx, "s1", model.SelectorFields{TestSuiteName: strPtr("x")})
	require.NoError(t, err)
	_, err = f.selector.State(ctx, "s1")
	require.NoError(t, err)

	f.dao.AssertNumberOfCalls(t, "ListTestSuites", 1)
}

func TestSelectorOpenFailureNotifiesOnce(t *testing.T) {
	f := newSelectorFixture(t, nil, errors.New("catalog unavailable"))

	state, err := f.selector.Open(context.Background(), "s1", "db.schema.orders", nil)
	require.NoError(t, err)
	assert.Empty(t, state.TestSuites)

	notes := f.notifications.Drain("s1")
	require.Len(t, notes, 1)
	assert.Equal(t, util.LevelError, notes[0].Level)
}

func TestSelectorSeedsFromInitialValue(t *testing.T) {
	f := newSelectorFixture(t, existingSuites(), nil)

	state, err := f.selector.Open(context.Background(), "s1", "db.schema.orders", &model.SelectTestSuite{
		Name:           "Nightly",
		Description:    "runs nightly",
		Data:           &model.TestSuite{ID: "b"},
		IsNewTestSuite: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "b", state.TestSuiteID)
	assert.Equal(t, "Nightly", state.TestSuiteName)
	assert.Equal(t, "runs nightly", state.Description)
	assert.True(t, state.IsNewTestSuite)
}

func TestSelectorDraftSurvivesModeToggle(t *testing.T) {
	f := newSelectorFixture(t, existingSuites(), nil)
	ctx := context.Background()
	_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
	require.NoError(t, err)

	_, err = f.selector.SetMode(ctx, "s1", true)
	require.NoError(t, err)
	_, err = f.selector.Update(ctx, "s1", model.SelectorFields{
		TestSuiteName: strPtr("Nightly"),
		Description:   strPtr("<p>checks</p>"),
	})
	require.NoError(t, err)

	_, err = f.selector.SetMode(ctx, "s1", false)
	require.NoError(t, err)
	state, err := f.selector.SetMode(ctx, "s1", true)
	require.NoError(t, err)

	assert.Equal(t, "Nightly", state.TestSuiteName)
	assert.Equal(t, "<p>checks</p>", state.Description)
}

func TestSelectorSubmit(t *testing.T) {
	t.Run("ExistingSuite_Success", func(t *testing.T) {
		f := newSelectorFixture(t, []model.TestSuite{{ID: "a", Name: "Foo"}}, nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{TestSuiteID: strPtr("a")})
		require.NoError(t, err)

		var received *model.SelectTestSuite
		result, err := f.selector.Submit(ctx, "s1", func(_ context.Context, selection model.SelectTestSuite) error {
			received = &selection
			return nil
		})
		require.NoError(t, err)

		expected := model.SelectTestSuite{
			Name:           "",
			Description:    "",
			Data:           &model.TestSuite{ID: "a", Name: "Foo"},
			IsNewTestSuite: false,
		}
		assert.Equal(t, expected, *result)
		require.NotNil(t, received)
		assert.Equal(t, expected, *received)
	})

	t.Run("ExistingSuite_DraftNameNotSubmitted", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{
			TestSuiteID:   strPtr("b"),
			TestSuiteName: strPtr("leftover"),
			Description:   strPtr("leftover"),
		})
		require.NoError(t, err)

		result, err := f.selector.Submit(ctx, "s1", nil)
		require.NoError(t, err)
		assert.Empty(t, result.Name)
		assert.Empty(t, result.Description)
		assert.Equal(t, "Bar", result.Data.Name)
	})

	t.Run("ExistingSuite_MissingID", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)

		called := false
		_, err = f.selector.Submit(ctx, "s1", func(context.Context, model.SelectTestSuite) error {
			called = true
			return nil
		})

		var verrs util.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.ErrorIs(t, err, metacat_errors.ErrTestSuiteValidation)
		assert.Equal(t, util.MsgTestSuiteRequired, verrs.Message("testSuiteId"))
		assert.False(t, called)
		assert.Zero(t, f.notifications.Pending("s1"))
	})

	t.Run("ExistingSuite_UnknownID", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{TestSuiteID: strPtr("zzz")})
		require.NoError(t, err)

		_, err = f.selector.Submit(ctx, "s1", nil)
		var verrs util.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, util.MsgTestSuiteRequired, verrs.Message("testSuiteId"))
	})

	t.Run("NewSuite_DuplicateName", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.SetMode(ctx, "s1", true)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{
			TestSuiteName: strPtr("Foo"),
			Description:   strPtr("dup"),
		})
		require.NoError(t, err)

		called := false
		_, err = f.selector.Submit(ctx, "s1", func(context.Context, model.SelectTestSuite) error {
			called = true
			return nil
		})

		var verrs util.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, util.MsgNameAlreadyExists, verrs.Message("testSuiteName"))
		assert.False(t, called)
	})

	t.Run("NewSuite_NameIsCaseSensitive", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.SetMode(ctx, "s1", true)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{
			TestSuiteName: strPtr("foo"),
			Description:   strPtr("lower case"),
		})
		require.NoError(t, err)

		result, err := f.selector.Submit(ctx, "s1", nil)
		require.NoError(t, err)
		assert.Equal(t, "foo", result.Name)
		assert.Nil(t, result.Data)
	})

	t.Run("NewSuite_MissingNameAndDescription", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.SetMode(ctx, "s1", true)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{Description: strPtr("  <script>x</script> ")})
		require.NoError(t, err)

		_, err = f.selector.Submit(ctx, "s1", nil)
		var verrs util.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, util.MsgNameRequired, verrs.Message("testSuiteName"))
		assert.Equal(t, util.MsgDescriptionRequired, verrs.Message("description"))
		assert.Empty(t, verrs.Message("testSuiteId"))
	})

	t.Run("NewSuite_Success", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()

		selected := make(chan model.SelectTestSuite, 1)
		f.bus.Subscribe(util.EventTestSuiteSelected, func(_ context.Context, e util.Event) error {
			selected <- e.Payload.(model.SelectTestSuite)
			return nil
		})

		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.SetMode(ctx, "s1", true)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{
			TestSuiteName: strPtr("Nightly"),
			Description:   strPtr("  <p>Tom & Jerry \"nightly\" checks where `a < b`</p>\n"),
		})
		require.NoError(t, err)

		result, err := f.selector.Submit(ctx, "s1", nil)
		require.NoError(t, err)
		f.bus.Wait()

		assert.Equal(t, "Nightly", result.Name)
		assert.Equal(t, "<p>Tom & Jerry \"nightly\" checks where `a < b`</p>", result.Description)
		assert.True(t, result.IsNewTestSuite)
		assert.Equal(t, *result, <-selected)
	})

	t.Run("CallbackError", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		ctx := context.Background()
		_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
		require.NoError(t, err)
		_, err = f.selector.Update(ctx, "s1", model.SelectorFields{TestSuiteID: strPtr("a")})
		require.NoError(t, err)

		boom := errors.New("next step failed")
		_, err = f.selector.Submit(ctx, "s1", func(context.Context, model.SelectTestSuite) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("NotOpen", func(t *testing.T) {
		f := newSelectorFixture(t, existingSuites(), nil)
		_, err := f.selector.Submit(context.Background(), "missing", nil)
		assert.ErrorIs(t, err, metacat_errors.ErrSelectorNotOpen)
	})
}

func TestSelectorCancel(t *testing.T) {
	f := newSelectorFixture(t, existingSuites(), nil)
	ctx := context.Background()
	_, err := f.selector.Open(ctx, "s1", "sample_data.ecommerce_db.shopify.dim_address", nil)
	require.NoError(t, err)

	path, err := f.selector.Cancel(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "/table/sample_data.ecommerce_db.shopify.dim_address/schema", path)

	draft, err := f.drafts.GetDraft(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, draft)

	_, err = f.selector.Cancel(ctx, "s1")
	assert.ErrorIs(t, err, metacat_errors.ErrSelectorNotOpen)
}

func TestSelectorDroppedOnSessionReset(t *testing.T) {
	f := newSelectorFixture(t, existingSuites(), nil)
	ctx := context.Background()
	_, err := f.selector.Open(ctx, "s1", "db.schema.orders", nil)
	require.NoError(t, err)

	f.bus.Publish(ctx, util.EventSessionReset, "s1")
	f.bus.Wait()

	_, err = f.selector.State(ctx, "s1")
	assert.ErrorIs(t, err, metacat_errors.ErrSelectorNotOpen)
}

func TestSelectorDraftDeletedAfterResettingRequestEnds(t *testing.T) {
	f := newSelectorFixture(t, existingSuites(), nil)
	_, err := f.selector.Open(context.Background(), "s1", "db.schema.orders", nil)
	require.NoError(t, err)

	draft, err := f.drafts.GetDraft(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, draft)

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()
	f.bus.Publish(reqCtx, util.EventSessionReset, "s1")
	f.bus.Wait()

	draft, err = f.drafts.GetDraft(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, draft)
}
