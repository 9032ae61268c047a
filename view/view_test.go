package view_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/view"
)

func TestLowerCase(t *testing.T) {
	tests := map[string]string{
		"TestSuite":    "test suite",
		"testSuite":    "test suite",
		"test_suite":   "test suite",
		"--Foo-Bar--":  "foo bar",
		"XMLHttpProxy": "xml http proxy",
		"table1Stats":  "table 1 stats",
		"owner":        "owner",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, view.LowerCase(in), "LowerCase(%q)", in)
	}
}

func TestSummaryCard(t *testing.T) {
	styles := view.DefaultStyles()

	t.Run("WithHeading", func(t *testing.T) {
		card := view.SummaryCard{ID: "TestSuite", Heading: "Tests", Description: "12 passing"}
		out := card.Render(styles)

		assert.Equal(t, "test suite-summary-container", card.TestID())
		assert.Contains(t, out, "Tests")
		assert.Contains(t, out, "12 passing")
		assert.Less(t, strings.Index(out, "Tests"), strings.Index(out, "12 passing"))
	})

	t.Run("WithoutHeading", func(t *testing.T) {
		card := view.SummaryCard{ID: "failed", Description: "3"}
		out := card.Render(styles)

		assert.Equal(t, "failed-summary-container", card.TestID())
		// border, body, border
		assert.Len(t, strings.Split(out, "\n"), 3)
	})
}

type recordedCall struct {
	Name  string
	Value interface{}
}

type recordingHandlers struct {
	calls []recordedCall
}

func (r *recordingHandlers) HandleDeleteWidgetVisible(_ context.Context, visible bool) error {
	r.calls = append(r.calls, recordedCall{"deleteVisible", visible})
	return nil
}

func (r *recordingHandlers) HandleUpdateOwner(_ context.Context, owner *model.EntityReference) error {
	r.calls = append(r.calls, recordedCall{"owner", owner.ID})
	return nil
}

func (r *recordingHandlers) DescriptionHandler(_ context.Context, editing bool) error {
	r.calls = append(r.calls, recordedCall{"editing", editing})
	return nil
}

func (r *recordingHandlers) HandleDescriptionUpdate(_ context.Context, description string) error {
	r.calls = append(r.calls, recordedCall{"description", description})
	return nil
}

func sampleSuite() *model.TestSuite {
	return &model.TestSuite{
		ID:                 "ts-1",
		Name:               "critical",
		DisplayName:        "Critical Metrics",
		FullyQualifiedName: "critical",
		Description:        "Checks on revenue tables",
		Owner:              &model.EntityReference{ID: "u-1", Type: "user", Name: "aaron", DisplayName: "Aaron"},
	}
}

func TestTestSuiteHeaderProps(t *testing.T) {
	suite := sampleSuite()

	want := []view.TitleLink{
		{Name: "Test Suites", URL: "/test-suites"},
		{Name: "Critical Metrics", URL: "", ActiveTitle: true},
	}
	if diff := cmp.Diff(want, view.TestSuiteBreadcrumb(suite)); diff != "" {
		t.Errorf("breadcrumb mismatch (-want +got):\n%s", diff)
	}

	wantWidget := view.DeleteWidget{
		EntityID:        "ts-1",
		EntityName:      "critical",
		EntityType:      "testSuite",
		AllowSoftDelete: true,
		Visible:         true,
	}
	if diff := cmp.Diff(wantWidget, view.NewDeleteWidget(suite, true)); diff != "" {
		t.Errorf("delete widget mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, view.ExtraInfo{Key: "Owner", Value: "Aaron", PlaceholderText: "No Owner", ProfileName: "aaron", IsLink: true},
		view.OwnerInfo(suite.Owner))
	assert.Equal(t, view.ExtraInfo{Key: "Owner", PlaceholderText: "No Owner"}, view.OwnerInfo(nil))
}

func TestTestSuiteHeaderForwardsActions(t *testing.T) {
	handlers := &recordingHandlers{}
	header := view.TestSuiteHeader{Handlers: handlers}
	ctx := context.Background()

	require.NoError(t, header.OnDeleteClick(ctx))
	require.NoError(t, header.OnDeleteCancel(ctx))
	require.NoError(t, header.OnUpdateOwner(ctx, &model.EntityReference{ID: "u-2"}))
	require.NoError(t, header.OnDescriptionEdit(ctx))
	require.NoError(t, header.OnDescriptionCancel(ctx))
	require.NoError(t, header.OnDescriptionUpdate(ctx, "new text"))

	want := []recordedCall{
		{"deleteVisible", true},
		{"deleteVisible", false},
		{"owner", "u-2"},
		{"editing", true},
		{"editing", false},
		{"description", "new text"},
	}
	if diff := cmp.Diff(want, handlers.calls); diff != "" {
		t.Errorf("forwarded calls mismatch (-want +got):\n%s", diff)
	}
}

func TestTestSuiteHeaderRender(t *testing.T) {
	suite := sampleSuite()
	props := view.TestSuiteHeaderProps{
		Breadcrumb:   view.TestSuiteBreadcrumb(suite),
		ExtraInfo:    []view.ExtraInfo{view.OwnerInfo(suite.Owner)},
		TestSuite:    suite,
		Description:  suite.Description,
		DeleteWidget: view.NewDeleteWidget(suite, false),
	}

	out := view.TestSuiteHeader{Props: props}.Render(view.DefaultStyles())
	assert.Contains(t, out, "Test Suites / Critical Metrics")
	assert.Contains(t, out, "Owner: Aaron")
	assert.Contains(t, out, "Checks on revenue tables")
	assert.NotContains(t, out, "Soft delete")

	props.DeleteWidget.Visible = true
	props.Description = ""
	props.ExtraInfo = []view.ExtraInfo{view.OwnerInfo(nil)}
	out = view.TestSuiteHeader{Props: props}.Render(view.DefaultStyles())
	assert.Contains(t, out, `Delete testSuite "critical"?`)
	assert.Contains(t, out, "[Soft delete]")
	assert.Contains(t, out, "No description")
	assert.Contains(t, out, "Owner: No Owner")
}
