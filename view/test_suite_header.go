// view/test_suite_header.go
package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dev-mohitbeniwal/metacat/model"
)

// TestSuitesPath is the test suite listing page
const TestSuitesPath = "/test-suites"

// TitleLink is one breadcrumb entry
type TitleLink struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ActiveTitle bool   `json:"activeTitle,omitempty"`
}

// ExtraInfo is a key/value fragment shown under the breadcrumb
type ExtraInfo struct {
	Key             string `json:"key"`
	Value           string `json:"value"`
	PlaceholderText string `json:"placeholderText,omitempty"`
	ProfileName     string `json:"profileName,omitempty"`
	IsLink          bool   `json:"isLink,omitempty"`
}

// DeleteWidget describes the delete confirmation dialog
type DeleteWidget struct {
	EntityID        string `json:"entityId"`
	EntityName      string `json:"entityName"`
	EntityType      string `json:"entityType"`
	AllowSoftDelete bool   `json:"allowSoftDelete"`
	Visible         bool   `json:"visible"`
}

type TestSuiteHeaderProps struct {
	Breadcrumb            []TitleLink      `json:"breadcrumb"`
	ExtraInfo             []ExtraInfo      `json:"extraInfo"`
	TestSuite             *model.TestSuite `json:"testSuite"`
	Description           string           `json:"description"`
	IsDescriptionEditable bool             `json:"isDescriptionEditable"`
	DeleteWidget          DeleteWidget     `json:"deleteWidget"`
}

// TestSuiteBreadcrumb links back to the listing and ends at the suite's title
func TestSuiteBreadcrumb(suite *model.TestSuite) []TitleLink {
	return []TitleLink{
		{Name: "Test Suites", URL: TestSuitesPath},
		{Name: suite.Title(), URL: "", ActiveTitle: true},
	}
}

// OwnerInfo is the owner fragment, with a placeholder when nobody owns the suite
func OwnerInfo(owner *model.EntityReference) ExtraInfo {
	info := ExtraInfo{Key: "Owner", PlaceholderText: "No Owner"}
	if owner == nil {
		return info
	}
	info.Value = owner.DisplayName
	if info.Value == "" {
		info.Value = owner.Name
	}
	if owner.Type == "user" {
		info.ProfileName = owner.Name
		info.IsLink = true
	}
	return info
}

// NewDeleteWidget describes soft-deletable removal of suite
func NewDeleteWidget(suite *model.TestSuite, visible bool) DeleteWidget {
	return DeleteWidget{
		EntityID:        suite.ID,
		EntityName:      suite.FullyQualifiedName,
		EntityType:      string(model.ResourceEntityTestSuite),
		AllowSoftDelete: true,
		Visible:         visible,
	}
}

// TestSuiteHeaderHandlers receives every action raised by the header
type TestSuiteHeaderHandlers interface {
	HandleDeleteWidgetVisible(ctx context.Context, visible bool) error
	HandleUpdateOwner(ctx context.Context, owner *model.EntityReference) error
	DescriptionHandler(ctx context.Context, editing bool) error
	HandleDescriptionUpdate(ctx context.Context, description string) error
}

// TestSuiteHeader renders props and forwards actions to its handlers.
// It keeps no state of its own.
type TestSuiteHeader struct {
	Props    TestSuiteHeaderProps
	Handlers TestSuiteHeaderHandlers
}

func (h TestSuiteHeader) OnDeleteClick(ctx context.Context) error {
	return h.Handlers.HandleDeleteWidgetVisible(ctx, true)
}

func (h TestSuiteHeader) OnDeleteCancel(ctx context.Context) error {
	return h.Handlers.HandleDeleteWidgetVisible(ctx, false)
}

func (h TestSuiteHeader) OnUpdateOwner(ctx context.Context, owner *model.EntityReference) error {
	return h.Handlers.HandleUpdateOwner(ctx, owner)
}

func (h TestSuiteHeader) OnDescriptionEdit(ctx context.Context) error {
	return h.Handlers.DescriptionHandler(ctx, true)
}

func (h TestSuiteHeader) OnDescriptionCancel(ctx context.Context) error {
	return h.Handlers.DescriptionHandler(ctx, false)
}

func (h TestSuiteHeader) OnDescriptionUpdate(ctx context.Context, description string) error {
	return h.Handlers.HandleDescriptionUpdate(ctx, description)
}

func (h TestSuiteHeader) Render(styles Styles) string {
	p := h.Props
	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			renderBreadcrumb(p.Breadcrumb, styles), "  ", styles.DangerButton.Render("Delete")),
	}

	if len(p.ExtraInfo) > 0 {
		infos := make([]string, 0, len(p.ExtraInfo))
		for _, info := range p.ExtraInfo {
			infos = append(infos, renderExtraInfo(info, styles))
		}
		sections = append(sections, strings.Join(infos, " | "))
	}

	sections = append(sections, renderDescription(p, styles))

	if p.DeleteWidget.Visible {
		sections = append(sections, renderDeleteWidget(p.DeleteWidget, styles))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderBreadcrumb(links []TitleLink, styles Styles) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		if link.ActiveTitle {
			parts = append(parts, styles.ActiveTitle.Render(link.Name))
			continue
		}
		parts = append(parts, styles.Link.Render(link.Name))
	}
	return strings.Join(parts, " / ")
}

func renderExtraInfo(info ExtraInfo, styles Styles) string {
	if info.Value == "" {
		return info.Key + ": " + styles.Muted.Render(info.PlaceholderText)
	}
	if info.IsLink {
		return info.Key + ": " + styles.Link.Render(info.Value)
	}
	return info.Key + ": " + info.Value
}

func renderDescription(p TestSuiteHeaderProps, styles Styles) string {
	body := styles.Muted.Render("No description")
	if p.Description != "" {
		body = styles.Body.Render(p.Description)
	}
	if p.IsDescriptionEditable {
		return styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Heading.Render("Edit description"), body, "[Save] [Cancel]"))
	}
	return body
}

func renderDeleteWidget(w DeleteWidget, styles Styles) string {
	lines := []string{
		fmt.Sprintf("Delete %s %q?", w.EntityType, w.EntityName),
	}
	if w.AllowSoftDelete {
		lines = append(lines, "[Soft delete] [Permanent delete] [Cancel]")
	} else {
		lines = append(lines, "[Permanent delete] [Cancel]")
	}
	return styles.ConfirmDialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
