// model/test_suite.go
package model

// EntityReference points at another catalog entity, e.g. a test suite owner
type EntityReference struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Name               string `json:"name,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	FullyQualifiedName string `json:"fullyQualifiedName,omitempty"`
	Deleted            bool   `json:"deleted,omitempty"`
}

// TestSuite is a named, described grouping of data-quality checks
type TestSuite struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	DisplayName        string           `json:"displayName,omitempty"`
	FullyQualifiedName string           `json:"fullyQualifiedName,omitempty"`
	Description        string           `json:"description,omitempty"`
	Owner              *EntityReference `json:"owner,omitempty"`
	Version            float64          `json:"version,omitempty"`
	UpdatedAt          int64            `json:"updatedAt,omitempty"`
	UpdatedBy          string           `json:"updatedBy,omitempty"`
	Deleted            bool             `json:"deleted,omitempty"`
}

// Title is the display name falling back to the name
func (t TestSuite) Title() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// TestSuiteList is the envelope of the catalog test suite listing
type TestSuiteList struct {
	Data   []TestSuite `json:"data"`
	Paging *Paging     `json:"paging,omitempty"`
}

type Paging struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
	Total  int    `json:"total"`
}

// SelectTestSuite is the result of the test suite selector.
// Name and Description are empty unless IsNewTestSuite is set.
type SelectTestSuite struct {
	Name           string     `json:"name,omitempty"`
	Description    string     `json:"description"`
	Data           *TestSuite `json:"data,omitempty"`
	IsNewTestSuite bool       `json:"isNewTestSuite"`
}

// SelectorDraft is the in-progress state of a test suite selector
type SelectorDraft struct {
	SessionID      string `json:"sessionId"`
	EntityFQN      string `json:"entityFqn"`
	IsNewTestSuite bool   `json:"isNewTestSuite"`
	TestSuiteID    string `json:"testSuiteId,omitempty"`
	TestSuiteName  string `json:"testSuiteName,omitempty"`
	Description    string `json:"description,omitempty"`
}

// SelectorFields is a partial update of the selector form
type SelectorFields struct {
	TestSuiteID   *string `json:"testSuiteId"`
	TestSuiteName *string `json:"testSuiteName"`
	Description   *string `json:"description"`
}

// JSONPatchOperation is one RFC 6902 operation sent to the catalog
type JSONPatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

// SelectorState is what a selector session shows: the draft plus the loaded suites
type SelectorState struct {
	SelectorDraft
	TestSuites []TestSuite `json:"testSuites"`
}
