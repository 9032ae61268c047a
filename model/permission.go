// model/permission.go
package model

// Access is the outcome the permission service reports for one operation
type Access string

const (
	AccessAllow            Access = "allow"
	AccessDeny             Access = "deny"
	AccessNotAllow         Access = "notAllow"
	AccessConditionalAllow Access = "conditionalAllow"
	AccessConditionalDeny  Access = "conditionalDeny"
)

// Operation names an action on a resource, e.g. "ViewAll", "EditDescription"
type Operation string

const (
	OperationAll             Operation = "All"
	OperationCreate          Operation = "Create"
	OperationDelete          Operation = "Delete"
	OperationViewAll         Operation = "ViewAll"
	OperationViewBasic       Operation = "ViewBasic"
	OperationEditAll         Operation = "EditAll"
	OperationEditDescription Operation = "EditDescription"
	OperationEditOwner       Operation = "EditOwner"
	OperationEditTests       Operation = "EditTests"
)

// ResourceEntity is a resource kind used for coarse-grained lookups, e.g. "table"
type ResourceEntity string

const (
	ResourceEntityTable     ResourceEntity = "table"
	ResourceEntityDashboard ResourceEntity = "dashboard"
	ResourceEntityTestSuite ResourceEntity = "testSuite"
	ResourceEntityTestCase  ResourceEntity = "testCase"
	ResourceEntityUser      ResourceEntity = "user"
)

// Permission is one operation-level record from the permission service
type Permission struct {
	Operation Operation `json:"operation"`
	Access    Access    `json:"access"`
	Rule      string    `json:"rule,omitempty"`
	Policy    string    `json:"policy,omitempty"`
	Role      string    `json:"role,omitempty"`
}

// ResourcePermission is the raw permission-service record for one resource or entity
type ResourcePermission struct {
	Resource    ResourceEntity `json:"resource"`
	Permissions []Permission   `json:"permissions"`
}

// ResourcePermissionList is the envelope of the logged-in user permission listing
type ResourcePermissionList struct {
	Data []ResourcePermission `json:"data"`
}

// OperationPermission is a permission set: operation name to allow/deny
type OperationPermission map[Operation]bool

// Allowed reports whether op is allowed, treating All as a wildcard
func (p OperationPermission) Allowed(op Operation) bool {
	return p[op] || p[OperationAll]
}

// UIPermission maps each resource kind to its permission set
type UIPermission map[ResourceEntity]OperationPermission

// GetOperationPermissions reduces a raw record to operation -> allowed.
// Later duplicates of an operation overwrite earlier ones.
func GetOperationPermissions(rp ResourcePermission) OperationPermission {
	perms := make(OperationPermission, len(rp.Permissions))
	for _, p := range rp.Permissions {
		perms[p.Operation] = p.Access == AccessAllow
	}
	return perms
}

// GetUIPermission builds the per-resource map from the logged-in user listing
func GetUIPermission(records []ResourcePermission) UIPermission {
	ui := make(UIPermission, len(records))
	for _, rp := range records {
		ui[rp.Resource] = GetOperationPermissions(rp)
	}
	return ui
}

// Clone returns a copy safe to hand out of a cache
func (p OperationPermission) Clone() OperationPermission {
	if p == nil {
		return nil
	}
	out := make(OperationPermission, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy
func (u UIPermission) Clone() UIPermission {
	out := make(UIPermission, len(u))
	for k, v := range u {
		out[k] = v.Clone()
	}
	return out
}
