// util/patch_util.go
package util

// JSON patch operations sent to the catalog
const (
	PatchAdd     = "add"
	PatchReplace = "replace"
	PatchRemove  = "remove"
)

// PatchOp picks the operation that moves a field from had to has.
// It returns "" when the field is absent before and after.
func PatchOp(had, has bool) string {
	switch {
	case had && has:
		return PatchReplace
	case had:
		return PatchRemove
	case has:
		return PatchAdd
	}
	return ""
}
