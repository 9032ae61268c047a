// errors/permission_errors.go
package errors

import "errors"

var (
	ErrPermissionFetch      = errors.New("failed to fetch permissions")
	ErrInvalidResource      = errors.New("invalid resource entity")
	ErrInvalidEntityID      = errors.New("invalid entity id")
	ErrStaleUserPermissions = errors.New("permissions fetched for a previous user")
)
