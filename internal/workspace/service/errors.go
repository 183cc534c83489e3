package service

import "errors"

// Sentinel errors for the workspace services; callers map them to transport
// codes. Store failures are passed through unchanged and never remapped.
var (
	// ErrWorkspaceNotFound is returned when the referenced workspace does not
	// exist (including a concurrent dissolve winning the race).
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrNotAMember is returned when the account holds no membership in the
	// target workspace.
	ErrNotAMember = errors.New("account is not a member of the workspace")
	// ErrPermissionDenied is returned when the account's role does not permit
	// the requested action.
	ErrPermissionDenied = errors.New("role does not permit this action")
	// ErrEntitlementDenied is returned when the workspace's billing plan does
	// not include the requested feature.
	ErrEntitlementDenied = errors.New("workspace plan does not include this feature")
	// ErrCannotDeleteActiveWorkspace is returned when an account tries to
	// dissolve the workspace it currently operates in.
	ErrCannotDeleteActiveWorkspace = errors.New("cannot delete the current workspace; switch to another workspace first")
	// ErrNoAccessibleWorkspace is returned when the account has no active
	// workspace to operate in.
	ErrNoAccessibleWorkspace = errors.New("account has no accessible active workspace")
	// ErrInvalidPageRange is returned by ListPage for out-of-range paging
	// parameters.
	ErrInvalidPageRange = errors.New("page must be >= 1 and pageSize between 1 and 100")
)
