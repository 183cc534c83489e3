package interceptors

import "context"

type contextKey struct{ name string }

var (
	accountIDKey   = contextKey{"account_id"}
	workspaceIDKey = contextKey{"workspace_id"}
)

// WithIdentity returns a context with account_id and workspace_id set.
// Handlers and the workspace services can read these via GetAccountID, GetWorkspaceID.
func WithIdentity(ctx context.Context, accountID, workspaceID string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	ctx = context.WithValue(ctx, workspaceIDKey, workspaceID)
	return ctx
}

// GetAccountID returns the account_id from context and true if set; otherwise "", false.
func GetAccountID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(accountIDKey).(string)
	return v, ok
}

// GetWorkspaceID returns the workspace_id from context and true if set; otherwise "", false.
func GetWorkspaceID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(workspaceIDKey).(string)
	return v, ok
}
