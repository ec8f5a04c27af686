package controld

import (
	"context"
)

// API defines the interface for Control D operations
type API interface {
	// TestConnection verifies the client can reach the API with its token
	TestConnection(ctx context.Context, profileID string) error

	// ListGroups retrieves all groups (folders) for a profile
	ListGroups(ctx context.Context, profileID string) ([]Group, error)

	// RenameGroup changes the display name of a group within a profile
	RenameGroup(ctx context.Context, profileID, groupID, newName string) error
}

// Ensure Client implements API.
var _ API = (*Client)(nil)
