package controld

import (
	"encoding/json"
	"strings"
)

// GroupsResponse is the envelope returned by the groups endpoint
type GroupsResponse struct {
	Body GroupsBody `json:"body"`
}

// GroupsBody holds the group list inside the response envelope
type GroupsBody struct {
	Groups []Group `json:"groups"`
}

// Group represents a folder within a Control D profile.
// The API returns the id as a number, but it is opaque to us, so PK is
// decoded as json.Number and only ever used as a string.
type Group struct {
	PK    json.Number `json:"PK"`
	Group string      `json:"group"`
}

// ID returns the group identifier as an opaque string
func (g *Group) ID() string {
	return g.PK.String()
}

// Name returns the display name trimmed of surrounding whitespace
func (g *Group) Name() string {
	return strings.TrimSpace(g.Group)
}
