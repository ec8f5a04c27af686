package rename

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagezi/controld-renamer/controld"
)

type renameCall struct {
	profileID string
	groupID   string
	newName   string
}

// fakeAPI implements controld.API for orchestrator tests
type fakeAPI struct {
	groups    []controld.Group
	listErr   error
	renameErr map[string]error // keyed by group id
	renames   []renameCall
}

func (f *fakeAPI) TestConnection(ctx context.Context, profileID string) error {
	return f.listErr
}

func (f *fakeAPI) ListGroups(ctx context.Context, profileID string) ([]controld.Group, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.groups, nil
}

func (f *fakeAPI) RenameGroup(ctx context.Context, profileID, groupID, newName string) error {
	f.renames = append(f.renames, renameCall{profileID, groupID, newName})
	if err, ok := f.renameErr[groupID]; ok {
		return err
	}
	return nil
}

var _ controld.API = (*fakeAPI)(nil)

func group(id, name string) controld.Group {
	return controld.Group{PK: json.Number(id), Group: name}
}

func TestRenameProfile(t *testing.T) {
	t.Run("prefixes only unprefixed folders", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{
			group("g1", "Ads"),
			group("g2", "HA-Social"),
		}}
		ops := NewOperations(api, zerolog.Nop())

		result := ops.RenameProfile(context.Background(), "abc")

		require.Len(t, api.renames, 1)
		assert.Equal(t, renameCall{"abc", "g1", "HA-Ads"}, api.renames[0])
		assert.Equal(t, 1, result.Attempted)
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Skipped)
		assert.True(t, result.FullySuccessful())
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{
			group("g1", "HA-Ads"),
			group("g2", "HA-Social"),
		}}
		ops := NewOperations(api, zerolog.Nop())

		result := ops.RenameProfile(context.Background(), "abc")

		assert.Empty(t, api.renames)
		assert.Equal(t, 0, result.Attempted)
		assert.Equal(t, 2, result.Skipped)
		assert.True(t, result.FullySuccessful())
	})

	t.Run("one failure does not block remaining folders", func(t *testing.T) {
		api := &fakeAPI{
			groups: []controld.Group{
				group("g1", "Ads"),
				group("g2", "Trackers"),
			},
			renameErr: map[string]error{"g1": errors.New("boom")},
		}
		ops := NewOperations(api, zerolog.Nop())

		result := ops.RenameProfile(context.Background(), "abc")

		assert.Len(t, api.renames, 2)
		assert.Equal(t, 2, result.Attempted)
		assert.Equal(t, 1, result.Succeeded)
		assert.False(t, result.FullySuccessful())
	})

	t.Run("listing failure is vacuous success", func(t *testing.T) {
		api := &fakeAPI{listErr: errors.New("connection refused")}
		ops := NewOperations(api, zerolog.Nop())

		result := ops.RenameProfile(context.Background(), "abc")

		assert.Empty(t, api.renames)
		assert.Equal(t, 0, result.Attempted)
		assert.True(t, result.FullySuccessful())
	})

	t.Run("dry run performs no renames", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{group("g1", "Ads")}}
		ops := NewOperations(api, zerolog.Nop())
		ops.SetDryRun(true)

		result := ops.RenameProfile(context.Background(), "abc")

		assert.Empty(t, api.renames)
		assert.Equal(t, 1, result.Attempted)
		assert.Equal(t, 1, result.Succeeded)
		assert.True(t, result.FullySuccessful())
	})

	t.Run("custom prefix", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{
			group("g1", "Ads"),
			group("g2", "XX-Social"),
		}}
		ops := NewOperations(api, zerolog.Nop())
		ops.SetPrefix("XX-")

		result := ops.RenameProfile(context.Background(), "abc")

		require.Len(t, api.renames, 1)
		assert.Equal(t, "XX-Ads", api.renames[0].newName)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestFolderIndex(t *testing.T) {
	t.Run("trims names and skips incomplete records", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{
			group("g1", "  Ads  "),
			group("g2", "   "), // name empty after trimming
			group("", "Orphan"),
		}}
		ops := NewOperations(api, zerolog.Nop())

		index := ops.FolderIndex(context.Background(), "abc")

		assert.Equal(t, map[string]string{"Ads": "g1"}, index)
	})

	t.Run("duplicate names last write wins", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{
			group("g1", "Ads"),
			group("g2", "Ads "),
		}}
		ops := NewOperations(api, zerolog.Nop())

		index := ops.FolderIndex(context.Background(), "abc")

		assert.Equal(t, map[string]string{"Ads": "g2"}, index)
	})

	t.Run("listing failure yields empty index", func(t *testing.T) {
		api := &fakeAPI{listErr: errors.New("boom")}
		ops := NewOperations(api, zerolog.Nop())

		index := ops.FolderIndex(context.Background(), "abc")

		assert.Empty(t, index)
	})
}

func TestRun(t *testing.T) {
	t.Run("tallies profiles independently", func(t *testing.T) {
		api := &fakeAPI{
			groups: []controld.Group{
				group("g1", "Ads"),
				group("g2", "Trackers"),
			},
			renameErr: map[string]error{"g2": errors.New("boom")},
		}
		ops := NewOperations(api, zerolog.Nop())

		result := ops.Run(context.Background(), []string{"abc", "def"})

		require.Len(t, result.Profiles, 2)
		assert.Equal(t, 0, result.Succeeded())
		assert.False(t, result.AllSuccessful())
		// Both profiles were still processed in full.
		assert.Len(t, api.renames, 4)
	})

	t.Run("all successful", func(t *testing.T) {
		api := &fakeAPI{groups: []controld.Group{group("g1", "Ads")}}
		ops := NewOperations(api, zerolog.Nop())

		result := ops.Run(context.Background(), []string{"abc", "def"})

		assert.Equal(t, 2, result.Succeeded())
		assert.True(t, result.AllSuccessful())
	})
}

func TestProfileResult(t *testing.T) {
	tests := []struct {
		name     string
		result   ProfileResult
		expected bool
	}{
		{"vacuous success", ProfileResult{}, true},
		{"all renames succeeded", ProfileResult{Attempted: 2, Succeeded: 2}, true},
		{"partial failure", ProfileResult{Attempted: 2, Succeeded: 1}, false},
		{"unexpected failure", ProfileResult{Failed: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.result.FullySuccessful())
		})
	}
}
