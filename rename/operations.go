package rename

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hagezi/controld-renamer/controld"
)

// DefaultPrefix is prepended to folder names and doubles as the idempotence
// marker: a folder already starting with it is never renamed again.
const DefaultPrefix = "HA-"

// Operations handles the rename workflow on top of the Control D client
type Operations struct {
	client controld.API
	logger zerolog.Logger
	prefix string
	dryRun bool
}

// NewOperations creates a new Operations instance
func NewOperations(client controld.API, logger zerolog.Logger) *Operations {
	return &Operations{
		client: client,
		logger: logger,
		prefix: DefaultPrefix,
	}
}

// SetPrefix overrides the default folder prefix
func (o *Operations) SetPrefix(prefix string) {
	if prefix != "" {
		o.prefix = prefix
	}
}

// SetDryRun enables dry-run mode, logging renames without performing them
func (o *Operations) SetDryRun(dryRun bool) {
	o.dryRun = dryRun
}

// FolderIndex returns the current folder-name -> folder-id mapping for a
// profile. Listing failures are absorbed: the profile is treated as having
// no folders rather than aborting, so an empty map can mean either "no
// folders" or "listing failed" (the failure is logged).
func (o *Operations) FolderIndex(ctx context.Context, profileID string) map[string]string {
	groups, err := o.client.ListGroups(ctx, profileID)
	if err != nil {
		o.logger.Error().
			Err(err).
			Str("profile", profileID).
			Msg("Failed to list folders, treating profile as empty")
		return map[string]string{}
	}

	index := make(map[string]string, len(groups))
	for _, group := range groups {
		name := group.Name()
		id := group.ID()
		if name == "" || id == "" {
			continue
		}
		if existing, ok := index[name]; ok {
			// Names should be unique within a profile. Last one wins.
			o.logger.Warn().
				Str("profile", profileID).
				Str("folder", name).
				Str("replaced_id", existing).
				Str("kept_id", id).
				Msg("Duplicate folder name in listing")
		}
		index[name] = id
	}

	return index
}

// RenameProfile renames every folder in the profile that does not already
// carry the prefix. It never returns an error: failures are folded into the
// result so one profile cannot take down the rest of the run.
func (o *Operations) RenameProfile(ctx context.Context, profileID string) (result ProfileResult) {
	result.ProfileID = profileID

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().
				Interface("panic", r).
				Str("profile", profileID).
				Msg("Unexpected failure while processing profile")
			result.Failed = true
		}
	}()

	index := o.FolderIndex(ctx, profileID)
	if len(index) == 0 {
		o.logger.Info().Str("profile", profileID).Msg("No folders found")
		return result
	}

	// Partition once; the same set drives both the rename loop and the
	// success denominator.
	needsPrefix := make(map[string]string, len(index))
	for name, id := range index {
		if strings.HasPrefix(name, o.prefix) {
			result.Skipped++
			continue
		}
		needsPrefix[name] = id
	}
	result.Attempted = len(needsPrefix)

	for name, id := range needsPrefix {
		newName := o.prefix + name

		if o.dryRun {
			o.logger.Info().
				Str("profile", profileID).
				Str("folder_id", id).
				Msgf("[DRY RUN] Would rename folder '%s' to '%s'", name, newName)
			result.Succeeded++
			continue
		}

		if err := o.client.RenameGroup(ctx, profileID, id, newName); err != nil {
			o.logger.Error().
				Err(err).
				Str("profile", profileID).
				Str("folder", name).
				Str("folder_id", id).
				Msg("Failed to rename folder")
			continue
		}

		o.logger.Info().
			Str("profile", profileID).
			Str("folder_id", id).
			Msgf("Renamed folder '%s' to '%s'", name, newName)
		result.Succeeded++
	}

	o.logger.Info().
		Str("profile", profileID).
		Int("renamed", result.Succeeded).
		Int("attempted", result.Attempted).
		Int("skipped", result.Skipped).
		Msg("Profile processed")

	return result
}

// Run processes all profiles sequentially and returns the aggregate result
func (o *Operations) Run(ctx context.Context, profileIDs []string) RunResult {
	var run RunResult

	for _, profileID := range profileIDs {
		o.logger.Info().Str("profile", profileID).Msg("Starting rename for profile")
		run.Profiles = append(run.Profiles, o.RenameProfile(ctx, profileID))
	}

	o.logger.Info().
		Int("profiles_succeeded", run.Succeeded()).
		Int("profiles_total", len(run.Profiles)).
		Msg("All profiles processed")

	return run
}
