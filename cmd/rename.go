package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Add the prefix to every folder that is missing it",
	Long: `Rename all folders across the configured profiles, prepending the
configured prefix to every folder name that does not already start with it.
Already-prefixed folders are skipped. A failed rename does not stop the
remaining folders or profiles from being processed.`,
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logger.Info().
		Str("prefix", cfg.Rename.Prefix).
		Int("profiles", len(cfg.Profiles)).
		Bool("dry_run", cfg.Rename.DryRun).
		Msg("Starting folder rename")

	result := operations.Run(ctx, cfg.Profiles)

	// Display results
	fmt.Println()
	for _, profile := range result.Profiles {
		marker := "✓"
		if !profile.FullySuccessful() {
			marker = "✗"
		}
		fmt.Printf("%s %s: %d/%d renamed, %d already prefixed\n",
			marker, profile.ProfileID, profile.Succeeded, profile.Attempted, profile.Skipped)
	}
	fmt.Printf("\n%d/%d profiles fully successful\n", result.Succeeded(), len(result.Profiles))

	if !result.AllSuccessful() {
		return fmt.Errorf("%d of %d profiles were not fully successful",
			len(result.Profiles)-result.Succeeded(), len(result.Profiles))
	}

	return nil
}
