package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Control D",
	Long:  `Test the connection to the Control D API and display the folder count for each configured profile.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	fmt.Println("Testing connection to Control D...")
	if err := client.TestConnection(ctx, cfg.Profiles[0]); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	fmt.Println("\nConfigured profiles:")
	for _, profileID := range cfg.Profiles {
		groups, err := client.ListGroups(ctx, profileID)
		if err != nil {
			return fmt.Errorf("failed to list folders for profile %s: %w", profileID, err)
		}
		fmt.Printf("  • %s: %d folders\n", profileID, len(groups))
	}

	return nil
}
