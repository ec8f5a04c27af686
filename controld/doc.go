// Package controld provides a client for the Control D profile API.
//
// The client covers the small surface this tool needs: listing the groups
// (folders) of a profile and renaming a single group. Every request carries
// bearer authentication and is retried with bounded exponential backoff
// before the failure is surfaced to the caller.
//
// Create a client with your API token:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := controld.NewClient(
//		"your-api-token",
//		logger,
//		controld.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	groups, err := client.ListGroups(ctx, "profile-id")
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the captured response body, with helper methods for classification:
//
//	if apiErr, ok := err.(*controld.APIError); ok && apiErr.IsUnauthorized() {
//		// bad token
//	}
package controld
