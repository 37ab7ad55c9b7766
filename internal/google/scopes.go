package google

// DefaultOAuthScopes are the Google OAuth scopes the assistant requires.
// Changing these invalidates cached tokens; users must re-authorize.
var DefaultOAuthScopes = []string{
	// Google Calendar: free/busy queries and event creation
	"https://www.googleapis.com/auth/calendar",
}
