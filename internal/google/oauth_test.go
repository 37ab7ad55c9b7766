package google

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestGetAuthURL(t *testing.T) {
	url := GetAuthURL()
	if url == "" {
		t.Fatal("GetAuthURL returned empty string")
	}
	if !strings.Contains(url, "accounts.google.com") {
		t.Errorf("auth URL %q does not point at Google", url)
	}
	if !strings.Contains(url, "calendar") {
		t.Errorf("auth URL %q does not request the calendar scope", url)
	}
}

func TestGetOAuthConfigScopes(t *testing.T) {
	conf := GetOAuthConfig()
	if len(conf.Scopes) == 0 {
		t.Fatal("OAuth config has no scopes")
	}
	found := false
	for _, s := range conf.Scopes {
		if s == "https://www.googleapis.com/auth/calendar" {
			found = true
		}
	}
	if !found {
		t.Error("calendar scope missing from OAuth config")
	}
}

func TestNewHTTPClientForcesHTTP1(t *testing.T) {
	client := NewHTTPClient(context.Background(), &oauth2.Token{AccessToken: "token"})
	if client == nil {
		t.Fatal("NewHTTPClient returned nil")
	}

	transport, ok := client.Transport.(*oauth2.Transport)
	if !ok {
		t.Fatalf("transport = %T, want *oauth2.Transport", client.Transport)
	}
	base, ok := transport.Base.(*http.Transport)
	if !ok {
		t.Fatalf("base transport = %T, want *http.Transport", transport.Base)
	}
	if base.ForceAttemptHTTP2 {
		t.Error("HTTP/2 must be disabled for Google API clients")
	}
}

func TestHasTokenDoesNotPanic(t *testing.T) {
	// Value depends on the environment; only assert it is callable.
	_ = HasToken()
	_ = NewFileTokenProvider().HasToken()
}
