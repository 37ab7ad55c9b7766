package agent

import (
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pmalik/teamdinner/internal/memory"
)

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmails returns the unique email addresses found in text, in order
// of first appearance.
func ExtractEmails(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range emailRe.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}

// Session holds the per-conversation state: the history, the known team
// member emails, and the tool result caches. The team member set only grows;
// emails mentioned anywhere in user input are added automatically.
//
// All accessors are mutex-guarded. A concurrent embedder must still run one
// turn at a time per session to keep the conversation ordering coherent.
type Session struct {
	id     string
	conv   Conversation
	caches *memory.Store

	mu      sync.RWMutex
	team    []string
	teamSet map[string]bool
}

// NewSession creates a session seeded with the given team members.
func NewSession(initialTeam []string) *Session {
	s := &Session{
		id:      uuid.NewString(),
		teamSet: make(map[string]bool),
		caches:  memory.NewStore(),
	}
	s.AddTeamMembers(initialTeam)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Conversation returns the session history.
func (s *Session) Conversation() *Conversation {
	return &s.conv
}

// Caches returns the tool result cache store.
func (s *Session) Caches() *memory.Store {
	return s.caches
}

// TeamMembers returns a copy of the known team member emails in the order
// they were added.
func (s *Session) TeamMembers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.team))
	copy(out, s.team)
	return out
}

// AddTeamMembers adds emails to the team member set, skipping duplicates
// case-insensitively. It returns the emails that were actually new.
func (s *Session) AddTeamMembers(emails []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var added []string
	for _, email := range emails {
		key := strings.ToLower(email)
		if s.teamSet[key] {
			continue
		}
		s.teamSet[key] = true
		s.team = append(s.team, email)
		added = append(added, email)
	}
	return added
}

// AbsorbEmails scans free text for email addresses and adds them to the team
// member set, returning the newly added ones.
func (s *Session) AbsorbEmails(text string) []string {
	return s.AddTeamMembers(ExtractEmails(text))
}
