package agent

import (
	"sync"
	"testing"
)

func TestConversationAppendAndCopy(t *testing.T) {
	var c Conversation
	c.Append(Turn{Role: RoleUser, Parts: []Part{TextPart{Text: "hi"}}})
	c.Append(Turn{Role: RoleModel, Parts: []Part{TextPart{Text: "hello"}}})

	if c.Len() != 2 {
		t.Fatalf("Len = %d", c.Len())
	}

	turns := c.Turns()
	turns[0] = Turn{Role: RoleTool}
	if c.Turns()[0].Role != RoleUser {
		t.Error("Turns must return a copy")
	}
}

func TestConversationConcurrentAppendAndRead(t *testing.T) {
	var c Conversation

	const appends = 16
	var wg sync.WaitGroup
	for i := 0; i < appends; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Append(Turn{Role: RoleUser, Parts: []Part{TextPart{Text: "hi"}}})
		}()
		go func() {
			defer wg.Done()
			_ = c.Turns()
			_ = c.Len()
		}()
	}
	wg.Wait()

	if c.Len() != appends {
		t.Errorf("Len = %d, want %d", c.Len(), appends)
	}
}

func TestConversationReset(t *testing.T) {
	var c Conversation
	c.Append(Turn{Role: RoleUser})
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len after Reset = %d", c.Len())
	}
}
