// Package conversation models the chat transcript independently of any
// rendering surface, so the send flow can be exercised without a terminal.
package conversation

// Author identifies who produced a message.
type Author string

// The two message authors.
const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

// Message is one immutable transcript entry.
type Message struct {
	Author Author
	Text   string
}

// Handle identifies an appended entry for later removal.
type Handle int

/// Entry is a rendered transcript row: either a message or the transient
// typing indicator shown while a request is in flight.
type Entry struct {
	Handle  Handle
	Message Message
	Typing  bool
}

// Transcript is an append-only ordered list of entries. Messages are never
// removed once appended; only the typing indicator is transient.
type Transcript struct {
	entries []Entry
	nextID  Handle
}

// New creates an empty transcript.
func New() *Transcript {
	return &Transcript{nextID: 1}
}

// Append adds a message to the end of the transcript and returns its handle.
func (t *Transcript) Append(msg Message) Handle {
	h := t.nextID
	t.nextID++
	t.entries = append(t.entries, Entry{Handle: h, Message: msg})
	return h
}

// AppendTyping adds the typing indicator to the end of the transcript.
func (t *Transcript) AppendTyping() Handle {
	h := t.nextID
	t.nextID++
	t.entries = append(t.entries, Entry{Handle: h, Typing: true})
	return h
}

// Remove deletes the entry with the given handle. Removing an unknown or
// already-removed handle is a no-op.
func (t *Transcript) Remove(h Handle) {
	for i, e := range t.entries {
		if e.Handle == h {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a snapshot of the transcript in order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Messages returns the non-typing messages in order.
func (t *Transcript) Messages() []Message {
	var out []Message
	for _, e := range t.entries {
		if !e.Typing {
			out = append(out, e.Message)
		}
	}
	return out
}

// Len returns the number of entries, including a typing indicator if present.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// HasTyping reports whether a typing indicator is currently shown.
func (t *Transcript) HasTyping() bool {
	for _, e := range t.entries {
		if e.Typing {
			return true
		}
	}
	return false
}
