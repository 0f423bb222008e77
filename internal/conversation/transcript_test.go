package conversation

import "testing"

func TestAppendOrdering(t *testing.T) {
	tr := New()
	tr.Append(Message{Author: AuthorUser, Text: "Hello"})
	tr.Append(Message{Author: AuthorBot, Text: "Hi there!"})
	tr.Append(Message{Author: AuthorUser, Text: "Bye"})

	msgs := tr.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	want := []Message{
		{AuthorUser, "Hello"},
		{AuthorBot, "Hi there!"},
		{AuthorUser, "Bye"},
	}
	for i, m := range want {
		if msgs[i] != m {
			t.Errorf("messages[%d] = %+v, want %+v", i, msgs[i], m)
		}
	}
}

func TestTypingIndicatorLifecycle(t *testing.T) {
	tr := New()
	tr.Append(Message{Author: AuthorUser, Text: "Hello"})
	h := tr.AppendTyping()

	if !tr.HasTyping() {
		t.Fatal("typing indicator should be present")
	}
	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}

	tr.Remove(h)
	if tr.HasTyping() {
		t.Error("typing indicator should be gone")
	}
	if got := len(tr.Messages()); got != 1 {
		t.Errorf("messages after removal = %d, want 1", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	tr := New()
	tr.Append(Message{Author: AuthorUser, Text: "keep me"})
	h := tr.AppendTyping()

	tr.Remove(h)
	tr.Remove(h) // second removal must be a no-op
	tr.Remove(Handle(9999))

	if tr.Len() != 1 {
		t.Errorf("Len = %d, want 1", tr.Len())
	}
	if tr.Messages()[0].Text != "keep me" {
		t.Error("wrong entry removed")
	}
}

func TestRemoveMiddleEntryKeepsOrder(t *testing.T) {
	tr := New()
	tr.Append(Message{Author: AuthorUser, Text: "first"})
	h := tr.AppendTyping()
	tr.Append(Message{Author: AuthorBot, Text: "second"})

	tr.Remove(h)

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Message.Text != "first" || entries[1].Message.Text != "second" {
		t.Errorf("order broken: %+v", entries)
	}
}

func TestEntriesIsASnapshot(t *testing.T) {
	tr := New()
	tr.Append(Message{Author: AuthorUser, Text: "Hello"})

	snap := tr.Entries()
	tr.Append(Message{Author: AuthorBot, Text: "Hi"})

	if len(snap) != 1 {
		t.Errorf("snapshot grew with the transcript: %d entries", len(snap))
	}
}
