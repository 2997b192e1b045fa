package journal

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is a single dated-diary line. Sequence numbers start at 1 and
// follow insertion order.
type Entry struct {
	ID       string
	Sequence int
	Text     string
}

func (e Entry) String() string {
	return fmt.Sprintf("%d: %s", e.Sequence, e.Text)
}

// Journal collects entries under a title. Its single responsibility is
// entry bookkeeping; saving a journal belongs to PersistenceManager.
type Journal struct {
	title   string
	entries []Entry
}

func NewJournal(title string) (*Journal, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Journal{title: title}, nil
}

// Add appends an entry, assigning the next sequence number and a fresh id.
func (j *Journal) Add(text string) Entry {
	entry := Entry{
		ID:       uuid.NewString(),
		Sequence: len(j.entries) + 1,
		Text:     text,
	}
	j.entries = append(j.entries, entry)
	return entry
}

func (j *Journal) Title() string {
	return j.title
}

// Entries returns a copy of the entries in insertion order.
func (j *Journal) Entries() []Entry {
	return append([]Entry(nil), j.entries...)
}
