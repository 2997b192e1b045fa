package journal

import (
	"strings"
	"testing"

	"github.com/go-leo/solid/specification"
	"github.com/stretchr/testify/assert"
)

func TestJournalAdd(t *testing.T) {
	j, err := NewJournal("Dear Diary")
	assert.NoError(t, err)

	first := j.Add("I ate a bug")
	second := j.Add("I cried today")

	assert.Equal(t, 1, first.Sequence)
	assert.Equal(t, 2, second.Sequence)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	entries := j.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "1: I ate a bug", entries[0].String())
	assert.Equal(t, "2: I cried today", entries[1].String())
}

func TestJournalEmptyTitle(t *testing.T) {
	j, err := NewJournal("")
	assert.Nil(t, j)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestJournalEntriesIsCopy(t *testing.T) {
	j, err := NewJournal("Dear Diary")
	assert.NoError(t, err)
	j.Add("I ate a bug")

	entries := j.Entries()
	entries[0].Text = "mutated"
	assert.Equal(t, "I ate a bug", j.Entries()[0].Text)
}

func TestFilterEntries(t *testing.T) {
	j, err := NewJournal("Dear Diary")
	assert.NoError(t, err)
	j.Add("I ate a bug")
	j.Add("I cried today")
	j.Add("I ate a sandwich")

	aboutEating := specification.NewSpecification[Entry](func(e Entry) bool {
		return strings.Contains(e.Text, "ate")
	})
	got := specification.FilterBy(j.Entries(), aboutEating)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Sequence)
	assert.Equal(t, 3, got[1].Sequence)
}
