package journal

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-leo/gox/slicex"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// journalDocument is the on-disk shape. The Journal type stays free of
// serialization concerns; changes here never touch it.
type journalDocument struct {
	Title   string          `json:"title"`
	Entries []entryDocument `json:"entries"`
}

type entryDocument struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	Text     string `json:"text"`
}

// PersistenceManager saves and loads journals. It is the only place
// that knows how journals are stored.
type PersistenceManager struct{}

func NewPersistenceManager() *PersistenceManager {
	return &PersistenceManager{}
}

// Save writes the journal to filename as JSON.
func (pm *PersistenceManager) Save(j *Journal, filename string) error {
	if j == nil {
		return ErrNilJournal
	}
	if filename == "" {
		return ErrEmptyFilename
	}
	doc := journalDocument{
		Title: j.Title(),
		Entries: slicex.Map[[]Entry, []entryDocument](j.Entries(), func(i int, e Entry) entryDocument {
			return entryDocument{ID: e.ID, Sequence: e.Sequence, Text: e.Text}
		}),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal journal %q: %w", j.Title(), err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save journal %q: %w", j.Title(), err)
	}
	return nil
}

// Load reads a journal previously written by Save.
func (pm *PersistenceManager) Load(filename string) (*Journal, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load journal: %w", err)
	}
	var doc journalDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode journal: %w", err)
	}
	j, err := NewJournal(doc.Title)
	if err != nil {
		return nil, err
	}
	j.entries = slicex.Map[[]entryDocument, []Entry](doc.Entries, func(i int, e entryDocument) Entry {
		return Entry{ID: e.ID, Sequence: e.Sequence, Text: e.Text}
	})
	return j, nil
}

// SaveText writes the journal as plain "N: entry" lines.
func (pm *PersistenceManager) SaveText(j *Journal, filename string) error {
	if j == nil {
		return ErrNilJournal
	}
	if filename == "" {
		return ErrEmptyFilename
	}
	lines := slicex.Map[[]Entry, []string](j.Entries(), func(i int, e Entry) string {
		return e.String()
	})
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("save journal %q: %w", j.Title(), err)
	}
	return nil
}
