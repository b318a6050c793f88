package domain

import (
	"errors"
	"fmt"
	"time"
)

const maxSnapshotNoteLength = 500

// Snapshot is one recorded parity run: the reports collected for every
// discovered theme at a point in time.
type Snapshot struct {
	ID        int64         `db:"id" json:"id"`
	Note      string        `db:"note" json:"note,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	Reports   []ThemeReport `json:"reports"`
}

func NewSnapshot(note string, reports []ThemeReport) *Snapshot {
	return &Snapshot{
		Note:      note,
		CreatedAt: time.Now(),
		Reports:   reports,
	}
}

func (s *Snapshot) Validate() error {
	if len(s.Note) > maxSnapshotNoteLength {
		return fmt.Errorf("note cannot exceed %d characters", maxSnapshotNoteLength)
	}
	if len(s.Reports) == 0 {
		return errors.New("snapshot must contain at least one theme report")
	}
	return nil
}

// GetDisplayText is a one-line summary for listings.
func (s *Snapshot) GetDisplayText() string {
	text := fmt.Sprintf("#%d  %s  %d themes", s.ID, s.CreatedAt.Format("2006-01-02 15:04"), len(s.Reports))
	if s.Note != "" {
		text += "  " + s.Note
	}
	return text
}
