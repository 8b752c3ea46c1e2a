package interp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/recipelang/recipelang/internal/util"
)

// Transcript records the accepted statements of an interactive session
// as a replayable .rl file, so a recipe cooked up in the shell can be
// re-run later with `rl run`.
type Transcript struct {
	id    string
	path  string
	lines []string
}

// NewTranscript creates a transcript file under dir (one file per
// session, named by a fresh session ID). An empty dir selects the
// default location under the user config directory.
func NewTranscript(dir string) (*Transcript, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving transcript directory")
		}
		dir = filepath.Join(base, "recipelang", "sessions")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating transcript directory %s", dir)
	}

	id := uuid.NewString()
	t := &Transcript{
		id:   id,
		path: filepath.Join(dir, id+".rl"),
		lines: []string{
			"# recipelang session " + id,
			"# started " + time.Now().Format(time.RFC3339),
		},
	}
	if err := t.flush(); err != nil {
		return nil, err
	}
	return t, nil
}

// ID returns the session identifier.
func (t *Transcript) ID() string { return t.id }

// Path returns the transcript file location.
func (t *Transcript) Path() string { return t.path }

// Record appends one canonical statement line and rewrites the file.
// The file is valid RecipeLang source at every point in time.
func (t *Transcript) Record(line string) error {
	t.lines = append(t.lines, line)
	return t.flush()
}

func (t *Transcript) flush() error {
	data := strings.Join(t.lines, "\n") + "\n"
	if err := util.AtomicWriteFile(t.path, []byte(data), 0644); err != nil {
		return errors.Wrapf(err, "writing transcript %s", t.path)
	}
	return nil
}

// String implements fmt.Stringer for log-friendly display.
func (t *Transcript) String() string {
	return fmt.Sprintf("session %s (%d statements)", t.id, len(t.lines)-2)
}
