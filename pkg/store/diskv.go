package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/xptrack/pkg/challenge"
	"tableflip.dev/xptrack/pkg/history"
)

const (
	// DocumentKey names the single file holding all tracker state.
	DocumentKey = "xp_tracker_data.json"

	// DefaultXPGoal applies when a document or a new tracker has no goal.
	DefaultXPGoal = 50000

	tempDir = ".tmp"
)

// ErrNotFound is returned by Read when no document has been written yet.
var ErrNotFound = errors.New("store: no saved tracker state")

// Document is the persisted form of the whole tracker, rewritten on every
// mutation.
type Document struct {
	Challenges *challenge.Set   `json:"challenges"`
	TotalXP    int              `json:"total_xp"`
	XPGoal     int              `json:"xp_goal"`
	History    []history.Record `json:"history"`
}

// UnmarshalJSON fills absent fields with tracker defaults.
func (d *Document) UnmarshalJSON(b []byte) error {
	type raw Document
	r := raw{XPGoal: DefaultXPGoal}
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	if r.Challenges == nil {
		r.Challenges = &challenge.Set{}
	}
	*d = Document(r)
	return nil
}

// Persistence defines the persistence contract for tracker state.
type Persistence interface {
	Read() (*Document, error)
	Write(doc *Document) error
	// Location is the path of the document on disk.
	Location() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	// With TempDir set diskv writes to a temp file and renames it into place.
	// The read cache stays off so a watcher sees writes from other processes.
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      filepath.Join(basePath, tempDir),
		PathPerm:     0o755,
		FilePerm:     0o644,
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Location() string {
	return filepath.Join(p.basePath, DocumentKey)
}

func (p *persistence) Read() (*Document, error) {
	val, err := p.d.Read(DocumentKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", p.Location(), err)
	}
	doc := &Document{}
	if err := json.Unmarshal(val, doc); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", p.Location(), err)
	}
	return doc, nil
}

func (p *persistence) Write(doc *Document) error {
	if doc == nil {
		return errors.New("store: nil document")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := p.d.Write(DocumentKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.Location(), err)
	}
	return nil
}
