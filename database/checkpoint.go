package database

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bytom/timepart/datefmt"
	"github.com/bytom/timepart/version"
)

const logModule = "leveldb"

var (
	// CheckpointPrefix represent the namespace of checkpoints in db
	CheckpointPrefix = []byte("CP:")

	// ErrNotFound is returned for unknown checkpoint names.
	ErrNotFound = errors.New("checkpoint not found")
	// ErrIncompatible is returned for checkpoints written by an incompatible version.
	ErrIncompatible = errors.New("checkpoint written by incompatible version")
)

// Checkpoint is the last partition label a named consumer has handled.
type Checkpoint struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Template  string    `json:"template"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   string    `json:"version"`
}

func calcCheckpointKey(name string) []byte {
	return append(append([]byte{}, CheckpointPrefix...), name...)
}

// A CheckpointStore keeps checkpoints in leveldb.
type CheckpointStore struct {
	db    *leveldb.DB
	clock clockwork.Clock
}

// Open opens, or creates, the store under dir.
func Open(dir string) (*CheckpointStore, error) {
	db, err := leveldb.OpenFile(filepath.Join(dir, "checkpoints.db"), nil)
	if err != nil {
		return nil, errors.Wrap(err, "open checkpoint db")
	}
	return NewCheckpointStore(db, clockwork.NewRealClock()), nil
}

// OpenMemory opens a store that lives only in memory.
func OpenMemory(clock clockwork.Clock) (*CheckpointStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return NewCheckpointStore(db, clock), nil
}

// NewCheckpointStore wraps an open leveldb handle.
func NewCheckpointStore(db *leveldb.DB, clock clockwork.Clock) *CheckpointStore {
	return &CheckpointStore{db: db, clock: clock}
}

// Close releases the underlying db.
func (s *CheckpointStore) Close() error {
	return s.db.Close()
}

// Get returns the checkpoint stored under name.
func (s *CheckpointStore) Get(name string) (*Checkpoint, error) {
	data, err := s.db.Get(calcCheckpointKey(name), nil)
	if err == leveldb.ErrNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	} else if err != nil {
		return nil, err
	}

	cp := &Checkpoint{}
	if err := json.Unmarshal(data, cp); err != nil {
		return nil, errors.Wrapf(err, "decode checkpoint %q", name)
	}

	if ok, err := version.CompatibleWith(cp.Version); err != nil || !ok {
		return nil, errors.Wrapf(ErrIncompatible, "%q written by %q", name, cp.Version)
	}
	return cp, nil
}

// Set stores label under name. The label must match f.
func (s *CheckpointStore) Set(name string, f *datefmt.DateFormat, label string) (*Checkpoint, error) {
	if !f.Matches(label) {
		return nil, errors.Wrapf(datefmt.ErrNoMatch, "%q", label)
	}

	cp := &Checkpoint{
		Name:      name,
		Label:     label,
		Template:  f.Template().Raw(),
		UpdatedAt: s.clock.Now().UTC(),
		Version:   version.Version,
	}
	data, err := json.Marshal(cp)
	if err != nil {
		return nil, err
	}

	if err := s.db.Put(calcCheckpointKey(name), data, nil); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"module": logModule, "name": name, "label": label}).Debug("checkpoint saved")
	return cp, nil
}

// Advance moves the checkpoint under name forward by deltaSeconds.
func (s *CheckpointStore) Advance(name string, f *datefmt.DateFormat, deltaSeconds int64) (*Checkpoint, error) {
	cp, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	next, err := f.NextPartition(cp.Label, deltaSeconds)
	if err != nil {
		return nil, err
	}
	return s.Set(name, f, next)
}

// Delete removes the checkpoint under name.
func (s *CheckpointStore) Delete(name string) error {
	return s.db.Delete(calcCheckpointKey(name), nil)
}

// List returns every checkpoint ordered by name.
func (s *CheckpointStore) List() ([]*Checkpoint, error) {
	iter := s.db.NewIterator(util.BytesPrefix(CheckpointPrefix), nil)
	defer iter.Release()

	var checkpoints []*Checkpoint
	for iter.Next() {
		cp := &Checkpoint{}
		if err := json.Unmarshal(iter.Value(), cp); err != nil {
			return nil, errors.Wrapf(err, "decode checkpoint %q", iter.Key())
		}
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, iter.Error()
}
