package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FilePersister mirrors the save-on-every-mutation, load-on-startup
// pattern: the whole store is written as one JSON file.
type FilePersister struct {
	path string
	log  *zap.Logger
}

func NewFilePersister(path string, log *zap.Logger) *FilePersister {
	return &FilePersister{path: path, log: log}
}

// Load reads the snapshot file. A missing file is not an error: the
// store simply starts empty.
func (p *FilePersister) Load() (Snapshot, error) {
	var snap Snapshot
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return snap, nil
		}
		return snap, fmt.Errorf("read snapshot %s: %w", p.path, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot %s: %w", p.path, err)
	}
	return snap, nil
}

// Save writes the snapshot atomically (tmp file + rename). Write errors
// are logged, not returned: persistence must never fail a mutation that
// already succeeded in memory.
func (p *FilePersister) Save(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		p.log.Error("marshal snapshot", zap.Error(err))
		return
	}

	tmp := p.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		p.log.Error("create snapshot dir", zap.Error(err))
		return
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		p.log.Error("write snapshot", zap.String("path", tmp), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, p.path); err != nil {
		p.log.Error("rename snapshot", zap.String("path", p.path), zap.Error(err))
	}
}

// Attach restores the store from disk and registers Save as the
// mutation hook.
func (p *FilePersister) Attach(s *Store) error {
	snap, err := p.Load()
	if err != nil {
		return err
	}
	s.RestoreSnapshot(snap)
	s.OnMutate(p.Save)
	return nil
}
