package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sync"

	"gopkg.in/yaml.v3"
)

type Storer[T ValidatingSpec] interface {
	Get(string) T
	GetAll() map[string]T
}

// FileStore holds every asset found under a directory of a file system.
// JSON files hold one asset each; YAML files may hold several documents.
type FileStore[T ValidatingSpec] struct {
	fsys    fs.FS
	dir     string
	records map[string]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](fsys fs.FS, dir string) (*FileStore[T], error) {
	s := &FileStore[T]{
		fsys:    fsys,
		dir:     dir,
		records: map[string]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear existing records when loading
	s.records = map[string]T{}

	return fs.WalkDir(s.fsys, s.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		var assets []*Asset[T]
		var err error
		switch path.Ext(p) {
		case ".json":
			assets, err = s.loadJSON(p)
		case ".yaml", ".yml":
			assets, err = s.loadYAML(p)
		default:
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}

		for _, asset := range assets {
			err = asset.Validate()
			if err != nil {
				return fmt.Errorf("validating %s (%s): %w", path.Base(p), asset.Id(), err)
			}

			// Error if the key is already in use
			_, ok := s.records[asset.Id().String()]
			if ok {
				return fmt.Errorf("duplicate key detected: %s", asset.Id())
			}

			s.records[asset.Id().String()] = asset.Spec
		}

		return nil
	})
}

func (s *FileStore[T]) Get(id string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.records[id]
}

func (s *FileStore[T]) GetAll() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := make(map[string]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) loadJSON(p string) ([]*Asset[T], error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(data, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return []*Asset[T]{asset}, nil
}

func (s *FileStore[T]) loadYAML(p string) ([]*Asset[T], error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var assets []*Asset[T]
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	for {
		asset := &Asset[T]{}
		err = dec.Decode(asset)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unmarshalling asset %d: %w", len(assets)+1, err)
		}
		assets = append(assets, asset)
	}

	return assets, nil
}
