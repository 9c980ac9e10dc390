package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("report: run not found")

// Store keeps one JSON file per report under a base directory.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Save(r Report) (string, error) {
	if r.ID == "" {
		return "", fmt.Errorf("report: missing id")
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, r.ID+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteJSON(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// List returns every readable report, oldest first. Unreadable files are skipped.
func (s *Store) List() ([]Report, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}

	reports := make([]Report, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		r, err := s.read(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		reports = append(reports, *r)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.Before(reports[j].Timestamp)
	})
	return reports, nil
}

// Load accepts a full run id or a unique prefix of one.
func (s *Store) Load(id string) (*Report, error) {
	path := filepath.Join(s.baseDir, id+".json")
	if _, err := os.Stat(path); err == nil {
		return s.read(path)
	}

	matches, _ := filepath.Glob(filepath.Join(s.baseDir, id+"*.json"))
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return s.read(matches[0])
	}
	return nil, fmt.Errorf("report: id prefix %q is ambiguous (%d matches)", id, len(matches))
}

func (s *Store) read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
