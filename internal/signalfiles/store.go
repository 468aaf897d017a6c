// Package signalfiles keeps raw measurement samples out of the relational
// store: each patient gets a folder, each day a CSV file, and handlers
// append synthesized sample rows to it.
package signalfiles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Header is the first line of every signal file.
const Header = "timestamp,ecg,eda"

const (
	filePrefix = "signals_"
	dateLayout = "2006-01-02"
)

// Store is a directory-backed CSV store. All writes to a given file go
// through a per-file mutex so concurrent appenders cannot interleave rows
// or write the header twice.
type Store struct {
	root  string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(root string) *Store {
	return &Store{root: root, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) fileLock(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[path]
	if !ok {
		l = &sync.Mutex{}
		s.locks[path] = l
	}
	return l
}

func (s *Store) todayPath(folder string) string {
	name := filePrefix + time.Now().Format(dateLayout) + ".csv"
	return filepath.Join(s.root, folder, name)
}

// AppendResult identifies one completed append so it can be undone with
// Discard if a later step of the caller's operation fails.
type AppendResult struct {
	Path    string
	offset  int64
	created bool
}

// AppendRows appends the given rows to today's file for folder, creating
// the folder and writing the header line first if the file is new. Returns
// the absolute file path used.
func (s *Store) AppendRows(folder string, rows []string) (*AppendResult, error) {
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path, err := filepath.Abs(s.todayPath(folder))
	if err != nil {
		return nil, err
	}

	lock := s.fileLock(path)
	lock.Lock()
	defer lock.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	res := &AppendResult{Path: path, offset: info.Size(), created: info.Size() == 0}

	var b strings.Builder
	if res.created {
		b.WriteString(Header)
		b.WriteByte('\n')
	}
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return nil, err
	}
	return res, nil
}

// Discard undoes a previous append: the file is truncated back to its
// pre-append size, or removed entirely if the append created it. Used to
// compensate the CSV half of a measurement write when the metadata insert
// fails.
func (s *Store) Discard(res *AppendResult) error {
	lock := s.fileLock(res.Path)
	lock.Lock()
	defer lock.Unlock()

	if res.created {
		return os.Remove(res.Path)
	}
	return os.Truncate(res.Path, res.offset)
}

// File is a loaded signal file: the header line plus the data rows in
// file order.
type File struct {
	Header string   `json:"header"`
	Rows   []string `json:"rows"`
}

// LoadToday loads the current day's file for folder. A missing or empty
// file yields (nil, nil), not an error.
func (s *Store) LoadToday(folder string) (*File, error) {
	path, err := filepath.Abs(s.todayPath(folder))
	if err != nil {
		return nil, err
	}
	return s.LoadByPath(path)
}

// LoadByPath loads a signal file directly by path, for reading files
// written on earlier days. A missing or empty file yields (nil, nil).
func (s *Store) LoadByPath(path string) (*File, error) {
	lock := s.fileLock(path)
	lock.Lock()
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, nil
	}
	return &File{Header: lines[0], Rows: lines[1:]}, nil
}
