// Package artifact stores the CSV files generated by stock submissions in a
// flat downloads directory.
package artifact

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parlevel/stocktake-api/internal/core/domain"
	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// filenameFormat yields names like 20250107_183042.csv (UTC).
const filenameFormat = "20060102_150405"

type Store struct {
	dir string
}

// NewStore creates the downloads directory if absent and returns a Store
// over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create downloads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Write stores rows as a CSV file named after the submission's UTC
// timestamp. Two submissions within the same second would collide on that
// name; instead of silently overwriting, a short random suffix is appended
// to the later file's name.
func (s *Store) Write(ts time.Time, rows [][]string) (string, error) {
	name := ts.UTC().Format(filenameFormat) + ".csv"
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		name = ts.UTC().Format(filenameFormat) + "_" + suffix + ".csv"
		path = filepath.Join(s.dir, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create artifact: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close artifact: %w", err)
	}

	return name, nil
}

// List returns the stored *.csv files sorted by modification time, newest
// first.
func (s *Store) List() ([]ports.ArtifactInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read downloads dir: %w", err)
	}

	infos := make([]ports.ArtifactInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, ports.ArtifactInfo{
			Name:       entry.Name(),
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ModifiedAt.After(infos[j].ModifiedAt)
	})
	return infos, nil
}

// Open returns the named artifact for reading. Names containing path
// separators or lacking the .csv extension are rejected as not found, which
// also blocks escaping the downloads directory.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".csv") {
		return nil, domain.ErrArtifactNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	return f, nil
}
