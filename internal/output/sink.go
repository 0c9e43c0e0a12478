/*
PURPOSE:
  Persists dimension tables, one file per table per format.

REQUIREMENTS:
  User-specified:
  - Each table is written independently. A failed write is reported
    but does not stop the other tables.

  Implementation-discovered:
  - Tables are written in parallel with a bounded errgroup.
  - An optional manifest records what a run produced.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.Table

ERROR HANDLING:
  - Per-table errors are logged and joined into the returned error.
  - Output directory creation failure is returned immediately.

IMPLEMENTATION RULES:
  - Workers never return an error to the group; that would cancel siblings.

USAGE:
  sink := &output.Sink{Dir: "out", Formats: []output.Format{output.FormatText}}
  written, err := sink.WriteAll(ctx, tables)

SELF-HEALING INSTRUCTIONS:
  - If files are missing, check the logged per-table errors first.

RELATED FILES:
  - internal/output/format.go

MAINTENANCE:
  - None.
*/

package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

const defaultConcurrency = 4

// Sink writes tables into Dir as <Prefix><table>.<format>.
type Sink struct {
	Dir         string
	Prefix      string
	Formats     []Format
	Concurrency int
}

// Written records one file produced by a Sink.
type Written struct {
	Table  string `json:"table"`
	Format Format `json:"format"`
	Path   string `json:"path"`
}

// Path returns the file a table is written to in format f.
func (s *Sink) Path(table string, f Format) string {
	return filepath.Join(s.Dir, s.Prefix+table+"."+string(f))
}

// WriteAll writes every table in every configured format. It returns the
// files that were written, sorted by path, and any write errors joined.
func (s *Sink) WriteAll(ctx context.Context, tables []model.Table) ([]Written, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", s.Dir, err)
	}

	limit := s.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var (
		mu      sync.Mutex
		written []Written
		errs    []error
	)
	for _, t := range tables {
		t := t
		for _, f := range s.Formats {
			f := f
			path := s.Path(t.Name(), f)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				err := WriteFile(path, f, t.Dimensions())

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					Logger.Error("Failed to write table", "table", t.Name(), "path", path, "error", err)
					errs = append(errs, fmt.Errorf("%s: %w", t.Name(), err))
					return nil
				}
				Logger.Debug("Wrote table", "table", t.Name(), "path", path)
				written = append(written, Written{Table: t.Name(), Format: f, Path: path})
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	sort.Slice(written, func(i, j int) bool { return written[i].Path < written[j].Path })
	return written, errors.Join(errs...)
}

// WriteFile creates path and writes dims to it in format f.
func WriteFile(path string, f Format, dims []model.Dimension) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, f, dims); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Manifest describes the output of one run.
type Manifest struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Parameters  string    `json:"parameters"`
	Files       []Written `json:"files"`
}

// NewManifest stamps a manifest with a fresh run ID.
func NewManifest(parameters string, files []Written) Manifest {
	return Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Parameters:  parameters,
		Files:       files,
	}
}

// WriteManifest writes m as manifest.json in the sink directory.
func (s *Sink) WriteManifest(m Manifest) (string, error) {
	path := filepath.Join(s.Dir, s.Prefix+"manifest.json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := encodeJSON(f, m); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
