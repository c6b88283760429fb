// Package recordstore persists a collection of JSON records in a single file.
//
// Reads never fail: an absent or unreadable file, or one whose top level is
// not a list of records, yields an empty collection and a warning. Records
// that fail to decode are skipped one by one so the rest survive the next
// write. Writes go through a temp file in the same directory followed by a
// rename, so readers observe either the previous committed collection or
// the new one, never a partial file.
//
// Store holds no lock. Owners serialize their read-modify-write sequences.
package recordstore

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"service-desk/internal/infra"
	"service-desk/internal/pkg/errs"

	"github.com/tidwall/jsonc"
)

var errUnexpectedShape = errs.New("expected a JSON array or a wrapping object")

type Store[T any] struct {
	path    string
	listKey string
	keyed   func(key string, rec *T)
	logger  *slog.Logger
}

type Option[T any] func(*Store[T])

// WithListKey accepts {"<key>": [...]} documents in addition to bare arrays.
func WithListKey[T any](key string) Option[T] {
	return func(s *Store[T]) { s.listKey = key }
}

// WithKeyedObjects accepts {"<key>": {...}, ...} documents. fill receives
// each map key so the record can carry it; records come back in key order.
func WithKeyedObjects[T any](fill func(key string, rec *T)) Option[T] {
	return func(s *Store[T]) { s.keyed = fill }
}

func New[T any](path string, logger *slog.Logger, opts ...Option[T]) *Store[T] {
	s := &Store[T]{path: path, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[T]) Path() string {
	return s.path
}

func (s *Store[T]) Read() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("record file unreadable, starting empty", "path", s.path, "error", err)
		}
		return []T{}
	}

	records, err := s.decode(data)
	if err != nil {
		s.logger.Warn("record file has unexpected format, starting empty", "path", s.path, "error", err)
		return []T{}
	}
	return records
}

func (s *Store[T]) decode(data []byte) ([]T, error) {
	data = bytes.TrimSpace(jsonc.ToJSON(data))
	if len(data) == 0 {
		return []T{}, nil
	}

	switch data[0] {
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, err
		}
		records := make([]T, 0, len(raws))
		for i, raw := range raws {
			var rec T
			if err := json.Unmarshal(raw, &rec); err != nil {
				s.logger.Warn("skipping malformed record", "path", s.path, "index", i, "error", err)
				continue
			}
			records = append(records, rec)
		}
		return records, nil
	case '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if s.listKey != "" {
			if raw, ok := doc[s.listKey]; ok && isArray(raw) {
				return s.decode(raw)
			}
		}
		if s.keyed != nil {
			return s.decodeKeyed(doc), nil
		}
	}
	return nil, errUnexpectedShape
}

func (s *Store[T]) decodeKeyed(doc map[string]json.RawMessage) []T {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]T, 0, len(keys))
	for _, k := range keys {
		var rec T
		if err := json.Unmarshal(doc[k], &rec); err != nil {
			s.logger.Warn("skipping malformed record", "path", s.path, "key", k, "error", err)
			continue
		}
		s.keyed(k, &rec)
		records = append(records, rec)
	}
	return records
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// Write replaces the file with records. On failure the temp file is removed
// and the previously committed file is left as it was.
func (s *Store[T]) Write(records []T) error {
	if s.path == "" {
		return infra.WrapStorageErr(s.logger, infra.KindNoPath, "", "no file path configured", nil)
	}
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "encoding records", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "creating data directory", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "creating temp file", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "writing temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "closing temp file", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return infra.WrapStorageErr(s.logger, infra.KindWriteFailure, s.path, "replacing record file", err)
	}
	success = true

	// Best effort: make the rename durable across power loss.
	if d, err := os.Open(dir); err == nil {
		d.Sync()
		d.Close()
	}
	return nil
}
