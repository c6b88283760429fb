package infra

import (
	"errors"
	"log/slog"

	"service-desk/internal/pkg/errs"
)

type StorageErrorKind string

// StorageError matches errs.ErrStorage and unwraps to the underlying
// filesystem or encoding error.
type StorageError struct {
	Kind StorageErrorKind
	Path string
	msg  string
	err  error // wrapped low-level error
}

func (e StorageError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.Path != "" {
		s += " (" + e.Path + ")"
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e StorageError) Unwrap() error {
	return e.err
}

func (e StorageError) Is(target error) bool {
	return target == errs.ErrStorage
}

func WrapStorageErr(slogger *slog.Logger, kind StorageErrorKind, path, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("path", path),
	}
	if err != nil {
		logArgs = append(logArgs, slog.Any("error", err))
	}

	slogger.Error("Storage error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StorageError{Kind: kind, Path: path, msg: msg, err: err}
}

func IsKind(err error, kind StorageErrorKind) bool {
	var e StorageError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindReadFailure   StorageErrorKind = "READ_FAILURE"
	KindDecodeFailure StorageErrorKind = "DECODE_FAILURE"
	KindWriteFailure  StorageErrorKind = "WRITE_FAILURE"
	KindNoPath        StorageErrorKind = "NO_PATH"
)
