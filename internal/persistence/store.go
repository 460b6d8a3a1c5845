package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/osse101/CaseBox_Go/internal/concurrency"
	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/metrics"
)

// Source tells where a loaded payload came from.
type Source int

func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceBackup:
		return "backup"
	default:
		return "default"
	}
}

// LoadResult describes how Load resolved the payload.
type LoadResult struct {
	Source Source
	// Corrupt is set when a file existed but failed verification.
	Corrupt bool
}

// ChecksumStore persists one payload per file as "text\ndigest", keeping the
// previous generation in a ".bak" sibling.
type ChecksumStore[T any] struct {
	path       string
	backupPath string
	codec      Codec[T]
	locks      *concurrency.LockManager
	fs         fileSystem
	retryDelay time.Duration
}

// Option customises a ChecksumStore.
type Option func(*options)

type options struct {
	fs         fileSystem
	retryDelay time.Duration
}

func withFileSystem(fsys fileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// WithRetryDelay overrides MidRenameRetryDelay.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) { o.retryDelay = d }
}

// NewChecksumStore creates a store for path. locks may be shared between
// stores; nil gets a private manager.
func NewChecksumStore[T any](path string, codec Codec[T], locks *concurrency.LockManager, opts ...Option) *ChecksumStore[T] {
	o := options{fs: osFS{}, retryDelay: MidRenameRetryDelay}
	for _, opt := range opts {
		opt(&o)
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &ChecksumStore[T]{
		path:       path,
		backupPath: path + domain.BackupSuffix,
		codec:      codec,
		locks:      locks,
		fs:         o.fs,
		retryDelay: o.retryDelay,
	}
}

// Path returns the primary file path.
func (s *ChecksumStore[T]) Path() string { return s.path }

// BackupPath returns the backup file path.
func (s *ChecksumStore[T]) BackupPath() string { return s.backupPath }

// Save writes payload as the new primary generation. The old primary, if any,
// becomes the backup. On failure the backup is moved back into place.
func (s *ChecksumStore[T]) Save(ctx context.Context, payload T) error {
	return s.locks.WithLock(s.path, func() error {
		return s.saveLocked(ctx, payload, true)
	})
}

// Load returns the newest payload that verifies. It never fails: when neither
// file verifies it returns the codec default and reports Corrupt.
func (s *ChecksumStore[T]) Load(ctx context.Context) (T, LoadResult) {
	var (
		payload T
		res     LoadResult
	)
	_ = s.locks.WithLock(s.path, func() error {
		payload, res = s.loadLocked(ctx)
		return nil
	})
	return payload, res
}

func (s *ChecksumStore[T]) saveLocked(ctx context.Context, payload T, rotate bool) error {
	log := logger.FromContext(ctx)
	name := filepath.Base(s.path)

	text, err := s.codec.Encode(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextEncode, err)
	}
	content := []byte(Frame(text))

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir); err != nil {
		metrics.PersistFailures.WithLabelValues(name).Inc()
		return fmt.Errorf("%w: %s: %v", domain.ErrIO, ErrContextWriteTemp, err)
	}

	tmp, err := s.fs.WriteTemp(dir, name+domain.TempSuffix+"*", content)
	if err != nil {
		metrics.PersistFailures.WithLabelValues(name).Inc()
		return fmt.Errorf("%w: %s: %v", domain.ErrIO, ErrContextWriteTemp, err)
	}

	rotated := false
	if rotate && s.fs.Exists(s.path) {
		if err := s.fs.Rename(s.path, s.backupPath); err != nil {
			_ = s.fs.Remove(tmp)
			metrics.PersistFailures.WithLabelValues(name).Inc()
			return fmt.Errorf("%w: %s: %v", domain.ErrIO, ErrContextRotateBackup, err)
		}
		rotated = true
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		if rotated {
			if rerr := s.fs.Rename(s.backupPath, s.path); rerr != nil {
				log.Error(LogMsgRollbackFailed, LogFieldPath, s.path, LogFieldError, rerr)
			}
		}
		metrics.PersistFailures.WithLabelValues(name).Inc()
		return fmt.Errorf("%w: %s: %v", domain.ErrIO, ErrContextReplace, err)
	}

	log.Debug(LogMsgSaved, LogFieldPath, s.path, LogFieldBytes, len(content))
	return nil
}

func (s *ChecksumStore[T]) loadLocked(ctx context.Context) (T, LoadResult) {
	log := logger.FromContext(ctx)
	name := filepath.Base(s.path)

	payload, perr := s.readVerified(s.path)
	if perr == nil {
		return payload, LoadResult{Source: SourcePrimary}
	}
	primaryMissing := errors.Is(perr, fs.ErrNotExist)

	if primaryMissing && s.fs.Exists(s.backupPath) {
		// A save may be between its two renames; give it a moment.
		time.Sleep(s.retryDelay)
		if payload, err := s.readVerified(s.path); err == nil {
			return payload, LoadResult{Source: SourcePrimary}
		}
	}

	backup, berr := s.readVerified(s.backupPath)
	if berr == nil {
		log.Warn(LogMsgRecoveredFromBackup, LogFieldPath, s.path, LogFieldError, perr)
		// The backup stays as it is; only the primary is rewritten.
		if err := s.saveLocked(ctx, backup, false); err != nil {
			log.Error(LogMsgHealFailed, LogFieldPath, s.path, LogFieldError, err)
		}
		metrics.IntegrityRecoveries.WithLabelValues(name, SourceBackup.String()).Inc()
		return backup, LoadResult{Source: SourceBackup, Corrupt: !primaryMissing}
	}

	if primaryMissing && errors.Is(berr, fs.ErrNotExist) {
		return s.codec.Default(), LoadResult{Source: SourceDefault}
	}

	log.Error(LogMsgBothCorrupt, LogFieldPath, s.path, LogFieldBackup, s.backupPath, LogFieldError, errors.Join(perr, berr))
	metrics.IntegrityRecoveries.WithLabelValues(name, SourceDefault.String()).Inc()
	return s.codec.Default(), LoadResult{Source: SourceDefault, Corrupt: true}
}

func (s *ChecksumStore[T]) readVerified(path string) (T, error) {
	var zero T

	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return zero, err
	}
	text, err := Unframe(string(raw))
	if err != nil {
		return zero, err
	}
	payload, err := s.codec.Decode(text)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %v", domain.ErrIntegrity, ErrContextDecode, err)
	}
	return payload, nil
}
