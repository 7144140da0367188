package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yungbote/registry-ingest/internal/extract"
	"github.com/yungbote/registry-ingest/internal/normalize"
)

// PersistenceError reports a storage fault outside the intended uniqueness
// guard: connectivity loss, a foreign-key violation, a constraint the
// upsert did not target. The owning document's transaction is rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

const pgForeignKeyViolation = "23503"

func classifyPersistError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		op = fmt.Sprintf("%s (foreign key %s)", op, pgErr.ConstraintName)
	}
	return &PersistenceError{Op: op, Err: err}
}

// FailureKind buckets per-document failures for the batch summary.
type FailureKind string

const (
	FailureKindMalformed         FailureKind = "malformed_document"
	FailureKindDateNormalization FailureKind = "date_normalization"
	FailureKindPersistence       FailureKind = "persistence"
	FailureKindTimeout           FailureKind = "timeout"
)

// DocumentFailure is one failed document and why.
type DocumentFailure struct {
	Path string
	Kind FailureKind
	Err  error
}

// Summary is the outcome of one batch run. Skipped counts documents never
// started because the run was cancelled.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
	Failures  []DocumentFailure
}

func classifyFailure(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureKindTimeout
	}
	var persistErr *PersistenceError
	if errors.As(err, &persistErr) {
		return FailureKindPersistence
	}
	var dateErr *normalize.DateError
	if errors.As(err, &dateErr) {
		return FailureKindDateNormalization
	}
	var docErr *extract.DocumentError
	if errors.As(err, &docErr) {
		return FailureKindMalformed
	}
	// Unreadable files and missing statement numbers land here too: the
	// document is unusable, the batch goes on.
	return FailureKindMalformed
}
