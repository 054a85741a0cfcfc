package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/boki-app/boki_backend/internal/apperrors"
	"github.com/boki-app/boki_backend/internal/core/domain"
	portsrepo "github.com/boki-app/boki_backend/internal/core/ports/repositories"
	"github.com/boki-app/boki_backend/internal/models"
	"github.com/boki-app/boki_backend/internal/utils/mapping"
	"github.com/boki-app/boki_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entry_no, entry_date, description, reference, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNo,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveJournalEntry persists a validated entry and its lines atomically and
// returns the entry number assigned to it.
//
// The number comes from the single-row entry_counter table, incremented
// inside the same transaction as the inserts. The row lock serializes
// concurrent posts, and a rollback releases the number unused, so the
// sequence stays gap free: numbers are only ever consumed by entries that
// actually commit.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.LineItem) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // rollback after commit is a no-op

	var entryNo int64
	err = tx.QueryRow(ctx, `
		UPDATE entry_counter
		SET last_entry_no = last_entry_no + 1
		RETURNING last_entry_no;
	`).Scan(&entryNo)
	if err != nil {
		return 0, fmt.Errorf("failed to advance entry counter: %w", err)
	}

	m := mapping.JournalEntryToModel(entry)
	m.EntryNo = entryNo

	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.EntryID,
		m.EntryNo,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, line_no, account_id, description, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for i, line := range lines {
		lm := mapping.JournalLineToModel(line, i+1)
		batch.Queue(lineQuery, lm.LineID, lm.EntryID, lm.LineNo, lm.AccountID, lm.Description, lm.Debit, lm.Credit)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert journal line %d for entry %s: %w", i+1, m.EntryID, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close journal line batch: %w", err)
	}
	if batchErr != nil {
		return 0, batchErr
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return entryNo, nil
}

// FindEntryByID retrieves a journal entry with its lines in submission order.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}

	linesByEntry, err := r.findLinesForEntries(ctx, []string{m.EntryID})
	if err != nil {
		return nil, err
	}

	d := mapping.JournalEntryToDomain(m)
	d.Lines = linesByEntry[m.EntryID]
	return &d, nil
}

// ListEntries retrieves a page of journal entries, newest first (entry date
// descending, then entry number descending), with their lines attached. The
// returned token, when non-nil, fetches the next page.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	var rows pgx.Rows
	var err error

	// Fetch one extra row to learn whether another page exists.
	if nextToken != nil {
		afterDate, afterNo, tokenErr := pagination.DecodeToken(*nextToken)
		if tokenErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid page token: %v", apperrors.ErrValidation, tokenErr)
		}
		rows, err = r.Pool.Query(ctx, `
			SELECT `+entryColumns+`
			FROM journal_entries
			WHERE (entry_date, entry_no) < ($1, $2)
			ORDER BY entry_date DESC, entry_no DESC
			LIMIT $3;
		`, afterDate, afterNo, limit+1)
	} else {
		rows, err = r.Pool.Query(ctx, `
			SELECT `+entryColumns+`
			FROM journal_entries
			ORDER BY entry_date DESC, entry_no DESC
			LIMIT $1;
		`, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entryModels := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entryModels = append(entryModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var token *string
	if len(entryModels) > limit {
		entryModels = entryModels[:limit]
		last := entryModels[len(entryModels)-1]
		t := pagination.EncodeToken(last.EntryDate, last.EntryNo)
		token = &t
	}

	if len(entryModels) == 0 {
		return []domain.JournalEntry{}, nil, nil
	}

	entryIDs := make([]string, len(entryModels))
	for i, m := range entryModels {
		entryIDs[i] = m.EntryID
	}
	linesByEntry, err := r.findLinesForEntries(ctx, entryIDs)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]domain.JournalEntry, len(entryModels))
	for i, m := range entryModels {
		d := mapping.JournalEntryToDomain(m)
		d.Lines = linesByEntry[m.EntryID]
		entries[i] = d
	}
	return entries, token, nil
}

// findLinesForEntries fetches the lines for the given entry IDs, keyed by
// entry and ordered by line number within each entry.
func (r *PgxJournalRepository) findLinesForEntries(ctx context.Context, entryIDs []string) (map[string][]domain.LineItem, error) {
	query := `
		SELECT line_id, entry_id, line_no, account_id, description, debit, credit
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	linesByEntry := make(map[string][]domain.LineItem)
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(&m.LineID, &m.EntryID, &m.LineNo, &m.AccountID, &m.Description, &m.Debit, &m.Credit)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		linesByEntry[m.EntryID] = append(linesByEntry[m.EntryID], mapping.JournalLineToDomain(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return linesByEntry, nil
}
