package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/boki-app/boki_backend/internal/core/domain"
	portsrepo "github.com/boki-app/boki_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for read-side reporting
// queries over posted journal lines.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

const postedLineColumns = `
	e.entry_no, e.entry_date, e.description, l.description,
	l.account_id, a.code, a.name, a.account_type, l.debit, l.credit`

func scanPostedLine(rows pgx.Rows) (domain.PostedLine, error) {
	var p domain.PostedLine
	err := rows.Scan(
		&p.EntryNo,
		&p.EntryDate,
		&p.EntryDescription,
		&p.LineDescription,
		&p.AccountID,
		&p.AccountCode,
		&p.AccountName,
		&p.AccountType,
		&p.Debit,
		&p.Credit,
	)
	return p, err
}

// ListPostedLines retrieves the posted lines for one account in chronological
// order (entry date ascending, then entry number, then line number), optionally
// restricted to an inclusive date window.
func (r *PgxReportingRepository) ListPostedLines(ctx context.Context, accountID string, from, to *time.Time) ([]domain.PostedLine, error) {
	query := `
		SELECT ` + postedLineColumns + `
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.account_id = $1
	`
	args := []any{accountID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND e.entry_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND e.entry_date <= $%d", len(args))
	}
	query += " ORDER BY e.entry_date ASC, e.entry_no ASC, l.line_no ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posted lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := []domain.PostedLine{}
	for rows.Next() {
		p, err := scanPostedLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posted line row: %w", err)
		}
		lines = append(lines, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posted line rows: %w", err)
	}
	return lines, nil
}

// ListPostedLinesUpTo retrieves every posted line across all accounts, up to
// and including the given date when one is set. Rows come back grouped by
// account code for stable report assembly.
func (r *PgxReportingRepository) ListPostedLinesUpTo(ctx context.Context, asOf *time.Time) ([]domain.PostedLine, error) {
	query := `
		SELECT ` + postedLineColumns + `
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
	`
	args := []any{}
	if asOf != nil {
		args = append(args, *asOf)
		query += " WHERE e.entry_date <= $1"
	}
	query += " ORDER BY a.code ASC, e.entry_date ASC, e.entry_no ASC, l.line_no ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posted lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.PostedLine{}
	for rows.Next() {
		p, err := scanPostedLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posted line row: %w", err)
		}
		lines = append(lines, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posted line rows: %w", err)
	}
	return lines, nil
}
