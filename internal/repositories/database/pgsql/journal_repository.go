package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/finbooks/ledger-engine/internal/apperrors"
	"github.com/finbooks/ledger-engine/internal/core/domain"
	portsrepo "github.com/finbooks/ledger-engine/internal/core/ports/repositories"
	"github.com/finbooks/ledger-engine/internal/models"
	"github.com/finbooks/ledger-engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func toModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		Reference:   d.Reference,
		Source:      models.EntrySource(d.Source),
		Status:      models.EntryStatus(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Reference:   m.Reference,
		Source:      domain.EntrySource(m.Source),
		Status:      domain.EntryStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Ordinal:     m.Ordinal,
	}
}

// nullableRef maps an empty reference to NULL so the partial unique index
// only applies to entries that actually carry one.
func nullableRef(reference string) *string {
	if reference == "" {
		return nil
	}
	return &reference
}

const entryColumns = `entry_id, entry_date, description, reference, source, status, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	var ref sql.NullString
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Description,
		&ref,
		&m.Source,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if ref.Valid {
		m.Reference = ref.String
	}
	return m, err
}

// insertEntryTx inserts the entry header and its lines inside an open
// transaction. Lines are batched in a single round trip.
func (r *PgxJournalRepository) insertEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error {
	modelEntry := toModelEntry(entry)

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.EntryDate,
		modelEntry.Description,
		nullableRef(modelEntry.Reference),
		modelEntry.Source,
		modelEntry.Status,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", modelEntry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_code, debit, credit, ordinal, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			modelEntry.EntryID,
			line.AccountCode,
			line.Debit,
			line.Credit,
			line.Ordinal,
			modelEntry.CreatedAt,
			modelEntry.CreatedBy,
			modelEntry.LastUpdatedAt,
			modelEntry.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line for entry %s: %w", modelEntry.EntryID, err)
		}
	}
	return results.Close()
}

// checkReferenceFreeTx fails with ErrDuplicate when a posted entry already
// carries the given reference. The matching row is locked so two concurrent
// postings of the same reference serialize; the partial unique index on
// journal_entries.reference backstops the window before either commits.
func (r *PgxJournalRepository) checkReferenceFreeTx(ctx context.Context, tx pgx.Tx, reference string) error {
	if reference == "" {
		return nil
	}

	var existingID string
	query := `SELECT entry_id FROM journal_entries WHERE reference = $1 AND status = 'POSTED' FOR UPDATE;`
	err := tx.QueryRow(ctx, query, reference).Scan(&existingID)
	if err == nil {
		return fmt.Errorf("%w: reference %s is already posted as entry %s", apperrors.ErrDuplicate, reference, existingID)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return fmt.Errorf("failed to check reference %s: %w", reference, err)
}

// SaveEntry persists an entry and its lines atomically. A reference already
// used by a posted entry maps to ErrDuplicate.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.checkReferenceFreeTx(ctx, tx, entry.Reference); err != nil {
		return err
	}
	if err := r.insertEntryTx(ctx, tx, entry, lines); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reference %s is already posted", apperrors.ErrDuplicate, entry.Reference)
		}
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveSaleInvoiceEntry persists the entry for a sale invoice and marks the
// sale as posted, atomically. The sale row is locked for update; a sale that
// was posted by a concurrent request maps to ErrDuplicate.
func (r *PgxJournalRepository) SaveSaleInvoiceEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, saleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var postedEntryID *string
	lockQuery := `SELECT posted_entry_id FROM sales WHERE sale_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, saleID).Scan(&postedEntryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return fmt.Errorf("failed to lock sale %s: %w", saleID, err)
	}
	if postedEntryID != nil {
		return fmt.Errorf("%w: sale %s is already posted as entry %s", apperrors.ErrDuplicate, saleID, *postedEntryID)
	}

	if err := r.checkReferenceFreeTx(ctx, tx, entry.Reference); err != nil {
		return err
	}
	if err := r.insertEntryTx(ctx, tx, entry, lines); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reference %s is already posted", apperrors.ErrDuplicate, entry.Reference)
		}
		return err
	}

	updateQuery := `
		UPDATE sales
		SET posted_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sale_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, saleID, entry.EntryID, entry.LastUpdatedAt, entry.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to mark sale %s as posted: %w", saleID, err)
	}

	return r.Commit(ctx, tx)
}

// SaveVendorPaymentEntry persists the entry for a vendor payment and applies
// the amount to the invoice, atomically. The invoice row is locked for
// update; a reused payment reference maps to ErrDuplicate, and a payment
// exceeding the outstanding balance under the lock maps to ErrConflict.
func (r *PgxJournalRepository) SaveVendorPaymentEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, invoiceID string, amount decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var total, paidAmount decimal.Decimal
	lockQuery := `SELECT total, paid_amount FROM vendor_invoices WHERE invoice_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, invoiceID).Scan(&total, &paidAmount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: vendor invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return fmt.Errorf("failed to lock vendor invoice %s: %w", invoiceID, err)
	}
	if amount.GreaterThan(total.Sub(paidAmount)) {
		return fmt.Errorf("%w: payment of %s exceeds outstanding balance %s on invoice %s",
			apperrors.ErrConflict, amount.String(), total.Sub(paidAmount).String(), invoiceID)
	}

	if err := r.checkReferenceFreeTx(ctx, tx, entry.Reference); err != nil {
		return err
	}
	if err := r.insertEntryTx(ctx, tx, entry, lines); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: reference %s is already posted", apperrors.ErrDuplicate, entry.Reference)
		}
		return err
	}

	updateQuery := `
		UPDATE vendor_invoices
		SET paid_amount = paid_amount + $2, last_payment_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, invoiceID, amount, entry.EntryID, entry.LastUpdatedAt, entry.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to apply payment to vendor invoice %s: %w", invoiceID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes an entry and its lines atomically.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines of entry %s: %w", entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a specific journal entry by its unique identifier.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	entry := toDomainEntry(m)
	return &entry, nil
}

// FindEntryByReference retrieves the posted entry carrying the given
// external reference.
func (r *PgxJournalRepository) FindEntryByReference(ctx context.Context, reference string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE reference = $1 AND status = 'POSTED';`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by reference "+reference, err)
	}

	entry := toDomainEntry(m)
	return &entry, nil
}

// ListEntries retrieves a paginated list of journal entries ordered by entry
// date descending, then creation time descending. The next-page token encodes
// the cursor position of the last returned entry.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, entryDate, createdAt)
		query += ` WHERE (entry_date, created_at) < ($1, $2)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, toDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var newNextToken *string
	if len(entries) == fetchLimit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		newNextToken = &token
	}

	return entries, newNextToken, nil
}

// FindLinesByEntryID retrieves all lines of a single entry in ordinal order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_code, debit, credit, ordinal
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY ordinal;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	return collectLines(rows)
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT line_id, entry_id, account_code, debit, credit, ordinal
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, ordinal;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entries", err)
	}
	defer rows.Close()

	lines, err := collectLines(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.JournalLine, len(entryIDs))
	for _, line := range lines {
		grouped[line.EntryID] = append(grouped[line.EntryID], line)
	}
	return grouped, nil
}

func collectLines(rows pgx.Rows) ([]domain.JournalLine, error) {
	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountCode, &m.Debit, &m.Credit, &m.Ordinal)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		lines = append(lines, toDomainLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return lines, nil
}

// ListAccountActivity retrieves the date-descending feed of posted lines
// touching the account up to asOf, joined with their entry headers.
func (r *PgxJournalRepository) ListAccountActivity(ctx context.Context, accountCode string, asOf time.Time, limit int, nextToken *string) ([]domain.LedgerActivityLine, *string, error) {
	fetchLimit := limit + 1

	query := `
		SELECT e.entry_id, e.entry_date, e.description, COALESCE(e.reference, ''), l.debit, l.credit, e.created_at, l.ordinal
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1 AND e.status = 'POSTED' AND e.entry_date <= $2
	`
	args := []any{accountCode, asOf}

	// The cursor includes the line ordinal: sibling lines of one entry share
	// (entry_date, created_at), so a strict tuple comparison on the entry
	// columns alone would skip the rest of the entry at a page boundary.
	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, ordinal, err := pagination.DecodeActivityToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, entryDate, createdAt, ordinal)
		query += ` AND (e.entry_date < $3 OR (e.entry_date = $3 AND (e.created_at < $4 OR (e.created_at = $4 AND l.ordinal > $5))))`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY e.entry_date DESC, e.created_at DESC, l.ordinal LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list activity for account "+accountCode, err)
	}
	defer rows.Close()

	type activityRow struct {
		line      domain.LedgerActivityLine
		createdAt time.Time
		ordinal   int
	}

	activity := []activityRow{}
	for rows.Next() {
		var row activityRow
		err := rows.Scan(
			&row.line.EntryID,
			&row.line.EntryDate,
			&row.line.Description,
			&row.line.Reference,
			&row.line.Debit,
			&row.line.Credit,
			&row.createdAt,
			&row.ordinal,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan activity row", err)
		}
		row.line.SignedAmount = row.line.Debit.Sub(row.line.Credit)
		activity = append(activity, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating activity rows", err)
	}

	var newNextToken *string
	if len(activity) == fetchLimit {
		activity = activity[:limit]
		last := activity[len(activity)-1]
		token := pagination.EncodeActivityToken(last.line.EntryDate, last.createdAt, last.ordinal)
		newNextToken = &token
	}

	lines := make([]domain.LedgerActivityLine, 0, len(activity))
	for _, row := range activity {
		lines = append(lines, row.line)
	}
	return lines, newNextToken, nil
}

// GetAccountTotals returns the summed debit and credit amounts posted to the
// account up to asOf.
func (r *PgxJournalRepository) GetAccountTotals(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1 AND e.status = 'POSTED' AND e.entry_date <= $2;
	`
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountCode, asOf).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to total account "+accountCode, err)
	}
	return debit, credit, nil
}
