package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"mainland-quote/core/types"
	"mainland-quote/internal/errors"
)

// Store persists calculated documents. It never recalculates anything:
// payloads are stored and returned verbatim.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveEstimate stores an estimate and returns its identifier. A new
// identifier is assigned when the record has none.
func (s *Store) SaveEstimate(ctx context.Context, est types.Estimate) (string, error) {
	if est.ID == "" {
		est.ID = uuid.NewString()
	}
	payload, err := json.Marshal(est)
	if err != nil {
		return "", errors.Storage("encode estimate", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO estimates (id, customer_name, total_price, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			customer_name = excluded.customer_name,
			total_price = excluded.total_price,
			payload = excluded.payload`,
		est.ID, est.CustomerName, est.Totals.TotalPrice.String(), string(payload))
	if err != nil {
		return "", errors.Storage("save estimate", err)
	}
	return est.ID, nil
}

// GetEstimate fetches one estimate by identifier.
func (s *Store) GetEstimate(ctx context.Context, id string) (types.Estimate, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM estimates WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return types.Estimate{}, errors.NotFound("estimate", id)
	}
	if err != nil {
		return types.Estimate{}, errors.Storage("fetch estimate", err)
	}

	var est types.Estimate
	if err := json.Unmarshal([]byte(payload), &est); err != nil {
		return types.Estimate{}, errors.Storage("decode estimate", err)
	}
	return est, nil
}

// ListEstimates returns all estimates, newest first.
func (s *Store) ListEstimates(ctx context.Context) ([]types.Estimate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM estimates ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Storage("list estimates", err)
	}
	defer rows.Close()

	var out []types.Estimate
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Storage("scan estimate", err)
		}
		var est types.Estimate
		if err := json.Unmarshal([]byte(payload), &est); err != nil {
			return nil, errors.Storage("decode estimate", err)
		}
		out = append(out, est)
	}
	return out, rows.Err()
}

// DeleteEstimate removes one estimate.
func (s *Store) DeleteEstimate(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("delete estimate", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("estimate", id)
	}
	return nil
}

// SaveQuote stores a formal quote and returns its identifier.
func (s *Store) SaveQuote(ctx context.Context, q types.QuoteState) (string, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	payload, err := json.Marshal(q)
	if err != nil {
		return "", errors.Storage("encode quote", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, quote_number, client_name, grand_total, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			quote_number = excluded.quote_number,
			client_name = excluded.client_name,
			grand_total = excluded.grand_total,
			payload = excluded.payload`,
		q.ID, q.QuoteNumber, q.Client.Name, q.Totals.GrandTotal.String(), string(payload))
	if err != nil {
		return "", errors.Storage("save quote", err)
	}
	return q.ID, nil
}

// GetQuote fetches one quote by identifier.
func (s *Store) GetQuote(ctx context.Context, id string) (types.QuoteState, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM quotes WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return types.QuoteState{}, errors.NotFound("quote", id)
	}
	if err != nil {
		return types.QuoteState{}, errors.Storage("fetch quote", err)
	}

	var q types.QuoteState
	if err := json.Unmarshal([]byte(payload), &q); err != nil {
		return types.QuoteState{}, errors.Storage("decode quote", err)
	}
	return q, nil
}

// ListQuotes returns all quotes, newest first.
func (s *Store) ListQuotes(ctx context.Context) ([]types.QuoteState, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Storage("list quotes", err)
	}
	defer rows.Close()

	var out []types.QuoteState
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Storage("scan quote", err)
		}
		var q types.QuoteState
		if err := json.Unmarshal([]byte(payload), &q); err != nil {
			return nil, errors.Storage("decode quote", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// DeleteQuote removes one quote.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("delete quote", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NotFound("quote", id)
	}
	return nil
}

// GetSettings fetches the stored settings record, if any.
func (s *Store) GetSettings(ctx context.Context) (types.Settings, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM settings WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return types.Settings{}, false, nil
	}
	if err != nil {
		return types.Settings{}, false, errors.Storage("fetch settings", err)
	}

	var settings types.Settings
	if err := json.Unmarshal([]byte(payload), &settings); err != nil {
		return types.Settings{}, false, errors.Storage("decode settings", err)
	}
	return settings, true, nil
}

// SaveSettings upserts the singleton settings record.
func (s *Store) SaveSettings(ctx context.Context, settings types.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return errors.Storage("encode settings", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (id, payload, updated_at)
		VALUES (1, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		string(payload))
	if err != nil {
		return errors.Storage("save settings", err)
	}
	return nil
}
