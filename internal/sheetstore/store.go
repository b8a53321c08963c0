package sheetstore

import (
	"context"
	"fmt"
	"time"

	"log/slog"
	coreconfig "pricebench/core/config"
	"pricebench/core/logger"
	"pricebench/internal/records"

	"github.com/google/uuid"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store keeps records in one worksheet with the fixed column layout
// id, timestamp, submitted_by, product_list, buying_price, location,
// production_remark. Row 1 is the header; data starts at row 2.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
	sheetID       int64
}

const dataRange = "A2:G"

// New connects to the spreadsheet with a service-account credential and
// resolves the worksheet's numeric sheet id.
func New(ctx context.Context, cfg coreconfig.SheetsConfig) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheetstore: client: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(cfg.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheetstore: open spreadsheet: %w", err)
	}
	var sheetID int64 = -1
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == cfg.Worksheet {
			sheetID = sh.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return nil, fmt.Errorf("sheetstore: worksheet %q not found", cfg.Worksheet)
	}

	logger.STORE.Info("sheets backend ready",
		slog.String("event", "store.sheets.ready"),
		slog.String("worksheet", cfg.Worksheet),
	)
	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		sheetID:       sheetID,
	}, nil
}

func (s *Store) ListAll(ctx context.Context) ([]records.Record, error) {
	rows, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]records.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToRecord(row))
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (records.Record, error) {
	rec, _, err := s.findRow(ctx, id)
	return rec, err
}

func (s *Store) AppendBatch(ctx context.Context, drafts []records.Draft) ([]records.Record, error) {
	now := time.Now().UTC()
	recs := make([]records.Record, len(drafts))
	values := make([][]any, len(drafts))
	for i, d := range drafts {
		recs[i] = records.Record{
			ID:          uuid.NewString(),
			Timestamp:   now,
			SubmittedBy: d.SubmittedBy,
			Product:     d.Product,
			Price:       d.Price,
			Location:    d.Location,
			Remark:      d.Remark,
		}
		values[i] = recordToRow(recs[i])
	}

	start := time.Now()
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.worksheet+"!"+dataRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return nil, s.classifyAppendFailure(ctx, recs, err)
	}

	logger.STORE.Info("batch appended",
		slog.String("event", "store.sheets.append"),
		slog.Int("rows", len(recs)),
		slog.Duration("took", logger.Took(start)),
	)
	return recs, nil
}

// classifyAppendFailure re-reads the sheet to tell a clean failure from a
// write that landed only partially.
func (s *Store) classifyAppendFailure(ctx context.Context, attempted []records.Record, cause error) error {
	ids := make(map[string]bool, len(attempted))
	for _, r := range attempted {
		ids[r.ID] = true
	}
	written := 0
	if rows, err := s.readAll(ctx); err == nil {
		for _, row := range rows {
			if len(row) > 0 && ids[str(row[0])] {
				written++
			}
		}
	}
	if written > 0 && written < len(attempted) {
		return &records.PartialWriteError{Written: written, Total: len(attempted), Err: cause}
	}
	return fmt.Errorf("%w: append: %v", records.ErrStoreUnavailable, cause)
}

func (s *Store) UpdateFields(ctx context.Context, id string, fields records.FieldMap) (records.Record, error) {
	rec, row, err := s.findRow(ctx, id)
	if err != nil {
		return records.Record{}, err
	}
	fields.Apply(&rec)
	rec.Timestamp = time.Now().UTC()

	rangeRef := fmt.Sprintf("%s!A%d:G%d", s.worksheet, row, row)
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, rangeRef, &sheets.ValueRange{Values: [][]any{recordToRow(rec)}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return records.Record{}, fmt.Errorf("%w: update: %v", records.ErrStoreUnavailable, err)
	}

	logger.STORE.Info("record updated",
		slog.String("event", "store.sheets.update"),
		slog.String("id", id),
		slog.Int("fields", len(fields)),
	)
	return rec, nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) error {
	_, row, err := s.findRow(ctx, id)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    s.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1),
					EndIndex:   int64(row),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: delete: %v", records.ErrStoreUnavailable, err)
	}

	logger.STORE.Info("record deleted",
		slog.String("event", "store.sheets.delete"),
		slog.String("id", id),
	)
	return nil
}

// readAll fetches every data row.
func (s *Store) readAll(ctx context.Context) ([][]any, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.worksheet+"!"+dataRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", records.ErrStoreUnavailable, err)
	}
	return resp.Values, nil
}

// findRow locates a record and its 1-based sheet row number.
func (s *Store) findRow(ctx context.Context, id string) (records.Record, int, error) {
	rows, err := s.readAll(ctx)
	if err != nil {
		return records.Record{}, 0, err
	}
	for i, row := range rows {
		if len(row) > 0 && str(row[0]) == id {
			return rowToRecord(row), i + 2, nil
		}
	}
	return records.Record{}, 0, records.ErrNotFound
}
