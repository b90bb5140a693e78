// Package importer bulk-loads expenses from CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/service"
	"github.com/dabbulu/dabbulu/internal/suggest"
)

// Expected CSV header: date,amount,payment_method,category_id,note.
// category_id may be empty; the suggestion engine fills it from the note
// when a keyword matches.
var expectedHeader = []string{"date", "amount", "payment_method", "category_id", "note"}

// Result summarizes an import run.
type Result struct {
	Imported  int
	Skipped   int
	Suggested int
}

// Importer parses CSV rows into expense records and persists them.
type Importer struct {
	store    service.Storage
	engine   *suggest.Engine
	progress io.Writer
}

// New creates an importer. progress receives the progress bar; pass
// io.Discard to silence it.
func New(store service.Storage, engine *suggest.Engine, progress io.Writer) *Importer {
	return &Importer{store: store, engine: engine, progress: progress}
}

// Import reads all rows from r and appends them as expenses owned by
// userID. Malformed rows are skipped with a warning, never fatal.
func (i *Importer) Import(ctx context.Context, r io.Reader, userID string) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row length checked per record

	records, err := reader.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return Result{}, nil
	}

	start := 0
	if isHeader(records[0]) {
		start = 1
	}
	rows := records[start:]

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetWriter(i.progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing expenses..."),
	)

	var result Result
	for idx, row := range rows {
		_ = bar.Add(1)

		if err := ctx.Err(); err != nil {
			return result, err
		}

		expense, suggested, err := i.parseRow(row, userID)
		if err != nil {
			slog.Warn("skipping malformed row", "row", start+idx+1, "error", err)
			result.Skipped++
			continue
		}

		if err := i.store.AddExpense(ctx, expense); err != nil {
			slog.Warn("skipping row that failed to persist", "row", start+idx+1, "error", err)
			result.Skipped++
			continue
		}

		result.Imported++
		if suggested {
			result.Suggested++
		}
	}

	slog.Info("import finished",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"suggested", result.Suggested)
	return result, nil
}

// parseRow converts one CSV row into an expense. The second return
// value reports whether the category came from the suggestion engine.
func (i *Importer) parseRow(row []string, userID string) (*model.Expense, bool, error) {
	if len(row) < 3 {
		return nil, false, fmt.Errorf("expected at least 3 fields, got %d", len(row))
	}

	date := strings.TrimSpace(row[0])
	if !model.ValidDate(date) {
		return nil, false, fmt.Errorf("%w: %q", model.ErrInvalidDate, date)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return nil, false, fmt.Errorf("invalid amount %q: %w", row[1], err)
	}
	if amount < 0 {
		return nil, false, fmt.Errorf("%w: %.2f", model.ErrNegativeAmount, amount)
	}

	method, err := model.ParsePaymentMethod(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, false, err
	}

	var categoryID, note string
	if len(row) > 3 {
		categoryID = strings.TrimSpace(row[3])
	}
	if len(row) > 4 {
		note = strings.TrimSpace(row[4])
	}

	suggested := false
	if categoryID == "" {
		id, ok := i.engine.Suggest(note)
		if !ok {
			return nil, false, fmt.Errorf("no category given and note %q matched no suggestion", note)
		}
		categoryID = id
		suggested = true
	}

	expense := &model.Expense{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          date,
		Amount:        amount,
		PaymentMethod: method,
		CategoryID:    categoryID,
		Note:          note,
		CreatedAt:     time.Now(),
	}
	return expense, suggested, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(row[0]), expectedHeader[0])
}
