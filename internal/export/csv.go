// Package export renders a computed worksheet for the UI/export
// collaborator. The CSV layout mirrors the fourteen worksheet columns.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cierre-dev/cierre/internal/model"
	"github.com/cierre-dev/cierre/internal/worksheet"
)

const bufferSize = 32 * 1024

// Meta identifies one exported worksheet document.
type Meta struct {
	Company    string
	Period     string
	DocumentID string
}

// NewDocumentID returns a fresh export document stamp.
func NewDocumentID() string {
	return uuid.NewString()
}

// WriteCSV writes the full worksheet: comment lines identifying the
// document, account rows, editable rows, column totals and the validator
// verdict.
func WriteCSV(w io.Writer, res *worksheet.Result, meta Meta) error {
	buf := bufio.NewWriterSize(w, bufferSize)

	for _, line := range []string{
		fmt.Sprintf("# company: %s", meta.Company),
		fmt.Sprintf("# period: %s", meta.Period),
		fmt.Sprintf("# document: %s", meta.DocumentID),
	} {
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return fmt.Errorf("writing document header: %w", err)
		}
	}

	cw := csv.NewWriter(buf)

	header := []string{"code", "name", "category"}
	for _, col := range model.Columns {
		header = append(header, string(col))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range res.Accounts {
		rec := []string{row.Account.Code, row.Account.Name, string(row.Classification.Category)}
		for _, col := range model.Columns {
			rec = append(rec, amount(row.Cells[col]))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing account %s: %w", row.Account.Code, err)
		}
	}

	for _, row := range res.Rows {
		rec := []string{row.ID, row.Label, ""}
		for _, col := range model.Columns {
			// Overridden text is shown verbatim, even when it did not
			// parse as a number.
			if display, ok := row.Display[col]; ok {
				rec = append(rec, display)
				continue
			}
			rec = append(rec, amount(row.Cells[col]))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %s: %w", row.ID, err)
		}
	}

	totals := []string{"", "Totales", ""}
	for _, col := range model.Columns {
		totals = append(totals, amount(res.Totals.Of(col)))
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	verdict := "balanced"
	if !res.Validation.Balanced {
		verdict = "NOT balanced"
	}
	if _, err := fmt.Fprintf(buf, "# equation: %s (difference %s)\n", verdict, res.Validation.Difference.StringFixed(2)); err != nil {
		return fmt.Errorf("writing verdict: %w", err)
	}

	return buf.Flush()
}

func amount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
