package forms

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// rowAppender describes the subset of the Sheets client used by SheetsRecorder
type rowAppender interface {
	AppendValues(ctx context.Context, spreadsheetID, appendRange string, values [][]any) error
}

// SheetsRecorder appends one row per submission to a spreadsheet tab
type SheetsRecorder struct {
	client        rowAppender
	spreadsheetID string
	tab           string
}

// NewSheetsRecorder builds a recorder writing to tab of spreadsheetID
func NewSheetsRecorder(client rowAppender, spreadsheetID, tab string) (*SheetsRecorder, error) {
	if client == nil {
		return nil, fmt.Errorf("forms: sheets client is required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("forms: spreadsheet id is required")
	}
	if tab == "" {
		tab = "Submissions"
	}
	return &SheetsRecorder{client: client, spreadsheetID: spreadsheetID, tab: tab}, nil
}

// Record writes reference, time, region, kind, reply-to and a summary of the fields
func (r *SheetsRecorder) Record(ctx context.Context, s Submission) error {
	parts := make([]string, 0)
	for _, l := range s.Form.Lines() {
		if l.Value != "" {
			parts = append(parts, l.Label+": "+l.Value)
		}
	}

	row := []any{
		s.Reference,
		s.SubmittedAt.Format(time.RFC3339),
		string(s.Region),
		string(s.Kind),
		s.Form.ReplyTo(),
		strings.Join(parts, " | "),
	}
	return r.client.AppendValues(ctx, r.spreadsheetID, r.tab+"!A:F", [][]any{row})
}
