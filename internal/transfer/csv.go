// Package transfer encodes translation rows for bulk import and export.
//
// The CSV dialect is deliberately minimal: records are separated by '\n',
// fields by ',', and a field's surrounding double quotes are stripped. There is
// no escaping, so a field containing a comma or a double quote does not survive
// a round trip.
package transfer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"bonehealth-backend/internal/models"
)

// Columns is the fixed CSV header, in export order.
var Columns = []string{"keyName", "sourceText", "translatedText", "languageCode", "status", "category", "context"}

// CSVHeaderError rejects a whole CSV document before any row is read.
type CSVHeaderError struct {
	Missing    []string `json:"missing,omitempty"`
	Unexpected []string `json:"unexpected,omitempty"`
}

func (e *CSVHeaderError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Unexpected, ", "))
	}
	if len(parts) == 0 {
		parts = append(parts, "no header row")
	}
	return fmt.Sprintf("invalid CSV header (%s); expected exactly: %s", strings.Join(parts, "; "), strings.Join(Columns, ","))
}

// ParseCSV reads rows from text. The first non-blank line is the header and
// must contain exactly the Columns set, in any order.
func ParseCSV(text string) ([]models.TranslationRow, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, &CSVHeaderError{Missing: append([]string(nil), Columns...)}
	}

	header := splitFields(lines[0])
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	rows := make([]models.TranslationRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitFields(line)
		field := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(values) {
				field[name] = values[i]
			}
		}

		row := models.TranslationRow{
			KeyName:        field["keyName"],
			SourceText:     field["sourceText"],
			TranslatedText: field["translatedText"],
			LanguageCode:   field["languageCode"],
			Status:         field["status"],
			Category:       field["category"],
		}
		if ctx := field["context"]; ctx != "" {
			row.Context = &ctx
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes the header followed by one fully quoted record per row.
func WriteCSV(w io.Writer, rows []models.TranslationRow) error {
	if _, err := io.WriteString(w, strings.Join(Columns, ",")); err != nil {
		return err
	}
	for _, r := range rows {
		ctx := ""
		if r.Context != nil {
			ctx = *r.Context
		}
		fields := []string{r.KeyName, r.SourceText, r.TranslatedText, r.LanguageCode, r.Status, r.Category, ctx}
		for i, f := range fields {
			fields[i] = `"` + f + `"`
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCSV renders rows as a complete CSV document.
func EncodeCSV(rows []models.TranslationRow) string {
	var b strings.Builder
	_ = WriteCSV(&b, rows)
	return b.String()
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = unquote(strings.TrimSpace(p))
	}
	return parts
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func checkHeader(header []string) error {
	expected := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		expected[c] = true
	}

	seen := make(map[string]bool, len(header))
	var unexpected []string
	for _, h := range header {
		if !expected[h] || seen[h] {
			unexpected = append(unexpected, h)
			continue
		}
		seen[h] = true
	}

	var missing []string
	for _, c := range Columns {
		if !seen[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}
	sort.Strings(unexpected)
	return &CSVHeaderError{Missing: missing, Unexpected: unexpected}
}
