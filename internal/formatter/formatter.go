// package formatter provides functions to export the task collection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/tdx/internal/models"
)

// ExportToCSV converts a task collection to CSV format with columns: ID, Text, Completed, CreatedAt
func ExportToCSV(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Text", "Completed", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range tasks {
		record := []string{
			task.ID,
			task.Text,
			strconv.FormatBool(task.Completed),
			task.CreatedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a task collection to a Markdown checklist.
func ExportToMarkdown(tasks []models.Task, title string) []byte {
	var buf bytes.Buffer

	if title != "" {
		buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	}

	done := 0
	for _, task := range tasks {
		if task.Completed {
			done++
		}
	}
	buf.WriteString(fmt.Sprintf("**Tasks**: %d open, %d done\n\n", len(tasks)-done, done))

	for _, task := range tasks {
		box := " "
		if task.Completed {
			box = "x"
		}
		buf.WriteString(fmt.Sprintf("- [%s] %s\n", box, task.Text))
	}

	return buf.Bytes()
}

// ExportToText converts a task collection to an aligned plain-text listing.
//
// Ids are shortened to their first eight characters, matching what the CLI
// accepts as a unique prefix.
func ExportToText(tasks []models.Task) []byte {
	var buf bytes.Buffer

	if len(tasks) == 0 {
		buf.WriteString("no tasks\n")
		return buf.Bytes()
	}

	for _, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "✓"
		}
		buf.WriteString(fmt.Sprintf("%s  %s  %s\n", ShortID(task.ID), mark, task.Text))
	}

	return buf.Bytes()
}

// ShortID returns the first eight characters of a task id.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
