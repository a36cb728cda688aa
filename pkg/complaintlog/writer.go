package complaintlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// Record is one complaint row as persisted to the shared log.
type Record struct {
	Timestamp time.Time
	Name      string
	Contact   string
	Category  string
	Complaint string
}

const timestampLayout = "2006-01-02 15:04:05"

var header = []string{"Timestamp", "Name", "Contact", "Category", "Complaint"}

// Writer appends complaint records to a single CSV file shared across all
// sessions. Writes are serialized with a process-level mutex; the file is
// created with a header row on first use and appended to afterwards,
// preserving prior rows.
type Writer struct {
	path string
	mu   sync.Mutex
}

func NewWriter(path string) *Writer {
	return &Writer{
		path: path,
	}
}

func (w *Writer) Append(record Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, statErr := os.Stat(w.path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open complaint log: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if writeHeader {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write complaint log header: %w", err)
		}
	}

	row := []string{
		record.Timestamp.Format(timestampLayout),
		record.Name,
		record.Contact,
		record.Category,
		record.Complaint,
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("failed to write complaint row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
