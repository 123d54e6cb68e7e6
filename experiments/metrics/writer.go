package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TimestampLayout names run directories; nanoseconds keep back-to-back runs apart.
const TimestampLayout = "2006-01-02T15-04-05.000000000Z"

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	return newWriter(root, name, time.Now())
}

func newWriter(root, name string, now time.Time) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := now.UTC().Format(TimestampLayout)
	parent := filepath.Join(root, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Mkdir fails on an existing directory, so concurrent runs never share one
	baseDir := filepath.Join(parent, timestamp)
	err = os.Mkdir(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			config.Evaluation,
		})
	}
	return w.write("agent_configs.csv", []string{"id", "kind", "depth", "evaluation"}, rows)
}

func (w *Writer) WriteRecords(records []Record) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Position),
			string(record.Action),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			record.Duration.String(),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			strconv.FormatInt(record.Prunes, 10),
		})
	}
	header := []string{"agent", "position", "action", "value", "duration", "nodes", "cutoffs", "prunes"}
	return w.write("records.csv", header, rows)
}

func (w *Writer) write(filename string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filename, err)
	}
	return f.Close()
}
