// Package dataset loads completed evaluation records from files.
package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"evalvault/pkg/core"
)

// FileDataset streams records from a JSON array, JSONL, or YAML file.
type FileDataset struct {
	Path     string
	NameHint string
}

func NewFileDataset(path string) *FileDataset {
	return &FileDataset{Path: path}
}

func (d *FileDataset) Name() string {
	if d.NameHint != "" {
		return d.NameHint
	}
	return filepath.Base(d.Path)
}

func (d *FileDataset) Len(ctx context.Context) (int, error) {
	format, err := detectFormat(d.Path)
	if err != nil {
		return 0, err
	}

	switch format {
	case "json", "yaml":
		records, err := loadRecords(d.Path, format)
		if err != nil {
			return 0, err
		}
		return len(records), nil
	case "jsonl":
		return countJSONLLines(ctx, d.Path)
	default:
		return 0, errors.New("dataset: unsupported format")
	}
}

// Records streams the file's records. The error channel carries at most one
// error; both channels close when the stream ends.
func (d *FileDataset) Records(ctx context.Context) (<-chan core.Record, <-chan error) {
	recordCh := make(chan core.Record)
	errCh := make(chan error, 1)

	go func() {
		defer close(recordCh)
		defer close(errCh)

		format, err := detectFormat(d.Path)
		if err != nil {
			errCh <- err
			return
		}

		switch format {
		case "json", "yaml":
			records, err := loadRecords(d.Path, format)
			if err != nil {
				errCh <- err
				return
			}
			for _, rec := range records {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case recordCh <- rec:
				}
			}
		case "jsonl":
			if err := streamJSONL(ctx, d.Path, recordCh); err != nil {
				errCh <- err
			}
		default:
			errCh <- errors.New("dataset: unsupported format")
		}
	}()

	return recordCh, errCh
}

// ReadAll collects the whole file into memory.
func (d *FileDataset) ReadAll(ctx context.Context) ([]core.Record, error) {
	recordCh, errCh := d.Records(ctx)

	var records []core.Record
	for rec := range recordCh {
		records = append(records, rec)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return records, nil
}

func detectFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jsonl":
		return "jsonl", nil
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(b)) == "" {
			continue
		}
		switch b {
		case '[':
			return "json", nil
		case '{':
			return "jsonl", nil
		case '-':
			return "yaml", nil
		}
		return "", errors.New("dataset: unsupported format")
	}
}

func loadRecords(path, format string) ([]core.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []core.Record
	switch format {
	case "json":
		if err := json.NewDecoder(file).Decode(&records); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.NewDecoder(file).Decode(&records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func streamJSONL(ctx context.Context, path string, out chan<- core.Record) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var rec core.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return errors.Wrapf(err, "dataset: %s:%d", path, line)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- rec:
		}
	}
	return scanner.Err()
}

func countJSONLLines(ctx context.Context, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	count := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if strings.TrimSpace(scanner.Text()) != "" {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return count, nil
}
