// Package adapter contains infrastructure adapters for the mixvenn CLI.
package adapter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

const (
	scanBufferSize       = 64 * 1024
	maxScanTokenSize     = 16 * 1024 * 1024
	reasonDuplicateDelta = "duplicate delta"
)

// LogReader loads the flat files produced by a mixed-revision experiment.
// Lines that cannot be parsed are returned as rejects instead of failing the read.
type LogReader interface {
	// ReadRecords reads a mixed-revision log, skipping its header line.
	ReadRecords(path string) ([]m.Record, []m.Reject, error)

	// ReadDeltas reads a delta file, skipping its header line.
	ReadDeltas(path string) (*m.DeltaIndex, []m.Reject, error)
}

// LocalLogReader reads log and delta files from the local filesystem.
type LocalLogReader struct{}

// NewLocalLogReader constructs a LocalLogReader.
func NewLocalLogReader() *LocalLogReader {
	return &LocalLogReader{}
}

// ReadRecords implements LogReader.
func (r *LocalLogReader) ReadRecords(path string) ([]m.Record, []m.Reject, error) {
	var records []m.Record

	rejects, err := scanFile(path, func(line string) string {
		rec, err := m.ParseRecord(line)
		if err != nil {
			return err.Error()
		}

		records = append(records, rec)

		return ""
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("read mixed revision log", "path", path, "records", len(records), "rejects", len(rejects))

	return records, rejects, nil
}

// ReadDeltas implements LogReader.
func (r *LocalLogReader) ReadDeltas(path string) (*m.DeltaIndex, []m.Reject, error) {
	index := m.NewDeltaIndex()

	rejects, err := scanFile(path, func(line string) string {
		delta, err := m.ParseDeltaLine(line)
		if err != nil {
			return err.Error()
		}

		if !index.Add(delta) {
			return reasonDuplicateDelta + " " + delta.Key().String()
		}

		return ""
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("read delta file", "path", path, "deltas", index.Len(), "rejects", len(rejects))

	return index, rejects, nil
}

// scanFile feeds every non-blank line after the header to parse. A non-empty
// return value from parse rejects the line with that reason.
func scanFile(path string, parse func(line string) string) ([]m.Reject, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close file", "path", path, "error", err)
		}
	}()

	rejects, err := scanLines(path, file, parse)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rejects, nil
}

func scanLines(name string, reader io.Reader, parse func(line string) string) ([]m.Reject, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, scanBufferSize), maxScanTokenSize)

	var rejects []m.Reject

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		// header
		if lineNo == 1 {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if reason := parse(line); reason != "" {
			slog.Warn("rejected input line", "file", name, "line", lineNo, "reason", reason)
			rejects = append(rejects, m.Reject{File: name, Line: lineNo, Reason: reason})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return rejects, nil
}
