package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const columnSeparator = ";"

const (
	recordFieldCount = 10
	deltaFieldCount  = 3
)

// Field positions of a log record.
const (
	fieldMixID = iota
	fieldParentID
	fieldChildID
	fieldChangedFiles
	fieldCompilable
	fieldAborted
	fieldTestName
	fieldMixResult
	fieldChildResult
	fieldParentResult
)

var (
	// ErrMalformedRecord is returned for log lines that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMalformedDelta is returned for delta lines that cannot be parsed.
	ErrMalformedDelta = errors.New("malformed delta")
)

// Record is one parsed line of the mixed-revision log: the outcome of one test
// on one mixed revision.
type Record struct {
	MixID        int
	ParentID     string
	ChildID      string
	ChangedFiles string
	Compilable   bool
	Aborted      bool
	TestName     string
	MixResult    string
	ParentResult string
	ChildResult  string
}

// Key returns the revision pair the record belongs to.
func (r Record) Key() PairKey {
	return PairKey{ParentID: r.ParentID, ChildID: r.ChildID}
}

// Outcome converts the record's results into a TestOutcome.
func (r Record) Outcome() TestOutcome {
	return TestOutcome{
		Name:   r.TestName,
		Parent: ParseResult(r.ParentResult),
		Child:  ParseResult(r.ChildResult),
		Mix:    ParseResult(r.MixResult),
	}
}

// ParseRecord parses one log line of ten semicolon-separated fields.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), columnSeparator)
	if len(fields) != recordFieldCount {
		return Record{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, recordFieldCount, len(fields))
	}

	mixID, err := strconv.Atoi(strings.TrimSpace(fields[fieldMixID]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: mix id %q: %w", ErrMalformedRecord, fields[fieldMixID], err)
	}

	return Record{
		MixID:        mixID,
		ParentID:     fields[fieldParentID],
		ChildID:      fields[fieldChildID],
		ChangedFiles: fields[fieldChangedFiles],
		Compilable:   fields[fieldCompilable] == "1",
		Aborted:      fields[fieldAborted] == "1",
		TestName:     fields[fieldTestName],
		MixResult:    fields[fieldMixResult],
		ParentResult: fields[fieldParentResult],
		ChildResult:  fields[fieldChildResult],
	}, nil
}

// ParseDeltaLine parses one delta line of the form parentID;childID;changedFiles.
// Test files are removed from the stored file list.
func ParseDeltaLine(line string) (Delta, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), columnSeparator)
	if len(fields) != deltaFieldCount {
		return Delta{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedDelta, deltaFieldCount, len(fields))
	}

	return Delta{
		ParentID: fields[0],
		ChildID:  fields[1],
		Total:    ParseChangedFiles(fields[2]),
	}, nil
}
