// Package model defines the data structures for mixed-revision analysis.
package model

import (
	"strings"

	"mixvenn.dev/pkg/mixvenn/pkg"
)

// ChangeKind represents how a file differs between two revisions.
type ChangeKind string

const (
	// ChangeModify marks a file present in both revisions with different content.
	ChangeModify ChangeKind = "MODIFY"
	// ChangeAdd marks a file added by the change.
	ChangeAdd ChangeKind = "ADD"
	// ChangeDelete marks a file removed by the change.
	ChangeDelete ChangeKind = "DELETE"
	// ChangeUnknown is used for tokens with an unrecognized kind character.
	ChangeUnknown ChangeKind = "UNDEFINED"
)

const (
	fileSeparator = ","

	testFileSuffix  = "Test.java"
	testsFileSuffix = "Tests.java"
)

// ParseChangeKind maps a one-letter kind marker to a ChangeKind.
// Both the letter form (M/A/D) and the legacy symbol form (~/+/-) are accepted.
func ParseChangeKind(c byte) ChangeKind {
	switch c {
	case 'M', '~':
		return ChangeModify
	case 'A', '+':
		return ChangeAdd
	case 'D', '-':
		return ChangeDelete
	}

	return ChangeUnknown
}

// ChangedFile is a file path with the kind of change applied to it.
//
// Two ChangedFiles are the same file when their paths match; the kind is
// informational only.
type ChangedFile struct {
	Path string
	Kind ChangeKind
}

// Equal reports whether f and o name the same path.
func (f ChangedFile) Equal(o ChangedFile) bool {
	return f.Path == o.Path
}

func (f ChangedFile) String() string {
	return f.Path + ": " + string(f.Kind)
}

// IsTestFile reports whether path names a test source file.
// Test sources are outcomes of the experiment, never part of a change set.
func IsTestFile(path string) bool {
	return strings.HasSuffix(path, testFileSuffix) || strings.HasSuffix(path, testsFileSuffix)
}

// ParseChangedFiles decodes a comma-joined list of <kind><path> tokens.
// Empty tokens and test files are dropped.
func ParseChangedFiles(s string) []ChangedFile {
	tokens := strings.Split(s, fileSeparator)
	files := make([]ChangedFile, 0, len(tokens))

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if len(token) < 2 {
			continue
		}

		path := token[1:]
		if IsTestFile(path) {
			continue
		}

		files = append(files, ChangedFile{Path: path, Kind: ParseChangeKind(token[0])})
	}

	return files
}

// PathSet returns the paths of files as a set, keeping the first occurrence order.
func PathSet(files []ChangedFile) pkg.Set[string] {
	set := pkg.NewSet[string]()
	for _, f := range files {
		set.Add(f.Path)
	}

	return set
}
