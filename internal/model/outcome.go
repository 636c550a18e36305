package model

// Result is the tri-valued outcome of one test on one revision.
type Result int

const (
	// ResultUnknown is used when the test did not run (incompilable or aborted).
	ResultUnknown Result = iota
	// ResultPass indicates the test passed.
	ResultPass
	// ResultFail indicates the test failed.
	ResultFail
)

// ParseResult decodes a log result field: "1" pass, "0" fail, anything else unknown.
func ParseResult(s string) Result {
	switch s {
	case "1":
		return ResultPass
	case "0":
		return ResultFail
	}

	return ResultUnknown
}

func (r Result) String() string {
	switch r {
	case ResultPass:
		return "pass"
	case ResultFail:
		return "fail"
	case ResultUnknown:
	}

	return "unknown"
}

// TestOutcome holds the results of one test on the parent, the child and the mix.
type TestOutcome struct {
	Name   string
	Parent Result
	Child  Result
	Mix    Result
}

// IsFlip reports whether the test passed on the parent and failed on the child.
func (t TestOutcome) IsFlip() bool {
	return t.Parent == ResultPass && t.Child == ResultFail
}

// RepairsFlip reports whether the test is a flip that passes again on the mix.
func (t TestOutcome) RepairsFlip() bool {
	return t.IsFlip() && t.Mix == ResultPass
}

// BreaksTest reports whether a test passing on both revisions fails on the mix.
func (t TestOutcome) BreaksTest() bool {
	return t.Mix == ResultFail && t.Parent == ResultPass && t.Child == ResultPass
}

func (t TestOutcome) String() string {
	return "Test: " + t.Name +
		" Parent: " + t.Parent.String() +
		" Child: " + t.Child.String() +
		" Mix: " + t.Mix.String()
}
