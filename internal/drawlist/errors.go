package drawlist

import (
	"errors"
	"fmt"
)

// Reason names the budget a Builder ran out of.
type Reason string

const (
	ReasonDrawlistBytes Reason = "drawlist-budget-exceeded"
	ReasonBlobBytes     Reason = "blob-budget-exceeded"
	ReasonCommands      Reason = "command-budget-exceeded"
	ReasonStrings       Reason = "string-budget-exceeded"
	ReasonBlobs         Reason = "blob-count-exceeded"
	ReasonSegments      Reason = "segment-budget-exceeded"
	ReasonClipDepth     Reason = "clip-depth-exceeded"
)

// Sentinels matched by errors.Is against a *BudgetError.
var (
	ErrDrawlistBudget = errors.New(string(ReasonDrawlistBytes))
	ErrBlobBudget     = errors.New(string(ReasonBlobBytes))
	ErrCommandBudget  = errors.New(string(ReasonCommands))
	ErrStringBudget   = errors.New(string(ReasonStrings))
	ErrBlobCount      = errors.New(string(ReasonBlobs))
	ErrSegmentBudget  = errors.New(string(ReasonSegments))
	ErrClipDepth      = errors.New(string(ReasonClipDepth))
)

var reasonErrs = map[Reason]error{
	ReasonDrawlistBytes: ErrDrawlistBudget,
	ReasonBlobBytes:     ErrBlobBudget,
	ReasonCommands:      ErrCommandBudget,
	ReasonStrings:       ErrStringBudget,
	ReasonBlobs:         ErrBlobCount,
	ReasonSegments:      ErrSegmentBudget,
	ReasonClipDepth:     ErrClipDepth,
}

// BudgetError reports that a frame did not fit its Limits. Need is the
// amount the failing operation required against Limit.
type BudgetError struct {
	Reason Reason
	Limit  int
	Need   int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s: need %d, limit %d", e.Reason, e.Need, e.Limit)
}

func (e *BudgetError) Unwrap() error {
	return reasonErrs[e.Reason]
}

// FormatKind classifies a malformed drawlist.
type FormatKind string

const (
	KindBadMagic      FormatKind = "bad-magic"
	KindBadVersion    FormatKind = "bad-version"
	KindTruncated     FormatKind = "truncated"
	KindMisaligned    FormatKind = "misaligned"
	KindOutOfBounds   FormatKind = "out-of-bounds"
	KindSizeMismatch  FormatKind = "size-mismatch"
	KindUnknownOpcode FormatKind = "unknown-opcode"
)

// Sentinels matched by errors.Is against a *FormatError.
var (
	ErrBadMagic      = errors.New(string(KindBadMagic))
	ErrBadVersion    = errors.New(string(KindBadVersion))
	ErrTruncated     = errors.New(string(KindTruncated))
	ErrMisaligned    = errors.New(string(KindMisaligned))
	ErrOutOfBounds   = errors.New(string(KindOutOfBounds))
	ErrSizeMismatch  = errors.New(string(KindSizeMismatch))
	ErrUnknownOpcode = errors.New(string(KindUnknownOpcode))
)

var kindErrs = map[FormatKind]error{
	KindBadMagic:      ErrBadMagic,
	KindBadVersion:    ErrBadVersion,
	KindTruncated:     ErrTruncated,
	KindMisaligned:    ErrMisaligned,
	KindOutOfBounds:   ErrOutOfBounds,
	KindSizeMismatch:  ErrSizeMismatch,
	KindUnknownOpcode: ErrUnknownOpcode,
}

// FormatError reports a malformed drawlist. Offset is the byte position in
// the buffer where the problem was found.
type FormatError struct {
	Kind   FormatKind
	Offset int
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("drawlist: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("drawlist: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return kindErrs[e.Kind]
}

func formatErr(kind FormatKind, off int, format string, args ...any) *FormatError {
	return &FormatError{Kind: kind, Offset: off, Detail: fmt.Sprintf(format, args...)}
}
