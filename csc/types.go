// SPDX-License-Identifier: MIT

// Package csc: domain types shared by the validator, the tracer and the
// dense adapters.
package csc

import (
	"strconv"
	"strings"
)

// Index is the integer width a host uses for matrix indices. It must be
// wide enough to hold nz and every row index.
type Index interface {
	~int | ~int32 | ~int64
}

// Rule names one structural invariant of the CSC format.
type Rule uint8

const (
	// RuleNone is the zero Rule; a Violation with RuleNone means "no violation".
	RuleNone Rule = iota
	// RuleDimensions: n_row >= 0 and n_col >= 0.
	RuleDimensions
	// RuleLength: len(ColPtr) > n_col and len(RowIdx) >= nz.
	RuleLength
	// RuleColPtrStart: ColPtr[0] == 0.
	RuleColPtrStart
	// RuleNNZ: ColPtr[n_col] >= 0.
	RuleNNZ
	// RuleColPtrOrder: ColPtr[j] <= ColPtr[j+1] (and hence <= nz).
	RuleColPtrOrder
	// RuleRowOrder: row indices strictly increase within a column.
	RuleRowOrder
	// RuleRowRange: row indices lie below n_row (and, strictly, at or above 0).
	RuleRowRange
)

var ruleNames = [...]string{
	RuleNone:        "none",
	RuleDimensions:  "dimensions",
	RuleLength:      "length",
	RuleColPtrStart: "colptr-start",
	RuleNNZ:         "nnz",
	RuleColPtrOrder: "colptr-order",
	RuleRowOrder:    "row-order",
	RuleRowRange:    "row-range",
}

// String returns the short rule name used in logs.
func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}

	return "rule(" + strconv.Itoa(int(r)) + ")"
}

// sentinel maps the rule to its package error.
func (r Rule) sentinel() error {
	switch r {
	case RuleDimensions:
		return ErrNegativeDimension
	case RuleLength:
		return ErrLength
	case RuleColPtrStart:
		return ErrColPtrStart
	case RuleNNZ:
		return ErrNegativeNNZ
	case RuleColPtrOrder:
		return ErrColPtrOrder
	case RuleRowOrder:
		return ErrRowOrder
	case RuleRowRange:
		return ErrRowRange
	default:
		return ErrInvalid
	}
}

// Violation locates the first broken invariant.
// Col and Pos are -1 when they do not apply to the rule. Row holds the
// offending value: the negative dimension, the required slice length,
// ColPtr[0], nz, ColPtr[j+1] or the row index, depending on Rule.
type Violation struct {
	Rule Rule  // which invariant failed
	Col  int64 // column j
	Pos  int64 // position p in RowIdx
	Row  int64 // offending value
}

// noViolation is returned alongside ok == true.
var noViolation = Violation{Rule: RuleNone, Col: -1, Pos: -1, Row: -1}

// String renders the violation for error messages.
func (v Violation) String() string {
	var b strings.Builder
	b.WriteString(v.Rule.String())
	b.WriteString(" violated")
	if v.Col >= 0 {
		b.WriteString(" col=")
		b.WriteString(strconv.FormatInt(v.Col, 10))
	}
	if v.Pos >= 0 {
		b.WriteString(" pos=")
		b.WriteString(strconv.FormatInt(v.Pos, 10))
	}
	if v.Rule != RuleNone {
		b.WriteString(" value=")
		b.WriteString(strconv.FormatInt(v.Row, 10))
	}

	return b.String()
}
