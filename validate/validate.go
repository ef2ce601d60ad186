// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package validate - rules applied to parsed option values.
//
// A Rule reports whether a value is acceptable and describes the failure when
// it is not. Rules are stateless, a single rule can be applied to any number
// of values.
package validate

import (
	"cmp"
	"fmt"
)

// Order - The relationship to check a value against.
type Order int

// Order relationships
const (
	// GreaterThan - strictly greater than.
	GreaterThan Order = iota
	// GreaterThanOrEqual - greater than, allowing equality.
	GreaterThanOrEqual
	// LessThan - strictly less than.
	LessThan
	// LessThanOrEqual - less than, allowing equality.
	LessThanOrEqual
	// Equal - equal.
	Equal
	// NotEqual - anything but equal.
	NotEqual
)

func (o Order) String() string {
	switch o {
	case GreaterThan:
		return "greater than"
	case GreaterThanOrEqual:
		return "greater than or equal to"
	case LessThan:
		return "less than"
	case LessThanOrEqual:
		return "less than or equal to"
	case Equal:
		return "equal to"
	default: // NotEqual
		return "not equal to"
	}
}

// Compare - Reports whether value stands in the given relationship to bound.
// For example Compare(GreaterThan, 0, 5) is true because 5 > 0.
func Compare[T cmp.Ordered](o Order, bound, value T) bool {
	switch o {
	case GreaterThan:
		return value > bound
	case GreaterThanOrEqual:
		return value >= bound
	case LessThan:
		return value < bound
	case LessThanOrEqual:
		return value <= bound
	case Equal:
		return value == bound
	default: // NotEqual
		return value != bound
	}
}

// Rule - A single validation applied to a parsed value.
type Rule[T any] interface {
	// IsValid reports whether value passes the rule.
	IsValid(value T) bool
	// Describe returns the failure description for value.
	Describe(value T) string
}

// OrderRule - A Rule comparing the value against a fixed bound.
type OrderRule[T cmp.Ordered] struct {
	order Order
	bound T
}

// NewOrder - Returns a rule that passes when the value stands in the given
// relationship to bound.
func NewOrder[T cmp.Ordered](order Order, bound T) OrderRule[T] {
	return OrderRule[T]{order: order, bound: bound}
}

func (r OrderRule[T]) IsValid(value T) bool {
	return Compare(r.order, r.bound, value)
}

func (r OrderRule[T]) Describe(value T) string {
	return fmt.Sprintf("%v is not %s %v", value, r.order, r.bound)
}
