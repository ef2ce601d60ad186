// This file is part of go-args.
//
// Copyright (C) 2016-2025  Matthew Fornaciari
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package validate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderString(t *testing.T) {
	tests := []struct {
		order Order
		want  string
	}{
		{GreaterThan, "greater than"},
		{GreaterThanOrEqual, "greater than or equal to"},
		{LessThan, "less than"},
		{LessThanOrEqual, "less than or equal to"},
		{Equal, "equal to"},
		{NotEqual, "not equal to"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.order.String())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		bound int
		value int
		want  bool
	}{
		{"gt above", GreaterThan, 0, 5, true},
		{"gt equal", GreaterThan, 5, 5, false},
		{"gt below", GreaterThan, 5, 4, false},
		{"gte equal", GreaterThanOrEqual, 5, 5, true},
		{"gte below", GreaterThanOrEqual, 5, 4, false},
		{"lt below", LessThan, 10, 9, true},
		{"lt equal", LessThan, 10, 10, false},
		{"lte equal", LessThanOrEqual, 10, 10, true},
		{"lte above", LessThanOrEqual, 10, 11, false},
		{"eq", Equal, 7, 7, true},
		{"eq miss", Equal, 7, 8, false},
		{"ne", NotEqual, 7, 8, true},
		{"ne miss", NotEqual, 7, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.order, tt.bound, tt.value))
		})
	}
}

func TestOrderRule(t *testing.T) {
	rule := NewOrder(GreaterThan, 0)
	assert.True(t, rule.IsValid(1))
	assert.False(t, rule.IsValid(0))
	assert.False(t, rule.IsValid(-1))
	assert.Equal(t, "0 is not greater than 0", rule.Describe(0))
}

func TestOrderRuleStrings(t *testing.T) {
	rule := NewOrder(LessThan, "n")
	assert.True(t, rule.IsValid("m"))
	assert.False(t, rule.IsValid("z"))
	assert.Equal(t, "z is not less than n", rule.Describe("z"))
}

func TestOrderRuleDurations(t *testing.T) {
	rule := NewOrder(LessThanOrEqual, time.Hour)
	assert.True(t, rule.IsValid(30*time.Minute))
	assert.False(t, rule.IsValid(2*time.Hour))
	assert.Equal(t, "2h0m0s is not less than or equal to 1h0m0s", rule.Describe(2*time.Hour))
}

// evenRule shows a rule outside of this package, anything with IsValid and
// Describe plugs in.
type evenRule struct{}

func (evenRule) IsValid(value int) bool { return value%2 == 0 }
func (evenRule) Describe(value int) string {
	return fmt.Sprintf("%d is not even", value)
}

func TestCustomRule(t *testing.T) {
	var rule Rule[int] = evenRule{}
	assert.True(t, rule.IsValid(4))
	assert.False(t, rule.IsValid(5))
	assert.Equal(t, "5 is not even", rule.Describe(5))
}
