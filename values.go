package args

import (
	"github.com/mattforni/go-args/validate"
)

// HasValue - Indicates if the option has a stored value after the last parse.
// Accepts the short or the long name.
func (a *Args) HasValue(name string) bool {
	long, ok := a.aliases[name]
	if !ok {
		return false
	}
	_, ok = a.values[long]
	return ok
}

// ValueOf - Returns the stored value of the option as type T. The name may
// be the short or the long one.
//
// Fails with NotPresentError when the option is unknown or has no stored
// value, and with IncorrectTypeError when T is not the declared type. Values
// never convert on read.
func ValueOf[T Scalar](a *Args, name string) (T, error) {
	var zero T
	long, ok := a.aliases[name]
	if !ok {
		return zero, &NotPresentError{Name: name}
	}
	v, ok := a.values[long]
	if !ok {
		return zero, &NotPresentError{Name: name}
	}
	value, ok := v.Interface().(T)
	if !ok {
		return zero, &IncorrectTypeError{Name: name, Stored: v.Kind().String(), Requested: kindOf[T]().String()}
	}
	return value, nil
}

// OptionalValueOf - Like ValueOf, except an optional option that was not
// given resolves to (nil, nil) instead of an error. Unknown names still fail,
// asking for an option that was never declared is a programming mistake.
func OptionalValueOf[T Scalar](a *Args, name string) (*T, error) {
	long, ok := a.aliases[name]
	if !ok {
		return nil, &NotPresentError{Name: name}
	}
	v, ok := a.values[long]
	if !ok {
		return nil, nil
	}
	value, ok := v.Interface().(T)
	if !ok {
		return nil, &IncorrectTypeError{Name: name, Stored: v.Kind().String(), Requested: kindOf[T]().String()}
	}
	return &value, nil
}

// ValidatedValueOf - Returns the stored value of the option after applying
// every rule. Retrieval failures propagate as they are. Every rule runs even
// after one fails, the returned ValidationError describes all of the failed
// rules in the order they were given.
func ValidatedValueOf[T Scalar](a *Args, name string, rules ...validate.Rule[T]) (T, error) {
	value, err := ValueOf[T](a, name)
	if err != nil {
		return value, err
	}
	if failures := describeFailures(value, rules); len(failures) > 0 {
		var zero T
		return zero, &ValidationError{Name: name, Failures: failures}
	}
	return value, nil
}

// OptionalValidatedValueOf - Like ValidatedValueOf, except an optional option
// that was not given resolves to (nil, nil). Rules only run when a value is
// present.
func OptionalValidatedValueOf[T Scalar](a *Args, name string, rules ...validate.Rule[T]) (*T, error) {
	value, err := OptionalValueOf[T](a, name)
	if err != nil || value == nil {
		return value, err
	}
	if failures := describeFailures(*value, rules); len(failures) > 0 {
		return nil, &ValidationError{Name: name, Failures: failures}
	}
	return value, nil
}

// describeFailures runs every rule and collects the descriptions of the ones
// that fail, in rule order.
func describeFailures[T Scalar](value T, rules []validate.Rule[T]) []string {
	var failures []string
	for _, rule := range rules {
		if !rule.IsValid(value) {
			failures = append(failures, rule.Describe(value))
		}
	}
	return failures
}
