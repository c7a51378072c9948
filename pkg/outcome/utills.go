package outcome

import "reflect"

// IsNil reports whether i is nil or an interface holding a nil pointer, map,
// slice, channel or func.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// FailuresOf recovers the Failure values inside err, typically the value of
// Result.Err, possibly wrapped with fmt.Errorf. The error tree is walked depth
// first through both Unwrap() error and Unwrap() []error; errors that are not
// failures are skipped.
func FailuresOf(err error) []Failure {
	var failures []Failure
	walkFailures(err, func(f Failure) {
		failures = append(failures, f)
	})
	return failures
}

func walkFailures(err error, visit func(Failure)) {
	if IsNil(err) {
		return
	}

	switch e := err.(type) {
	case Failure:
		visit(e)
	case *Failure:
		visit(*e)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			walkFailures(inner, visit)
		}
	case interface{ Unwrap() error }:
		walkFailures(e.Unwrap(), visit)
	}
}
