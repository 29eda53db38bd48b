package log

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

var pkgPath = reflect.TypeOf(Logger{}).PkgPath()

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// wrapperTypes are error types which only carry another error. They are
// looked through when naming an error, and reported as "Error" when
// nothing more specific is wrapped.
var wrapperTypes = map[string]bool{
	"errors.errorString": true,
	"errors.joinError":   true,
	"errors.fundamental": true,
	"errors.withStack":   true,
	"errors.withMessage": true,
	"fmt.wrapError":      true,
	"fmt.wrapErrors":     true,
}

// callerStack returns the stack of the goroutine starting at the first
// frame outside this package, one function and file:line pair per frame
// as github.com/pkg/errors prints them.
func callerStack() string {
	pcs := make([]uintptr, 32)
	for {
		n := runtime.Callers(2, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}
	frames := runtime.CallersFrames(pcs)
	var b strings.Builder
	outside := false
	for {
		frame, more := frames.Next()
		if outside || !strings.HasPrefix(frame.Function, pkgPath+".") {
			outside = true
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s\n\t%s:%d", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

// isNilError reports whether err is a typed nil, which would panic when
// its methods are called.
func isNilError(err error) bool {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// errorName names err by a Name method if one is in the chain, otherwise
// by the Go type of the first error in the chain which isn't a plain
// wrapper.
func errorName(err error) string {
	var named interface{ Name() string }
	if errors.As(err, &named) {
		return named.Name()
	}
	for {
		name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
		if !wrapperTypes[name] {
			return name
		}
		next := errors.Unwrap(err)
		if next == nil {
			return "Error"
		}
		err = next
	}
}

// errorStack returns the stack carried by err: a Stack method if one is in
// the chain, otherwise the deepest github.com/pkg/errors stack trace.
func errorStack(err error) string {
	var stacker interface{ Stack() string }
	if errors.As(err, &stacker) {
		return stacker.Stack()
	}
	var st stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			st = t
		}
	}
	if st == nil {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%+v", st.StackTrace()), "\n")
}
