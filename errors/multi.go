package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil values are given, nil is returned.
// If only a single non nil error is given, it is returned unchanged.
func Append(errs ...error) error {
	var me multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		// Flatten so that the tree stays shallow.
		if m, ok := e.(multiErr); ok {
			me = append(me, m...)
			continue
		}
		me = append(me, e)
	}

	switch len(me) {
	case 0:
		return nil
	case 1:
		return me[0]
	default:
		return me
	}
}

// multiErr represents a group of errors. It is created by the Append
// function.
type multiErr []error

func (me multiErr) Error() string {
	if len(me) == 1 {
		return me[0].Error()
	}
	points := make([]string, len(me))
	for i, err := range me {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(me), strings.Join(points, "\n\t"))
}

// Unpack returns all errors that this group is made of.
func (me multiErr) Unpack() []error {
	return []error(me)
}

// unpacker is implemented by errors that are a group of other errors.
type unpacker interface {
	Unpack() []error
}
