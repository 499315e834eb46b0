package mark

import "github.com/cockroachdb/errors"

func Wrap(handledErr error, marker error, msg string) error {
	markedErr := errors.Mark(handledErr, marker)
	return errors.WrapWithDepth(1, markedErr, msg)
}

func Message(marker error, msg string) error {
	err := errors.NewWithDepth(1, msg)
	return errors.Mark(err, marker)
}
