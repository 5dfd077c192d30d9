package annot

import (
	"github.com/cottand/annot/internal/log"
	"github.com/pkg/errors"
)

var logger = log.Section("annot")

// fatalf reports a defect in this package, never a caller mistake,
// so it does not return.
func fatalf(format string, args ...any) {
	err := errors.Errorf(format, args...)
	logger.Error("annotation invariant violated", "err", err.Error())
	panic(err)
}
