package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees every write into all of its writers. A failing writer does not
// stop the others; the failures are combined into the returned error.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write returns the total count of bytes written across all writers.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		total int
		errs  error
	)
	for _, w := range cw.Writers {
		n, err := w.Write(p)
		total += n
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		cw.Err = multierr.Append(cw.Err, errs)
	}
	return total, errs
}
