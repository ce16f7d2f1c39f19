package merge

import (
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// PartialSuffix is appended to the output path while a merge is running.
const PartialSuffix = ".partial"

// FileOptions configures MergeFiles.
type FileOptions struct {
	TimestampField string      // Record key to order by; empty means DefaultTimestampField.
	Logger         *zap.Logger // Optional; nil disables logging.
}

// MergeFiles merges the JSON line files at pathA and pathB into outPath.
// Output is written to outPath+PartialSuffix and renamed into place only
// after a successful merge, so a failed run never leaves a file at outPath.
// The partial file of a failed run is left on disk.
func MergeFiles(pathA, pathB, outPath string, opts FileOptions) (stats Stats, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fa, err := os.Open(pathA)
	if err != nil {
		return stats, &IOError{Op: "open", Source: pathA, Err: err}
	}
	defer closeFile(&err, fa)

	fb, err := os.Open(pathB)
	if err != nil {
		return stats, &IOError{Op: "open", Source: pathB, Err: err}
	}
	defer closeFile(&err, fb)

	partial := outPath + PartialSuffix
	out, err := os.Create(partial)
	if err != nil {
		return stats, &IOError{Op: "open", Source: partial, Err: err}
	}
	outClosed := false
	defer func() {
		if !outClosed {
			closeFile(&err, out)
		}
	}()

	sink := NewLineSink(partial, out)
	stats, err = New(WithLogger(logger)).Merge(
		NewLineSource(pathA, fa, opts.TimestampField),
		NewLineSource(pathB, fb, opts.TimestampField),
		sink,
	)
	if err != nil {
		// Keep what was already emitted on disk.
		multierr.AppendInto(&err, sink.Flush())
		logger.Error("Merge aborted",
			zap.String("partialFile", partial),
			zap.Int("written", sink.Written()),
			zap.Error(err))
		return stats, err
	}

	if err = sink.Flush(); err != nil {
		return stats, err
	}
	outClosed = true
	if cerr := out.Close(); cerr != nil {
		return stats, &IOError{Op: "close", Source: partial, Err: cerr}
	}
	if rerr := os.Rename(partial, outPath); rerr != nil {
		return stats, &IOError{Op: "rename", Source: partial, Err: rerr}
	}

	logger.Debug("Merged output renamed into place", zap.String("file", outPath))
	return stats, nil
}

// closeFile closes f and appends any failure to *errp.
func closeFile(errp *error, f *os.File) {
	if cerr := f.Close(); cerr != nil {
		multierr.AppendInto(errp, &IOError{Op: "close", Source: f.Name(), Err: cerr})
	}
}
