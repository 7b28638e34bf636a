// Package checksum computes and verifies checksums of dataset files.
package checksum

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/iamNilotpal/cksum/internal/adapters/checksum"
	"github.com/iamNilotpal/cksum/internal/adapters/compression"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/ports"
	"github.com/iamNilotpal/cksum/pkg/errors"
	"github.com/iamNilotpal/cksum/pkg/fs"
	"github.com/iamNilotpal/cksum/pkg/logger"
	"github.com/iamNilotpal/cksum/pkg/system"
	"go.uber.org/zap"
)

// Service checksums buffers, streams and files with one configured
// algorithm and optional decompression. It holds no per-call state and is
// safe for concurrent use.
type Service struct {
	options  *domain.Options
	checksum ports.ChecksumPort
	fs       ports.FileSystemPort
	log      *zap.SugaredLogger
}

// New validates opts, fills in defaults and builds a Service. A nil opts
// gives the cksum-compatible defaults, a nil log discards logs and a nil
// fsys reads from the local filesystem.
func New(opts *domain.Options, log *zap.SugaredLogger, fsys ports.FileSystemPort) (*Service, error) {
	if opts == nil {
		opts = &domain.Options{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	cs, err := checksum.FromOptions(opts.ChecksumOptions)
	if err != nil {
		return nil, err
	}

	if fsys == nil {
		fsys = fs.NewLocalFileSystem()
	}

	return &Service{options: opts, checksum: cs, fs: fsys, log: logger.OrNop(log)}, nil
}

// Algorithm returns the name of the configured algorithm.
func (s *Service) Algorithm() domain.ChecksumAlgorithm {
	return domain.ChecksumAlgorithm(s.checksum.Name())
}

// Options returns the options in effect after defaults were applied.
func (s *Service) Options() *domain.Options {
	return s.options
}

// FileSystem returns the filesystem the service reads from.
func (s *Service) FileSystem() ports.FileSystemPort {
	return s.fs
}

// Sum checksums a []byte, string or io.Reader as-is, without decompression.
// Reader errors are returned unchanged.
func (s *Service) Sum(input any) (uint64, error) {
	switch v := input.(type) {
	case []byte:
		return s.checksum.Calculate(v), nil
	case string:
		return s.checksum.Calculate([]byte(v)), nil
	case io.Reader:
		sum, _, err := s.checksum.CalculateReader(v)
		return sum, err
	default:
		return 0, errors.NewValidationError("input", fmt.Sprintf("%T", input), fmt.Errorf("unsupported checksum input"))
	}
}

// SumReader checksums r, applying the configured decompression. r is not
// closed. name is only used to label the result and errors.
func (s *Service) SumReader(r io.Reader, name string) (*domain.FileChecksum, error) {
	start := time.Now()
	tracked := &trackingReader{r: r}

	rc, format, err := compression.Reader(tracked, s.options.CompressionOptions, int(s.options.BufferSize))
	if err != nil {
		return nil, s.classify(err, tracked, format, "decompress", name)
	}
	defer rc.Close()

	sum, n, err := s.checksum.CalculateReader(rc)
	if err != nil {
		return nil, s.classify(err, tracked, format, "read", name)
	}

	result := &domain.FileChecksum{
		Path:        name,
		Algorithm:   s.Algorithm(),
		Checksum:    sum,
		Size:        uint64(n),
		Compression: format,
		Duration:    time.Since(start),
	}

	s.log.Debugw("checksum computed", "path", name, "checksum", sum, "size", n, "compression", format)
	return result, nil
}

// SumFile opens path, checksums it and closes it regardless of outcome.
// The file stops being read once ctx is done or FileTimeout elapses.
func (s *Service) SumFile(ctx context.Context, path string) (*domain.FileChecksum, error) {
	if s.options.FileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.FileTimeout)
		defer cancel()
	}

	var result *domain.FileChecksum

	err := system.RunWithContext(ctx, func(opCtx context.Context) (err error) {
		file, err := s.fs.Open(path)
		if err != nil {
			return errors.NewChecksumError(errors.ErrorIO, "open", path, err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = errors.NewChecksumError(errors.ErrorIO, "close", path, cerr)
			}
		}()

		reader := bufio.NewReaderSize(&contextReader{ctx: opCtx, r: file}, int(s.options.BufferSize))
		result, err = s.SumReader(reader, path)
		return err
	})
	if err != nil {
		s.log.Debugw("checksum failed", "path", path, "error", err)
		return nil, err
	}

	return result, nil
}

// VerifyFile checksums path and compares it with expected. Failures to read
// the file are reported in the result rather than as an error.
func (s *Service) VerifyFile(ctx context.Context, path string, expected domain.ManifestEntry) *domain.VerifyResult {
	result := &domain.VerifyResult{Expected: expected}

	exists, err := s.fs.Exists(path)
	if err != nil {
		result.Status = domain.VerifyError
		result.Error = err.Error()
		return result
	}
	if !exists {
		result.Status = domain.VerifyMissing
		s.log.Warnw("file missing", "path", path)
		return result
	}

	actual, err := s.SumFile(ctx, path)
	if err != nil {
		result.Status = domain.VerifyError
		result.Error = err.Error()
		s.log.Warnw("verification failed", "path", path, "error", err)
		return result
	}
	result.Actual = actual

	switch {
	case actual.Size != expected.Size:
		result.Status = domain.VerifySizeMismatch
		s.log.Warnw("size mismatch", "path", path, "expected", expected.Size, "actual", actual.Size)
	case actual.Checksum != expected.Checksum:
		result.Status = domain.VerifyMismatch
		s.log.Warnw("checksum mismatch", "path", path, "expected", expected.Checksum, "actual", actual.Checksum)
	default:
		result.Status = domain.VerifyOK
	}

	return result
}

// classify attributes a failure to the source when the source itself failed
// and to the decoder otherwise.
func (s *Service) classify(err error, src *trackingReader, format domain.CompressionFormat, op, name string) error {
	if src.err != nil || format == domain.CompressionNone {
		return errors.NewChecksumError(errors.ErrorIO, op, name, err)
	}
	return errors.NewChecksumError(errors.ErrorDecompression, op, name, err)
}

// trackingReader remembers the first non-EOF error returned by r.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

// contextReader fails reads once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
