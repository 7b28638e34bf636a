// Package manifest builds checksum manifests for dataset directories and
// verifies files against them.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	codec "github.com/iamNilotpal/cksum/internal/adapters/manifest"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/services/checksum"
	"github.com/iamNilotpal/cksum/pkg/errors"
	"github.com/iamNilotpal/cksum/pkg/fs"
	"github.com/iamNilotpal/cksum/pkg/logger"
	"go.uber.org/zap"
)

// Service builds and verifies manifests using a checksum service.
type Service struct {
	checksum *checksum.Service
	log      *zap.SugaredLogger
}

// Report summarises a verification run.
type Report struct {
	Results []*domain.VerifyResult `json:"results"`
	Passed  int                    `json:"passed"`
	Failed  int                    `json:"failed"`
}

// OK reports whether every file matched.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func New(cs *checksum.Service, log *zap.SugaredLogger) *Service {
	return &Service{checksum: cs, log: logger.OrNop(log)}
}

// Build checksums every regular file under root, honouring the service's
// extension and exclude filters. Entry paths are relative to root.
func (s *Service) Build(ctx context.Context, root string) (*domain.Manifest, error) {
	opts := s.checksum.Options()

	files, err := s.checksum.FileSystem().WalkFiles(root, opts.ExcludeDirs, opts.Extensions)
	if err != nil {
		return nil, errors.NewChecksumError(errors.ErrorIO, "walk", root, err)
	}

	m := domain.Manifest{
		Algorithm: s.checksum.Algorithm(),
		Entries:   make([]domain.ManifestEntry, 0, len(files)),
	}

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := s.checksum.SumFile(ctx, filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}

		m.Entries = append(m.Entries, domain.ManifestEntry{Checksum: res.Checksum, Size: res.Size, Path: rel})
	}

	s.log.Infow("manifest built", "root", root, "files", len(m.Entries), "algorithm", m.Algorithm)
	return &m, nil
}

// Verify checks every entry of m against the file it names, resolved
// relative to baseDir. Files that fail do not stop the run. An error is only
// returned when m was computed with a different algorithm or ctx is done.
func (s *Service) Verify(ctx context.Context, m *domain.Manifest, baseDir string) (*Report, error) {
	if m.Algorithm != "" && m.Algorithm != s.checksum.Algorithm() {
		return nil, errors.NewChecksumError(
			errors.ErrorManifest, "verify", "",
			fmt.Errorf("manifest uses %s but verifier is configured for %s", m.Algorithm, s.checksum.Algorithm()),
		)
	}

	report := Report{Results: make([]*domain.VerifyResult, 0, len(m.Entries))}

	for _, entry := range m.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := s.checksum.VerifyFile(ctx, s.resolve(baseDir, entry.Path), entry)
		report.Results = append(report.Results, result)

		if result.OK() {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	s.log.Infow("manifest verified", "files", len(report.Results), "passed", report.Passed, "failed", report.Failed)
	return &report, nil
}

func (s *Service) resolve(baseDir, p string) string {
	if path.IsAbs(p) || filepath.IsAbs(p) {
		return filepath.FromSlash(p)
	}
	return filepath.Join(baseDir, filepath.FromSlash(p))
}

// Load reads a manifest file, picking the encoding from its extension.
func Load(path string) (*domain.Manifest, error) {
	c, err := codec.NewCodec(codec.FormatForPath(path))
	if err != nil {
		return nil, err
	}

	var m *domain.Manifest
	err = fs.WithFile(path, func(f *os.File) error {
		m, err = c.Decode(f)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path in the given encoding, creating parent directories.
func Save(path string, m *domain.Manifest, format codec.Format) (err error) {
	c, err := codec.NewCodec(format)
	if err != nil {
		return err
	}

	if err := fs.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.NewChecksumError(errors.ErrorIO, "mkdir", filepath.Dir(path), err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewChecksumError(errors.ErrorIO, "create", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.NewChecksumError(errors.ErrorIO, "close", path, cerr)
		}
	}()

	if err := c.Encode(file, m); err != nil {
		return errors.NewChecksumError(errors.ErrorIO, "write", path, err)
	}
	return nil
}
