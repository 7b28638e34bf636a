package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/pkg/errors"
)

const (
	defaultAlgorithm domain.ChecksumAlgorithm = "cksum"
	algorithmHeader                           = "# algorithm:"
)

// TextCodec reads and writes the line format printed by cksum.
// Lines starting with '#' are comments; a "# algorithm: <name>" comment
// names the algorithm, which otherwise defaults to cksum.
type TextCodec struct{}

func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

func (c *TextCodec) Format() Format {
	return FormatText
}

// Encode writes one line per entry. The algorithm header is only written for
// algorithms other than cksum, so the output of a cksum manifest is
// byte-identical to running cksum over the same files.
func (c *TextCodec) Encode(w io.Writer, m *domain.Manifest) error {
	bw := bufio.NewWriter(w)

	if m.Algorithm != "" && m.Algorithm != defaultAlgorithm {
		if _, err := fmt.Fprintf(bw, "%s %s\n", algorithmHeader, m.Algorithm); err != nil {
			return err
		}
	}

	for _, e := range m.Entries {
		if _, err := bw.WriteString(FormatLine(e)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// FormatLine renders an entry the way cksum prints it. Entries without a
// path, such as a checksum of stdin, omit the trailing field.
func FormatLine(e domain.ManifestEntry) string {
	if e.Path == "" {
		return fmt.Sprintf("%d %d", e.Checksum, e.Size)
	}
	return fmt.Sprintf("%d %d %s", e.Checksum, e.Size, e.Path)
}

func (c *TextCodec) Decode(r io.Reader) (*domain.Manifest, error) {
	m := domain.Manifest{Algorithm: defaultAlgorithm, Entries: make([]domain.ManifestEntry, 0)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if rest, ok := strings.CutPrefix(line, algorithmHeader); ok {
				m.Algorithm = domain.ChecksumAlgorithm(strings.TrimSpace(rest))
			}
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, errors.NewChecksumError(
				errors.ErrorManifest, "decode", fmt.Sprintf("line %d", lineNo), err,
			)
		}
		m.Entries = append(m.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewChecksumError(errors.ErrorIO, "decode", "", err)
	}

	return &m, nil
}

// parseLine splits on the first two spaces only, so paths may contain spaces.
func parseLine(line string) (domain.ManifestEntry, error) {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return domain.ManifestEntry{}, fmt.Errorf("expected \"<checksum> <size> [path]\", got %q", line)
	}

	sum, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return domain.ManifestEntry{}, fmt.Errorf("invalid checksum %q: %w", fields[0], err)
	}

	size, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return domain.ManifestEntry{}, fmt.Errorf("invalid size %q: %w", fields[1], err)
	}

	entry := domain.ManifestEntry{Checksum: sum, Size: size}
	if len(fields) == 3 {
		entry.Path = fields[2]
	}
	return entry, nil
}
