package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/scenariotree/internal/ctxlog"
	"github.com/specialistvlad/scenariotree/internal/fsutil"
	"github.com/specialistvlad/scenariotree/internal/hcl_adapter"
	"github.com/specialistvlad/scenariotree/internal/record"
)

// FileName is the canonical scenario tree file name inside a dataset.
const FileName = "scenariotree.json"

// Decoder turns the raw bytes of one scenario tree file into records.
type Decoder interface {
	Decode(ctx context.Context, src []byte, filename string) (*record.Record, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(ctx context.Context, src []byte, filename string) (*record.Record, error)

// Decode calls f.
func (f DecoderFunc) Decode(ctx context.Context, src []byte, filename string) (*record.Record, error) {
	return f(ctx, src, filename)
}

// Format binds a file name to the decoder that reads it.
type Format struct {
	FileName string
	Decoder  Decoder
}

// DefaultFormats lists the supported files in lookup order.
func DefaultFormats() []Format {
	return []Format{
		{FileName: FileName, Decoder: DecoderFunc(decodeJSON)},
		{FileName: "scenariotree.yaml", Decoder: DecoderFunc(decodeYAML)},
		{FileName: "scenariotree.yml", Decoder: DecoderFunc(decodeYAML)},
		{FileName: "scenariotree.hcl", Decoder: hcl_adapter.NewLoader()},
	}
}

// Source reads scenario trees out of dataset directories.
type Source struct {
	formats []Format
}

// New creates a Source. With no formats given it uses DefaultFormats.
func New(formats ...Format) *Source {
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	return &Source{formats: formats}
}

// Load is a shorthand for New().Load.
func Load(ctx context.Context, dataset string) (*record.Record, string, error) {
	return New().Load(ctx, dataset)
}

// Load finds the dataset's scenario tree file, reads and decodes it. It
// returns the root record and the path of the file that was read.
func (s *Source) Load(ctx context.Context, dataset string) (*record.Record, string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Looking up scenario tree.", "dataset", dataset)

	names := make([]string, len(s.formats))
	for i, f := range s.formats {
		names[i] = f.FileName
	}

	path, ok, err := fsutil.FindFirst(dataset, names...)
	if err != nil {
		return nil, "", fmt.Errorf("error accessing dataset %s: %w", dataset, err)
	}
	if !ok {
		expected, absErr := filepath.Abs(filepath.Join(dataset, s.formats[0].FileName))
		if absErr != nil {
			expected = filepath.Join(dataset, s.formats[0].FileName)
		}
		return nil, "", &NotFoundError{Dataset: dataset, Path: expected}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read scenario tree file %s: %w", path, err)
	}

	decoder := s.decoderFor(filepath.Base(path))
	rec, err := decoder.Decode(ctx, src, path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode scenario tree file %s: %w", path, err)
	}

	logger.Debug("Scenario tree file decoded.", "path", path, "records", rec.Count())
	return rec, path, nil
}

func (s *Source) decoderFor(name string) Decoder {
	for _, f := range s.formats {
		if f.FileName == name {
			return f.Decoder
		}
	}
	// Unreachable: FindFirst only returns names taken from s.formats.
	panic(fmt.Sprintf("source: no decoder registered for %s", name))
}

func decodeJSON(_ context.Context, src []byte, _ string) (*record.Record, error) {
	return record.DecodeJSON(src)
}

func decodeYAML(_ context.Context, src []byte, _ string) (*record.Record, error) {
	return record.DecodeYAML(src)
}
