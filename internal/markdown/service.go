package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-md2adf/internal/convert"
	"github.com/goliatone/go-md2adf/internal/logging"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// Config controls how the Markdown service discovers and parses files.
type Config struct {
	BasePath         string
	Pattern          string
	Recursive        bool
	StripFrontMatter bool
	Parser           interfaces.ParseOptions
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithValidator checks every converted document before it is returned.
func WithValidator(validator interfaces.DocumentValidator) ServiceOption {
	return func(s *Service) {
		s.validator = validator
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service implements interfaces.MarkdownService for filesystem-backed documents.
type Service struct {
	cfg       Config
	converter interfaces.DocumentConverter
	validator interfaces.DocumentValidator
	logger    interfaces.Logger
	loader    *Loader
}

var _ interfaces.MarkdownService = (*Service)(nil)

// NewService constructs a Markdown service using an underlying loader. When
// converter is nil, one backed by a Goldmark parser with cfg.Parser is created.
func NewService(cfg Config, converter interfaces.DocumentConverter, opts ...ServiceOption) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	if converter == nil {
		converter = convert.New(NewGoldmarkParser(cfg.Parser))
	}

	s := &Service{
		cfg:       cfg,
		converter: converter,
		logger:    logging.NoOp(),
		loader: NewLoader(filesystem, LoaderConfig{
			BasePath:         cfg.BasePath,
			Pattern:          cfg.Pattern,
			Recursive:        cfg.Recursive,
			StripFrontMatter: cfg.StripFrontMatter,
		}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Convert converts raw Markdown bytes.
func (s *Service) Convert(ctx context.Context, markdown []byte) (*interfaces.ConversionReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := s.converter.ConvertWithReport(string(markdown))
	if err := s.validate(report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ConvertFile loads and converts a single Markdown document relative to the
// configured base path.
func (s *Service) ConvertFile(ctx context.Context, path string) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, s.normalisePath(path))
	if err != nil {
		return nil, err
	}
	if err := s.convertDocument(result.Document); err != nil {
		return nil, err
	}
	return result.Document, nil
}

// ConvertDirectory converts every Markdown document within dir. Documents are
// sorted by path; files that fail to load, convert or validate are reported in
// ConvertResult.Errors.
func (s *Service) ConvertDirectory(ctx context.Context, dir string, opts interfaces.ConvertOptions) (*interfaces.ConvertResult, error) {
	results, failures, err := s.loader.LoadDirectory(ctx, s.normalisePath(dir), LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	})
	if err != nil {
		return nil, err
	}

	out := &interfaces.ConvertResult{
		Documents: make([]*interfaces.Document, 0, len(results)),
		Errors:    failures,
	}

	for _, result := range results {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.convertDocument(result.Document); err != nil {
			out.Errors = append(out.Errors, err)
			continue
		}
		out.Documents = append(out.Documents, result.Document)
	}

	sort.Slice(out.Errors, func(i, j int) bool {
		return out.Errors[i].Error() < out.Errors[j].Error()
	})

	s.logger.Info("markdown.directory.converted",
		"dir", dir,
		"documents", len(out.Documents),
		"failures", len(out.Errors),
	)
	return out, nil
}

func (s *Service) convertDocument(doc *interfaces.Document) error {
	report := s.converter.ConvertWithReport(string(doc.Body))
	if err := s.validate(report); err != nil {
		return fmt.Errorf("markdown convert %s: %w", doc.FilePath, err)
	}

	doc.ADF = report.Document
	doc.Warnings = report.Warnings

	logging.WithFileContext(s.logger, doc.FilePath, "convert").Debug("markdown.file.converted",
		"id", doc.ID.String(),
		"blocks", len(doc.ADF.Content),
		"warnings", len(doc.Warnings),
	)
	return nil
}

func (s *Service) validate(report interfaces.ConversionReport) error {
	if s.validator == nil {
		return nil
	}
	return s.validator.Validate(report.Document)
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
