package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-command/dispatcher"

	"github.com/goliatone/go-md2adf"
	"github.com/goliatone/go-md2adf/commands"
	"github.com/goliatone/go-md2adf/internal/di"
)

var moduleBuilder = md2adf.New

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("md2adf: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("md2adf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "Markdown file to convert, relative to -base")
	dir := fs.String("dir", "", "Directory to convert, relative to -base")
	base := fs.String("base", ".", "Base path for -file and -dir")
	out := fs.String("out", "", "Output file for -file (\"-\" for stdout) or output directory for -dir")
	pattern := fs.String("pattern", "", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Walk sub-directories in -dir mode")
	stripFrontMatter := fs.Bool("strip-front-matter", true, "Remove YAML/TOML front matter before converting files")
	extensions := fs.String("extensions", "table,strikethrough", "Comma separated goldmark extensions")
	hardWraps := fs.Bool("hard-wraps", false, "Treat soft line breaks as hard breaks")
	maxDepth := fs.Int("max-depth", 0, "Maximum container nesting depth (0 disables the limit)")
	validate := fs.Bool("validate", false, "Validate output against the ADF schema")
	warnings := fs.Bool("warnings", false, "Report content dropped during conversion on stderr")
	pretty := fs.Bool("pretty", true, "Indent JSON written for standard input conversions")
	logEnabled := fs.Bool("log", false, "Enable runtime logging on stderr")
	logProvider := fs.String("log-provider", "console", "Logging provider (console or gologger)")
	logLevel := fs.String("log-level", "info", "Minimum log level")
	logFormat := fs.String("log-format", "", "go-logger output format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file != "" && *dir != "" {
		return errors.New("-file and -dir are mutually exclusive")
	}

	cfg := md2adf.DefaultConfig()
	cfg.Parser.Extensions = splitList(*extensions)
	cfg.Parser.HardWraps = *hardWraps
	cfg.Converter.MaxDepth = *maxDepth
	cfg.Converter.CollectWarnings = *warnings
	cfg.Validation.Enabled = *validate
	cfg.Files.Enabled = *file != "" || *dir != ""
	cfg.Files.BasePath = *base
	cfg.Files.Recursive = *recursive
	cfg.Files.StripFrontMatter = *stripFrontMatter
	if strings.TrimSpace(*pattern) != "" {
		cfg.Files.Pattern = *pattern
	}
	cfg.Features.Logger = *logEnabled
	cfg.Logging.Provider = *logProvider
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := moduleBuilder(cfg, di.WithLogWriter(stderr))
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	if !cfg.Files.Enabled {
		return convertStdin(ctx, module, stdin, stdout, stderr, *pretty)
	}

	registration, err := commands.RegisterContainerCommands(module.Container(), commands.RegistrationOptions{
		Dispatcher: commands.GoCommandDispatcher{},
		Stdout:     stdout,
	})
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	defer registration.Unsubscribe()

	if *file != "" {
		target := *out
		if strings.TrimSpace(target) == "" {
			target = md2adf.StdoutTarget
		}
		return dispatcher.Dispatch(ctx, md2adf.ConvertFileCommand{
			Path:   *file,
			Output: target,
		})
	}

	if strings.TrimSpace(*out) == "" {
		return errors.New("-out is required with -dir")
	}
	return dispatcher.Dispatch(ctx, md2adf.ConvertDirectoryCommand{
		Directory: *dir,
		OutputDir: *out,
		Pattern:   *pattern,
		Recursive: recursive,
	})
}

func convertStdin(ctx context.Context, module *md2adf.Module, stdin io.Reader, stdout, stderr io.Writer, pretty bool) error {
	source, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	report, err := module.Convert(ctx, source)
	if err != nil {
		return err
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(stderr, "warning: %s (%s): %s\n", warning.Type, warning.NodeType, warning.Message)
	}

	var encoded []byte
	if pretty {
		encoded, err = json.MarshalIndent(report.Document, "", "  ")
	} else {
		encoded, err = json.Marshal(report.Document)
	}
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	encoded = append(encoded, '\n')
	_, err = stdout.Write(encoded)
	return err
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
