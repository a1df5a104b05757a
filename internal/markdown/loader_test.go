package markdown

import (
	"context"
	"crypto/sha256"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-md2adf/internal/identity"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"about.md":           {Data: []byte(sampleDocument)},
		"notes.txt":          {Data: []byte("not markdown")},
		"guides/intro.md":    {Data: []byte("# Intro\n")},
		"guides/deep/ref.md": {Data: []byte("# Reference\n")},
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{StripFrontMatter: true})

	result, err := loader.LoadFile(context.Background(), "about.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	doc := result.Document
	sum := sha256.Sum256([]byte(sampleDocument))
	if string(doc.Checksum) != string(sum[:]) {
		t.Fatalf("expected checksum of the raw source")
	}
	if doc.ID != identity.DocumentUUID("about.md") {
		t.Fatalf("expected deterministic id, got %s", doc.ID)
	}
	if doc.FrontMatter.Title != "Sample Document" {
		t.Fatalf("expected front matter title, got %q", doc.FrontMatter.Title)
	}
	if string(result.Source) != sampleDocument {
		t.Fatalf("expected raw source to be kept")
	}
}

func TestLoaderLoadFileMissing(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})
	if _, err := loader.LoadFile(context.Background(), "missing.md"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoaderLoadFileCanceled(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadFile(ctx, "about.md"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestLoaderLoadDirectory(t *testing.T) {
	no := false
	yes := true

	cases := []struct {
		name   string
		cfg    LoaderConfig
		dir    string
		params LoadParams
		want   []string
	}{
		{
			name: "recursive",
			cfg:  LoaderConfig{Recursive: true},
			dir:  ".",
			want: []string{"about.md", "guides/deep/ref.md", "guides/intro.md"},
		},
		{
			name: "root only",
			cfg:  LoaderConfig{},
			dir:  ".",
			want: []string{"about.md"},
		},
		{
			name:   "override recursion off",
			cfg:    LoaderConfig{Recursive: true},
			dir:    "guides",
			params: LoadParams{Recursive: &no},
			want:   []string{"guides/intro.md"},
		},
		{
			name:   "override recursion on",
			cfg:    LoaderConfig{},
			dir:    "guides",
			params: LoadParams{Recursive: &yes},
			want:   []string{"guides/deep/ref.md", "guides/intro.md"},
		},
		{
			name:   "pattern override",
			cfg:    LoaderConfig{Recursive: true},
			dir:    ".",
			params: LoadParams{Pattern: "*.txt"},
			want:   []string{"notes.txt"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader := NewLoader(testFS(), tc.cfg)
			results, failures, err := loader.LoadDirectory(context.Background(), tc.dir, tc.params)
			if err != nil {
				t.Fatalf("LoadDirectory: %v", err)
			}
			if len(failures) != 0 {
				t.Fatalf("unexpected failures: %v", failures)
			}
			if len(results) != len(tc.want) {
				t.Fatalf("expected %d documents, got %d", len(tc.want), len(results))
			}
			for i, want := range tc.want {
				if got := results[i].Document.FilePath; got != want {
					t.Fatalf("document %d: expected %s, got %s", i, want, got)
				}
			}
		})
	}
}

func TestLoaderLoadDirectoryCollectsFailures(t *testing.T) {
	filesystem := testFS()
	filesystem["broken.md"] = &fstest.MapFile{Data: []byte("---\ntitle: [unclosed\n---\nbody\n")}

	loader := NewLoader(filesystem, LoaderConfig{StripFrontMatter: true})
	results, failures, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(failures) != 1 {
		t.Fatalf("expected one failure, got %v", failures)
	}
	if len(results) != 1 || results[0].Document.FilePath != "about.md" {
		t.Fatalf("expected about.md to load, got %d results", len(results))
	}
}
