package convertcmd

import "testing"

func TestConvertFileCommandValidateRequiresPath(t *testing.T) {
	cmd := ConvertFileCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when path missing")
	}

	cmd.Path = "  "
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when path is blank")
	}

	cmd.Path = "docs/a.md"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when path provided: %v", err)
	}
}

func TestConvertDirectoryCommandValidate(t *testing.T) {
	cmd := ConvertDirectoryCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory missing")
	}

	cmd.Directory = "docs"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when directory provided: %v", err)
	}

	cmd.Pattern = "[unclosed"
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for malformed pattern")
	}

	cmd.Pattern = "*.markdown"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error for valid pattern: %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if (ConvertFileCommand{}).Type() != "md2adf.convert.file" {
		t.Fatalf("unexpected file command type")
	}
	if (ConvertDirectoryCommand{}).Type() != "md2adf.convert.directory" {
		t.Fatalf("unexpected directory command type")
	}
}
