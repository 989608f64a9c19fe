package registry

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/simonhull/exifmeta/internal/types"
)

// mockParser implements FormatParser for testing.
type mockParser struct {
	name string
}

func (m *mockParser) Parse(r io.ReaderAt, size int64, path string, opts ParseOptions) (*types.File, error) {
	d := types.NewData()
	d.SetOption(opts.DataOptions)
	return &types.File{Path: m.name, Data: d}, nil
}

// mockWriter implements FormatWriter for testing.
type mockWriter struct{}

func (mockWriter) Write(w io.Writer, file *types.File, original io.ReaderAt, originalSize int64) error {
	_, err := io.Copy(w, io.NewSectionReader(original, 0, originalSize))
	return err
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.Format(999)
	parser := &mockParser{name: "test"}

	Register(format, parser)

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil for registered format")
	}

	mp, ok := got.(*mockParser)
	if !ok {
		t.Fatal("Get() returned wrong parser type")
	}
	if mp.name != "test" {
		t.Errorf("Parser name = %q, want %q", mp.name, "test")
	}
}

func TestGet_Unregistered(t *testing.T) {
	format := types.Format(998)

	if got := Get(format); got != nil {
		t.Errorf("Get() = %v for unregistered format, want nil", got)
	}
	if got := GetWriter(format); got != nil {
		t.Errorf("GetWriter() = %v for unregistered format, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.Format(997)

	Register(format, &mockParser{name: "first"})
	Register(format, &mockParser{name: "second"})

	mp, ok := Get(format).(*mockParser)
	if !ok {
		t.Fatal("Get() returned wrong parser type")
	}
	if mp.name != "second" {
		t.Errorf("Parser name = %q, want %q (should be overwritten)", mp.name, "second")
	}
}

func TestParseOptions_Passed(t *testing.T) {
	format := types.Format(996)
	Register(format, &mockParser{name: "opts"})

	file, err := Get(format).Parse(nil, 0, "x.jpg", ParseOptions{DataOptions: types.OptionIgnoreUnknownTags})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !file.Data.HasOption(types.OptionIgnoreUnknownTags) {
		t.Error("DataOptions not passed to parser")
	}
}

func TestParseOptions_Log(t *testing.T) {
	if (ParseOptions{}).Log() == nil {
		t.Fatal("Log() returned nil for zero options")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	(ParseOptions{Logger: logger}).Log().Info("hello")
	if buf.Len() == 0 {
		t.Error("Log() did not return the configured logger")
	}
}

func TestRegisterWriter(t *testing.T) {
	format := types.Format(995)
	RegisterWriter(format, mockWriter{})

	w := GetWriter(format)
	if w == nil {
		t.Fatal("GetWriter() returned nil for registered format")
	}

	src := []byte("image bytes")
	var out bytes.Buffer
	if err := w.Write(&out, &types.File{}, bytes.NewReader(src), int64(len(src))); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out.String() != "image bytes" {
		t.Errorf("Write() = %q", out.String())
	}
}
