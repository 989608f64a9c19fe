package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	xtiff "golang.org/x/image/tiff"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/exifmeta"
)

var thumbBytes = []byte{0xFF, 0xD8, 0xFF, 0xD9}

func plainJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8)), nil))
	return buf.Bytes()
}

// taggedJPEG writes a JPEG with a few entries and a thumbnail.
func taggedJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, plainJPEG(t), 0o644))

	f, err := exifmeta.Open(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Data.Set(exifmeta.IFDImage, exifmeta.TagOrientation, exifmeta.U16{6}))
	require.NoError(t, f.Data.Set(exifmeta.IFDImage, exifmeta.TagMake, exifmeta.Text("Fujifilm")))
	require.NoError(t, f.Data.Set(exifmeta.IFDExif, exifmeta.TagFNumber, exifmeta.URational{{Num: 4, Den: 1}}))
	require.NoError(t, f.Data.Set(exifmeta.IFDThumbnail, exifmeta.TagCompression, exifmeta.U16{6}))
	f.Data.SetThumbnail(thumbBytes)
	require.NoError(t, f.Save())
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDump_Text(t *testing.T) {
	path := taggedJPEG(t, t.TempDir(), "a.jpg")

	out, err := run(t, "dump", path)
	require.NoError(t, err)
	require.Contains(t, out, path+" (JPEG)")
	require.Contains(t, out, "Dimensions: 8x8")
	require.Contains(t, out, "Image IFD (2 entries)")
	require.Contains(t, out, "Right-top")
	require.Contains(t, out, "f/4")
	require.Contains(t, out, "Thumbnail: 4 bytes")
}

func TestDump_JSON(t *testing.T) {
	dir := t.TempDir()
	a := taggedJPEG(t, dir, "a.jpg")
	b := taggedJPEG(t, dir, "b.jpg")

	out, err := run(t, "dump", "-o", "json", a, b)
	require.NoError(t, err)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	require.Equal(t, a, reports[0].File)
	require.Equal(t, b, reports[1].File)
	require.Equal(t, "big-endian", reports[0].ByteOrder)
	require.Equal(t, len(thumbBytes), reports[0].Thumbnail)
	require.Equal(t, 8, reports[0].Width)
	require.Equal(t, 8, reports[0].Height)

	require.Equal(t, "Image", reports[0].IFDs[0].IFD)
	require.Contains(t, reports[0].IFDs[0].Entries, entryReport{
		Tag: "0x0112", Name: "Orientation", Type: "Short", Components: 1, Value: "Right-top",
	})
}

func TestDump_YAML(t *testing.T) {
	path := taggedJPEG(t, t.TempDir(), "a.jpg")

	out, err := run(t, "dump", "--output", "yaml", path)
	require.NoError(t, err)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.Equal(t, "JPEG", reports[0].Format)
	require.Equal(t, "Compressed", reports[0].Encoding)
}

func TestDump_TIFFDimensions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xtiff.Encode(&buf, image.NewGray(image.Rect(0, 0, 5, 3)), nil))
	path := filepath.Join(t.TempDir(), "scan.tif")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	out, err := run(t, "dump", "-o", "json", path)
	require.NoError(t, err)

	var reports []report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	require.Equal(t, "TIFF", reports[0].Format)
	require.Equal(t, 5, reports[0].Width)
	require.Equal(t, 3, reports[0].Height)
}

func TestDump_Errors(t *testing.T) {
	_, err := run(t, "dump", "-o", "xml", "x.jpg")
	require.Error(t, err)

	_, err = run(t, "dump", filepath.Join(t.TempDir(), "missing.jpg"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "dump")
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	path := taggedJPEG(t, t.TempDir(), "a.jpg")

	out, err := run(t, "get", path, "image", "Orientation")
	require.NoError(t, err)
	require.Equal(t, "Right-top\n", out)

	out, err = run(t, "get", path, "0", "0x0112", "--raw")
	require.NoError(t, err)
	require.Equal(t, "Short 1 [6]\n", out)

	_, err = run(t, "get", path, "gps", "GPSLatitude")
	require.ErrorIs(t, err, exifmeta.ErrEntryNotFound)
}

func TestSet(t *testing.T) {
	dir := t.TempDir()
	path := taggedJPEG(t, dir, "a.jpg")

	_, err := run(t, "set", path, "exif", "ExposureTime", "1/250")
	require.NoError(t, err)

	out, err := run(t, "get", path, "exif", "ExposureTime")
	require.NoError(t, err)
	require.Equal(t, "1/250 sec.\n", out)

	_, err = run(t, "set", "--backup", ".orig", path, "image", "Artist", "Jane", "Doe")
	require.NoError(t, err)
	require.FileExists(t, path+".orig")

	out, err = run(t, "get", path, "image", "Artist")
	require.NoError(t, err)
	require.Equal(t, "Jane Doe\n", out)

	_, err = run(t, "set", "--type", "long", path, "image", "ImageWidth", "4000")
	require.NoError(t, err)
	out, err = run(t, "get", "--raw", path, "image", "ImageWidth")
	require.NoError(t, err)
	require.Equal(t, "Long 1 [4000]\n", out)
}

func TestSet_Invalid(t *testing.T) {
	path := taggedJPEG(t, t.TempDir(), "a.jpg")

	// Orientation takes one SHORT
	_, err := run(t, "set", path, "image", "Orientation", "1", "2")
	var ive *exifmeta.InvalidValueError
	require.ErrorAs(t, err, &ive)

	_, err = run(t, "set", path, "image", "Orientation", "sideways")
	require.Error(t, err)

	_, err = run(t, "set", "--type", "quaternion", path, "image", "Orientation", "1")
	require.Error(t, err)

	// Pointers are written by the encoder
	_, err = run(t, "set", "--type", "long", path, "image", "ExifIFDPointer", "8")
	require.ErrorAs(t, err, &ive)
}

func TestRemove(t *testing.T) {
	path := taggedJPEG(t, t.TempDir(), "a.jpg")

	_, err := run(t, "rm", path, "image", "Make")
	require.NoError(t, err)

	_, err = run(t, "get", path, "image", "Make")
	require.ErrorIs(t, err, exifmeta.ErrEntryNotFound)

	_, err = run(t, "rm", path, "image", "Make")
	require.ErrorIs(t, err, exifmeta.ErrEntryNotFound)
}

func TestThumbnail(t *testing.T) {
	dir := t.TempDir()
	path := taggedJPEG(t, dir, "a.jpg")
	out := filepath.Join(dir, "thumb.jpg")

	stdout, err := run(t, "thumbnail", path, out)
	require.NoError(t, err)
	require.Contains(t, stdout, "wrote 4 bytes")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, thumbBytes, b)

	plain := filepath.Join(dir, "plain.jpg")
	require.NoError(t, os.WriteFile(plain, plainJPEG(t), 0o644))
	_, err = run(t, "thumbnail", plain, filepath.Join(dir, "none.jpg"))
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, "exifmeta "+exifmeta.Version)
}

func TestParseIFDTag(t *testing.T) {
	tests := []struct {
		ifd, tag string
		wantIFD  exifmeta.IFD
		wantTag  exifmeta.Tag
		wantErr  bool
	}{
		{"image", "Orientation", exifmeta.IFDImage, exifmeta.TagOrientation, false},
		{"EXIF", "fnumber", exifmeta.IFDExif, exifmeta.TagFNumber, false},
		{"gps", "GPSLatitudeRef", exifmeta.IFDGPS, exifmeta.TagGPSLatitudeRef, false},
		{"1", "274", exifmeta.IFDThumbnail, exifmeta.TagOrientation, false},
		{"interop", "InteroperabilityIndex", exifmeta.IFDInteroperability, exifmeta.TagInteroperabilityIndex, false},
		{"gps", "InteroperabilityIndex", 0, 0, true},
		{"image", "NoSuchTag", 0, 0, true},
		{"ifd7", "Orientation", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.ifd+"/"+tt.tag, func(t *testing.T) {
			ifd, tag, err := parseIFDTag(tt.ifd, tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantIFD, ifd)
			require.Equal(t, tt.wantTag, tag)
		})
	}
}

func TestIsImage(t *testing.T) {
	require.True(t, isImage("/a/b/photo.JPG"))
	require.True(t, isImage("x.webp"))
	require.False(t, isImage("notes.txt"))
	require.False(t, isImage("blob.exif"))
}

func TestWatchDir(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu   sync.Mutex
		seen []string
	)
	done := make(chan error, 1)
	go func() {
		done <- watchDir(ctx, dir, 50*time.Millisecond, slog.New(slog.DiscardHandler), func(path string) {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, path)
		})
	}()

	target := filepath.Join(dir, "new.jpg")
	jpg := plainJPEG(t)
	// The watcher needs a moment to register the directory
	require.Eventually(t, func() bool {
		_ = os.WriteFile(target, jpg, 0o644)
		_ = os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644)
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchDir did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, target, seen[0])
	require.NotContains(t, seen, filepath.Join(dir, "ignored.txt"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	require.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	require.Contains(t, buf.String(), "shown")
}

