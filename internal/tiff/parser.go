package tiff

import (
	"fmt"
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// parser implements registry.FormatParser for TIFF files and bare EXIF
// blobs. Both are a TIFF structure, optionally behind "Exif\0\0".
type parser struct {
	format types.Format
}

// Parse decodes the whole file as an EXIF block.
func (p *parser) Parse(r io.ReaderAt, size int64, path string, opts registry.ParseOptions) (*types.File, error) {
	sr := binary.NewSafeReader(r, size, path)

	if p.format == types.FormatEXIF {
		prefix, err := sr.Bytes(0, len(types.ExifHeader), "EXIF header")
		if err != nil {
			return nil, fmt.Errorf("read EXIF header: %w", err)
		}
		if string(prefix) != types.ExifHeader {
			return nil, &types.CorruptedFileError{Path: path, Reason: "missing Exif header"}
		}
	}

	data, warnings, err := Decode(sr, DecodeOptions{
		Logger:         opts.Log(),
		Options:        opts.DataOptions,
		DeriveEncoding: p.format == types.FormatTIFF,
	})
	if err != nil {
		return nil, err
	}

	return &types.File{
		Path:     path,
		Format:   p.format,
		Size:     size,
		Data:     data,
		Warnings: warnings,
	}, nil
}

// writer implements registry.FormatWriter for bare EXIF blobs. The output
// is "Exif\0\0" followed by the encoded TIFF structure; nothing from the
// original file is kept.
type writer struct{}

// Write encodes file.Data as a bare EXIF blob.
func (w *writer) Write(out io.Writer, file *types.File, _ io.ReaderAt, _ int64) error {
	payload, err := EncodeAPP1Payload(file.Data)
	if err != nil {
		return fmt.Errorf("encode EXIF: %w", err)
	}
	if _, err := out.Write(payload); err != nil {
		return fmt.Errorf("write EXIF: %w", err)
	}
	return nil
}

func init() {
	registry.Register(types.FormatTIFF, &parser{format: types.FormatTIFF})
	registry.Register(types.FormatEXIF, &parser{format: types.FormatEXIF})
	registry.RegisterWriter(types.FormatEXIF, &writer{})
}
