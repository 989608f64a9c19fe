// Package webp reads the EXIF chunk of WebP files.
//
// WebP is read-only: saving a WebP file returns an UnsupportedWriteError.
package webp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/tiff"
	"github.com/simonhull/exifmeta/internal/types"
)

const (
	chunkHeaderLen = 8
	chunkEXIF      = "EXIF"
)

// chunk is a RIFF sub-chunk of the WEBP form.
type chunk struct {
	fourCC string
	start  int64
	data   int64
	size   uint32
}

// scanChunks walks the chunks of the RIFF WEBP form. Chunk data is padded
// to an even length. The RIFF size field bounds the walk when it is
// smaller than the file.
func scanChunks(sr *binary.SafeReader) ([]chunk, error) {
	r := binary.NewReader(sr, 0, binary.LittleEndian)
	cr := binary.NewChainReader(r)
	riff := cr.Bytes(4, "RIFF tag")
	riffSize := binary.ReadChained[uint32](cr, "RIFF size")
	form := cr.Bytes(4, "RIFF form type")
	if err := cr.Error(); err != nil {
		return nil, err
	}
	if string(riff) != "RIFF" || string(form) != "WEBP" {
		return nil, &types.CorruptedFileError{Path: sr.Path(), Reason: "not a RIFF WEBP file"}
	}

	end := min(sr.Size(), int64(riffSize)+8)
	var chunks []chunk
	for r.Offset()+chunkHeaderLen <= end {
		start := r.Offset()
		fourCC, err := r.ReadString(4, "chunk FourCC")
		if err != nil {
			return chunks, err
		}
		size, err := binary.ReadValue[uint32](r, "chunk size")
		if err != nil {
			return chunks, err
		}
		c := chunk{fourCC: fourCC, start: start, data: r.Offset(), size: size}
		if c.data+int64(size) > end {
			return chunks, fmt.Errorf("chunk %q at offset %d runs past end of file", c.fourCC, start)
		}
		chunks = append(chunks, c)
		r.Skip(int64(size) + int64(size&1))
	}
	return chunks, nil
}

// parser implements registry.FormatParser for WebP files.
type parser struct{}

// Parse decodes the first EXIF chunk. An "Exif\0\0" prefix, written by
// some tools, is accepted.
func (p *parser) Parse(r io.ReaderAt, size int64, path string, opts registry.ParseOptions) (*types.File, error) {
	sr := binary.NewSafeReader(r, size, path)
	log := opts.Log()

	chunks, err := scanChunks(sr)
	if chunks == nil && err != nil {
		var cfErr *types.CorruptedFileError
		if errors.As(err, &cfErr) {
			return nil, err
		}
		return nil, &types.CorruptedFileError{Path: path, Reason: err.Error()}
	}

	file := &types.File{
		Path:   path,
		Format: types.FormatWebP,
		Size:   size,
	}
	if err != nil {
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "container",
			Message: "incomplete chunk list: " + err.Error(),
		})
	}

	for _, c := range chunks {
		if c.fourCC != chunkEXIF {
			continue
		}
		log.Debug("found EXIF chunk", slog.Int64("offset", c.start), slog.Int("length", int(c.size)))

		section, err := sr.Section(c.data, int64(c.size), "EXIF chunk data")
		if err != nil {
			return nil, err
		}
		data, warnings, err := tiff.Decode(section, tiff.DecodeOptions{
			Logger:   log,
			Options:  opts.DataOptions,
			Encoding: types.EncodingCompressed,
		})
		if err != nil {
			return nil, err
		}
		for i := range warnings {
			warnings[i].Offset += c.data
		}
		file.Data = data
		file.Warnings = append(file.Warnings, warnings...)
		break
	}

	if file.Data == nil {
		file.Data = types.NewData()
		file.Data.SetEncoding(types.EncodingCompressed)
		file.Data.SetOption(opts.DataOptions)
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "container",
			Message: "no EXIF data found",
		})
	}

	return file, nil
}

func init() {
	registry.Register(types.FormatWebP, &parser{})
}
