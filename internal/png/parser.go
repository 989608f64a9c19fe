package png

import (
	"errors"
	"io"
	"log/slog"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/tiff"
	"github.com/simonhull/exifmeta/internal/types"
)

// parser implements registry.FormatParser for PNG files.
type parser struct{}

// Parse decodes the first eXIf chunk of a PNG file. Some writers put an
// "Exif\0\0" prefix in front of the TIFF header; it is accepted.
func (p *parser) Parse(r io.ReaderAt, size int64, path string, opts registry.ParseOptions) (*types.File, error) {
	sr := binary.NewSafeReader(r, size, path)
	log := opts.Log()

	file := &types.File{
		Path:   path,
		Format: types.FormatPNG,
		Size:   size,
	}

	chunks, err := scanChunks(sr)
	if len(chunks) == 0 && err != nil {
		var cfErr *types.CorruptedFileError
		if errors.As(err, &cfErr) {
			return nil, err
		}
		return nil, &types.CorruptedFileError{Path: path, Reason: err.Error()}
	}
	if err != nil {
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "container",
			Message: "incomplete chunk list: " + err.Error(),
		})
	}

	for _, c := range chunks {
		if c.typ != chunkEXIF {
			continue
		}
		if file.Data != nil {
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "container",
				Message: "ignoring additional eXIf chunk",
				Offset:  c.start,
			})
			continue
		}

		log.Debug("found eXIf chunk", slog.Int64("offset", c.start), slog.Int("length", int(c.size)))

		if sum, err := checksum(sr, c); err != nil {
			return nil, err
		} else if sum != c.crc {
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "container",
				Message: "eXIf chunk CRC mismatch",
				Offset:  c.start,
			})
		}

		section, err := sr.Section(c.data, int64(c.size), "eXIf chunk data")
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
	registry.Register(types.FormatPNG, &parser{})
	registry.RegisterWriter(types.FormatPNG, &writer{})
}
