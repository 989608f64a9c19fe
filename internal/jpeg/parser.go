package jpeg

import (
	"io"
	"log/slog"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/tiff"
	"github.com/simonhull/exifmeta/internal/types"
)

// parser implements registry.FormatParser for JPEG files.
type parser struct{}

// Parse decodes the first APP1 Exif segment of a JPEG file.
//
// A JPEG without EXIF data yields an empty container and a warning.
func (p *parser) Parse(r io.ReaderAt, size int64, path string, opts registry.ParseOptions) (*types.File, error) {
	sr := binary.NewSafeReader(r, size, path)
	log := opts.Log()

	file := &types.File{
		Path:   path,
		Format: types.FormatJPEG,
		Size:   size,
	}

	l, err := scan(sr)
	if l == nil {
		return nil, err
	}
	if err != nil {
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "container",
			Message: "incomplete marker structure: " + err.Error(),
			Offset:  l.rest,
		})
	}

	for _, seg := range l.segments {
		if !isExif(sr, seg) {
			continue
		}
		if file.Data != nil {
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "container",
				Message: "ignoring additional APP1 Exif segment",
				Offset:  seg.start,
			})
			continue
		}

		log.Debug("found APP1 Exif segment", slog.Int64("offset", seg.start), slog.Int("length", seg.payloadLen()))

		section, err := sr.Section(seg.data, int64(seg.payloadLen()), "APP1 Exif payload")
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
			warnings[i].Offset += seg.data
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
	registry.Register(types.FormatJPEG, &parser{})
	registry.RegisterWriter(types.FormatJPEG, &writer{})
}
