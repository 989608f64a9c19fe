// Package exifmeta reads and writes EXIF metadata in image files.
//
// exifmeta opens JPEG, PNG, TIFF and WebP images, as well as bare EXIF
// blobs, and exposes their EXIF block as a Data container. Entries are
// addressed by (IFD, tag), and their values are typed payloads read with
// an explicit byte order. The codec is pure Go.
//
// # Quick Start
//
// Reading the orientation of a photo:
//
//	file, err := exifmeta.Open("photo.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	e, err := file.Data.Entry(exifmeta.IFDImage, exifmeta.TagOrientation)
//	if err != nil {
//		log.Fatal(err)
//	}
//	v, err := e.Value(file.Data.ByteOrder())
//	if err != nil {
//		log.Fatal(err)
//	}
//	o, err := exifmeta.ValueAs[exifmeta.U16](v)
//
// Entry.Text renders a value for people, e.g. "Right-top" or "1/125 sec.".
//
// # Supported Formats
//
//   - JPEG: the APP1 "Exif" segment (read and write)
//   - PNG: the eXIf chunk (read and write)
//   - TIFF: the file's own IFD chain (read-only)
//   - WebP: the RIFF EXIF chunk (read-only)
//   - EXIF: a bare "Exif\0\0" blob (read and write)
//
// # Architecture
//
//	[File]              - Entry point with Open()
//	  └─ [Data]         - Byte order, image encoding, thumbnail
//	       └─ [Content] - One per IFD: Image, Thumbnail, EXIF, GPS, Interoperability
//	            └─ [Entry] - Tag, data type, component count, raw bytes
//
// Pointer tags linking the IFDs and the thumbnail location are not entries:
// the encoder writes them from the structure of the Data.
//
// # Writing
//
// Set stores a value after checking it against the tag table, and Save
// writes the file atomically:
//
//	if err := file.Data.Set(exifmeta.IFDImage, exifmeta.TagOrientation, exifmeta.U16{1}); err != nil {
//		return err
//	}
//	if err := file.Save(exifmeta.WithBackup(".bak")); err != nil {
//		return err
//	}
//
// # Error Handling
//
// exifmeta distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent opening: a missing file, an unsupported format
//     (*UnsupportedFormatError) or a broken container (*CorruptedFileError)
//   - Warnings describe skipped entries, IFD loops, truncated thumbnails and
//     images without EXIF data
//
// Lookups of missing entries return an *EntryNotFoundError that matches
// ErrEntryNotFound. Values that do not fit a tag return *InvalidValueError.
//
// Parse multiple files concurrently:
//
//	files, err := exifmeta.OpenMany(ctx, paths...)
package exifmeta
