package exifmeta

// SaveOption configures behavior when saving images.
//
// Example:
//
//	err := file.Save(
//	    exifmeta.WithBackup(".bak"),
//	    exifmeta.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	byteOrder       *ByteOrder // Convert Data before writing; nil keeps it
	backupSuffix    string     // Suffix for backup file (e.g., ".bak")
	validate        bool       // Re-read after write to verify
	preserveModTime bool       // Keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the file being replaced under its name plus suffix.
// For example, WithBackup(".bak") renames "photo.jpg" to "photo.jpg.bak"
// before the new file takes its place.
//
// An existing backup file is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and compares every
// entry and the thumbnail with the saved container.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithByteOrder converts the container to order before it is written.
// The conversion sticks: File.Data reports the new order afterwards.
//
//	err := file.SaveAs("intel.jpg", exifmeta.WithByteOrder(exifmeta.LittleEndian))
func WithByteOrder(order ByteOrder) SaveOption {
	return func(o *saveOptions) {
		o.byteOrder = &order
	}
}
