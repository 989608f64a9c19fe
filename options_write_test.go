package exifmeta

import "testing"

func TestSaveOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := defaultSaveOptions()

		if opts.backupSuffix != "" {
			t.Errorf("expected empty backupSuffix, got %q", opts.backupSuffix)
		}
		if opts.validate || opts.preserveModTime {
			t.Error("validate and preserveModTime should be false")
		}
		if opts.byteOrder != nil {
			t.Error("byteOrder should be unset")
		}
	})

	t.Run("all options", func(t *testing.T) {
		opts := defaultSaveOptions()
		for _, o := range []SaveOption{
			WithBackup(".bak"),
			WithValidation(),
			WithPreserveModTime(),
			WithByteOrder(LittleEndian),
		} {
			o(opts)
		}

		if opts.backupSuffix != ".bak" {
			t.Errorf("backupSuffix = %q, want .bak", opts.backupSuffix)
		}
		if !opts.validate || !opts.preserveModTime {
			t.Error("validate and preserveModTime should be set")
		}
		if opts.byteOrder == nil || *opts.byteOrder != LittleEndian {
			t.Errorf("byteOrder = %v, want little-endian", opts.byteOrder)
		}
	})
}
