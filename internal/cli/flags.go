package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/simonhull/exifmeta"
)

// outputFormat is the --output flag of commands that print metadata.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (o *outputFormat) String() string { return string(*o) }

func (o *outputFormat) Set(s string) error {
	switch f := outputFormat(strings.ToLower(s)); f {
	case outputText, outputJSON, outputYAML:
		*o = f
		return nil
	}
	return fmt.Errorf("must be one of text, json, yaml")
}

func (o *outputFormat) Type() string { return "format" }

// addOutputFlag registers --output/-o on fs.
func addOutputFlag(fs *pflag.FlagSet, o *outputFormat) {
	*o = outputText
	fs.VarP(o, "output", "o", "Output format: text, json or yaml")
}

// dataTypeFlag is a --type flag holding a TIFF data type name.
type dataTypeFlag struct {
	dt  exifmeta.DataType
	set bool
}

var _ pflag.Value = (*dataTypeFlag)(nil)

func (d *dataTypeFlag) String() string {
	if !d.set {
		return ""
	}
	return d.dt.String()
}

func (d *dataTypeFlag) Set(s string) error {
	dt, err := exifmeta.ParseDataType(s)
	if err != nil {
		return err
	}
	d.dt, d.set = dt, true
	return nil
}

func (d *dataTypeFlag) Type() string { return "type" }

// parseIFDTag resolves the IFD and tag arguments. The tag may be a name
// from the tag table or a number such as 0x0112 or 274.
func parseIFDTag(ifdArg, tagArg string) (exifmeta.IFD, exifmeta.Tag, error) {
	ifd, err := exifmeta.ParseIFD(ifdArg)
	if err != nil {
		return 0, 0, err
	}

	if n, err := strconv.ParseUint(tagArg, 0, 16); err == nil {
		return ifd, exifmeta.Tag(n), nil
	}

	tag, _, ok := exifmeta.TagByName(tagArg)
	if !ok {
		return 0, 0, fmt.Errorf("unknown tag %q", tagArg)
	}
	if info, ok := exifmeta.LookupTag(ifd, tag); !ok || !strings.EqualFold(info.Name, tagArg) {
		return 0, 0, fmt.Errorf("tag %s is not defined for the %s IFD", tagArg, ifd)
	}
	return ifd, tag, nil
}
