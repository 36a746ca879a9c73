package formats

import (
	"path/filepath"
	"strings"
)

// Format identifies a source schema. The zero value is FormatUnknown.
type Format int

// Supported formats
const (
	FormatUnknown Format = iota
	FormatJSON
	FormatXML
	FormatFoundry
	FormatSheetHost
	FormatDNDBeyond
	FormatCSV
)

var formatNames = map[Format]string{
	FormatJSON:      "json",
	FormatXML:       "xml",
	FormatFoundry:   "foundry",
	FormatSheetHost: "sheethost",
	FormatDNDBeyond: "dndbeyond",
	FormatCSV:       "csv",
}

// String returns the flag value for the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Formats lists every supported format in declaration order
func Formats() []Format {
	return []Format{
		FormatJSON,
		FormatXML,
		FormatFoundry,
		FormatSheetHost,
		FormatDNDBeyond,
		FormatCSV,
	}
}

// ParseFormat resolves a flag value such as "foundry" to its Format.
func ParseFormat(s string) (Format, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == s {
			return f, true
		}
	}
	return FormatUnknown, false
}

// Detect guesses a format from the file extension alone: .xml is the
// tabletop XML schema, .csv is CSV and everything else is generic JSON.
// File content is never inspected.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xml":
		return FormatXML
	case ".csv":
		return FormatCSV
	default:
		return FormatJSON
	}
}
