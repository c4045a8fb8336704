package xmp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

// EXIF_DATETIME_LAYOUT is the layout of EXIF date time tags.
const EXIF_DATETIME_LAYOUT = "2006:01:02 15:04:05"

var register_parsers sync.Once

// DecodeExif decodes the EXIF block in 'r' registering the maker note parsers first.
func DecodeExif(r io.Reader) (*exif.Exif, error) {

	register_parsers.Do(func() {
		exif.RegisterParsers(mknote.All...)
	})

	return exif.Decode(r)
}

// NewGraphFromExif returns a new Graph for the values in 'x' using the same conventions that exiftool uses when
// copying EXIF tags to XMP: ISO-8601 date times, "<degrees>,<minutes><hemisphere>" coordinates and rational
// strings for directions.
func NewGraphFromExif(x *exif.Exif) (*Graph, error) {

	namespaces := map[string]string{
		"exif": NS_EXIF,
		"tiff": NS_TIFF,
	}

	values := make(map[string]string)

	tag, err := x.Get(exif.DateTimeOriginal)

	if err == nil {

		str_dt, err := tagString(tag)

		if err != nil {
			return nil, fmt.Errorf("Failed to read DateTimeOriginal, %w", err)
		}

		// "2018:12:20 12:22:42" becomes "2018-12-20T12:22:42"

		t, err := time.Parse(EXIF_DATETIME_LAYOUT, str_dt)

		if err != nil {
			return nil, &ParseError{Value: str_dt, Reason: "invalid EXIF DateTimeOriginal", Err: err}
		}

		values[NS_EXIF+"DateTimeOriginal"] = t.Format("2006-01-02T15:04:05")
	}

	coords := []struct {
		value exif.FieldName
		ref   exif.FieldName
		key   string
	}{
		{exif.GPSLatitude, exif.GPSLatitudeRef, "GPSLatitude"},
		{exif.GPSLongitude, exif.GPSLongitudeRef, "GPSLongitude"},
	}

	for _, c := range coords {

		value_tag, err := x.Get(c.value)

		if err != nil {
			continue
		}

		ref_tag, err := x.Get(c.ref)

		if err != nil {
			continue
		}

		deg_min, err := tagDegMin(value_tag)

		if err != nil {
			return nil, fmt.Errorf("Failed to read %s, %w", c.key, err)
		}

		ref, err := tagString(ref_tag)

		if err != nil {
			return nil, fmt.Errorf("Failed to read %s reference, %w", c.key, err)
		}

		values[NS_EXIF+c.key] = deg_min + ref
	}

	tag, err = x.Get(exif.GPSImgDirection)

	if err == nil {

		num, den, err := tag.Rat2(0)

		if err != nil {
			return nil, fmt.Errorf("Failed to read GPSImgDirection, %w", err)
		}

		values[NS_EXIF+"GPSImgDirection"] = fmt.Sprintf("%d/%d", num, den)
	}

	tag, err = x.Get(exif.GPSImgDirectionRef)

	if err == nil {

		ref, err := tagString(tag)

		if err != nil {
			return nil, fmt.Errorf("Failed to read GPSImgDirectionRef, %w", err)
		}

		values[NS_EXIF+"GPSImgDirectionRef"] = ref
	}

	for _, name := range []exif.FieldName{exif.Make, exif.Model} {

		tag, err := x.Get(name)

		if err != nil {
			continue
		}

		str, err := tagString(tag)

		if err == nil {
			values[NS_TIFF+string(name)] = str
		}
	}

	return NewGraph(namespaces, values), nil
}

func tagString(tag *tiff.Tag) (string, error) {

	str, err := tag.StringVal()

	if err != nil {
		return "", err
	}

	return strings.TrimRight(str, "\x00 "), nil
}

// tagDegMin formats a degrees, minutes, seconds triple as "<degrees>,<minutes>". The triple is usually three
// rationals but some cameras write it as an ASCII string.
func tagDegMin(tag *tiff.Tag) (string, error) {

	var parts []float64

	switch tag.Format() {
	case tiff.RatVal:

		parts = make([]float64, 3)

		for i := 0; i < 3 && i < int(tag.Count); i++ {

			num, den, err := tag.Rat2(i)

			if err != nil {
				return "", err
			}

			if den == 0 {
				continue
			}

			parts[i] = float64(num) / float64(den)
		}

	case tiff.StringVal:

		str, err := tagString(tag)

		if err != nil {
			return "", err
		}

		parts, err = parseDegreesString(str)

		if err != nil {
			return "", err
		}

	default:
		return "", fmt.Errorf("Unsupported tag format for degrees")
	}

	deg := parts[0]
	min := parts[1] + parts[2]/60.0

	str_deg := strconv.FormatFloat(deg, 'f', -1, 64)
	str_min := strconv.FormatFloat(min, 'f', -1, 64)

	return fmt.Sprintf("%s,%s", str_deg, str_min), nil
}

// parseDegreesString parses an ASCII degrees, minutes, seconds value. Both "52,50,34.0118" and the split
// integer/fraction form "52,00000,50,00000,34,01180" are accepted.
func parseDegreesString(str string) ([]float64, error) {

	is_sep := func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	}

	fields := strings.FieldsFunc(str, is_sep)

	switch len(fields) {
	case 3:
		// pass
	case 6:
		fields = []string{
			fields[0] + "." + fields[1],
			fields[2] + "." + fields[3],
			fields[4] + "." + fields[5],
		}
	default:
		return nil, &ParseError{Value: str, Reason: "unknown degrees format"}
	}

	parts := make([]float64, 3)

	for i, f := range fields {

		v, err := strconv.ParseFloat(f, 64)

		if err != nil {
			return nil, &ParseError{Value: str, Reason: "invalid degrees", Err: err}
		}

		parts[i] = v
	}

	return parts, nil
}
