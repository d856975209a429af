package params

import (
	"cmp"
	"errors"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.jacobcolvin.com/px4meta/metadoc"
)

var underscoreExpr = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*(\.[0-9]+(_[0-9]+)*)?([eE][+-]?[0-9]+(_[0-9]+)*)?$`)

// MaxNameLength is the maximum length of a parameter name.
const MaxNameLength = 16

// Units is the set of accepted values of the unit field. The empty string
// stands for a unitless parameter.
var Units = map[string]bool{
	"%": true, "Hz": true, "1/s": true, "mAh": true,
	"rad": true, "%/rad": true, "rad/s": true, "rad/s^2": true, "%/rad/s": true, "rad s^2/m": true, "rad s/m": true,
	"bit/s": true, "B/s": true,
	"deg": true, "deg*1e7": true, "deg/s": true,
	"celcius": true, "gauss": true, "gauss/s": true, "gauss^2": true,
	"hPa": true, "kg": true, "kg/m^2": true, "kg m^2": true,
	"mm": true, "m": true, "m/s": true, "m^2": true, "m/s^2": true, "m/s^3": true,
	"m/s^2/sqrt(Hz)": true, "1/s/sqrt(Hz)": true, "m/s/rad": true,
	"Ohm": true, "V": true, "A": true,
	"us": true, "ms": true, "s": true,
	"S": true, "A/%": true, "(m/s^2)^2": true, "m/m": true, "tan(rad)^2": true, "(m/s)^2": true, "m/rad": true,
	"m/s^3/sqrt(Hz)": true, "m/s/sqrt(Hz)": true, "s/(1000*PWM)": true, "%m/s": true, "min": true, "us/C": true,
	"N/(m/s)": true, "Nm/rad": true, "Nm/(rad/s)": true, "Nm": true, "N": true,
	"RPM": true,
	"normalized_thrust/s": true, "normalized_thrust": true, "norm": true, "SD": true, "": true,
}

// Validate checks every parameter in display order. Each parameter stops
// at its first violation.
func (d *Dialect) Validate(groups []*metadoc.Group, r *metadoc.Report) {
	seen := make(map[string]bool)

	for _, g := range groups {
		for _, p := range g.Parameters() {
			diag := check(p, seen)
			if diag == nil {
				continue
			}

			if !r.Add(diag.WithName(p.Name)) {
				return
			}
		}
	}
}

func check(p *metadoc.Parameter, seen map[string]bool) *metadoc.Diagnostic {
	name := p.Name

	if len(name) > MaxNameLength {
		return metadoc.Diagnosef(metadoc.ErrNameTooLong,
			"Parameter Name %s is too long (Limit is %d)", name, MaxNameLength)
	}

	key := p.BoardKey()
	if seen[key] {
		return metadoc.Diagnosef(metadoc.ErrDuplicate, "Duplicate parameter definition: %s", key)
	}

	seen[key] = true

	def := p.Default
	minimum := p.Fields[metadoc.FieldMin]
	maximum := p.Fields[metadoc.FieldMax]
	unit := p.Fields[metadoc.FieldUnit]

	if !Units[unit] {
		return metadoc.Diagnosef(metadoc.ErrInvalidUnit, "Invalid unit in %s: %s", name, unit)
	}

	if def != "" && !isNumber(def) {
		return metadoc.Diagnosef(metadoc.ErrNonNumericDefault, "Default value not number: %s %s", name, def)
	}

	if minimum != "" {
		// A lower bound requires a numeric default as well as a numeric bound.
		if !isNumber(def) || !isNumber(minimum) {
			return metadoc.Diagnosef(metadoc.ErrNonNumericDefault, "Min value not number: %s %s", name, minimum)
		}

		if toFloat(def) < toFloat(minimum) {
			return metadoc.Diagnosef(metadoc.ErrDefaultOutOfRange,
				"Default value is smaller than min: %s default:%s min:%s", name, def, minimum)
		}
	}

	if maximum != "" {
		if !isNumber(maximum) {
			return metadoc.Diagnosef(metadoc.ErrNonNumericDefault, "Max value not number: %s %s", name, maximum)
		}

		if def != "" && toFloat(def) > toFloat(maximum) {
			return metadoc.Diagnosef(metadoc.ErrDefaultOutOfRange,
				"Default value is larger than max: %s default:%s max:%s", name, def, maximum)
		}
	}

	for _, code := range numericOrder(p.Enum) {
		if !isNumber(code) {
			return metadoc.Diagnosef(metadoc.ErrInvalidEnum, "Min value not number: %s %s", name, code)
		}

		if p.Enum[code] == "" {
			return metadoc.Diagnosef(metadoc.ErrInvalidEnum,
				"Description for enum value is empty: %s %s", name, code)
		}
	}

	for _, index := range numericOrder(p.Bitmask) {
		diag := checkBit(p, index, minimum, maximum)
		if diag != nil {
			return diag
		}
	}

	return nil
}

func checkBit(p *metadoc.Parameter, index, minimum, maximum string) *metadoc.Diagnostic {
	bit, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return metadoc.Diagnosef(metadoc.ErrInvalidBitmask, "bit value not number: %s %s", p.Name, index)
	}

	lo, loErr := strconv.Atoi(strings.TrimSpace(minimum))
	hi, hiErr := strconv.Atoi(strings.TrimSpace(maximum))

	if loErr != nil || hiErr != nil {
		return metadoc.Diagnosef(metadoc.ErrInvalidBitmask,
			"Bitmask bounds must be integers: %s min:%s max:%s", p.Name, minimum, maximum)
	}

	value := math.Pow(2, float64(bit))
	if value < float64(lo) || value > float64(hi) {
		return metadoc.Diagnosef(metadoc.ErrInvalidBitmask,
			"Bitmask bit must be between %s and %s: %s %s", minimum, maximum, p.Name, formatFloat(value))
	}

	if p.Bitmask[index] == "" {
		return metadoc.Diagnosef(metadoc.ErrInvalidBitmask,
			"Description for bitmask bit is empty: %s %s", p.Name, index)
	}

	return nil
}

// numericOrder returns the keys of m with non-numeric keys first (so they
// are reported), then numeric keys by value.
func numericOrder(m map[string]string) []string {
	keys := slices.Sorted(maps.Keys(m))
	slices.SortStableFunc(keys, func(a, b string) int {
		an, bn := isNumber(a), isNumber(b)

		switch {
		case !an && !bn:
			return 0
		case !an:
			return -1
		case !bn:
			return 1
		}

		return cmp.Compare(toFloat(a), toFloat(b))
	})

	return keys
}

// isNumber reports whether s parses as a floating point number. Digit
// group underscores ("1_000") are accepted. Values that overflow are still
// numbers.
func isNumber(s string) bool {
	_, err := parseFloat(s)

	return err == nil || errors.Is(err, strconv.ErrRange)
}

func toFloat(s string) float64 {
	f, _ := parseFloat(s)

	return f
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if underscoreExpr.MatchString(s) {
		s = strings.ReplaceAll(s, "_", "")
	}

	return strconv.ParseFloat(s, 64)
}

// formatFloat renders whole numbers with one decimal place ("1024.0").
func formatFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
