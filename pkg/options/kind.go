package options

import (
	"sort"
	"strconv"
	"strings"

	"github.com/walteh/gotwoslash/pkg/twoslasherr"
)

// Primitive is the type of a scalar option value.
type Primitive string

const (
	Number  Primitive = "number"
	String  Primitive = "string"
	Boolean Primitive = "boolean"
)

// Kind is one of Scalar, List or EnumMap.
type Kind interface {
	// Coerce converts the raw directive text for option name into a value.
	Coerce(name, raw string) (any, error)
	kind()
}

// Scalar options hold a single number, string or boolean.
type Scalar struct {
	Type Primitive
}

// List options split their raw value and coerce each element.
type List struct {
	Element Kind
	// Separators lists the runes that split elements, "," when empty.
	// Commas always delimit an element; runs of any other separator fold.
	Separators string
}

// EnumMap options only accept the keys of Allowed (case-insensitive) and
// resolve to the mapped value.
type EnumMap struct {
	Allowed map[string]any
}

func (Scalar) kind()  {}
func (List) kind()    {}
func (EnumMap) kind() {}

func (k Scalar) Coerce(name, raw string) (any, error) {
	return ParsePrimitive(raw, k.Type)
}

func (k List) Coerce(name, raw string) (any, error) {
	elems := k.split(raw)

	out := make([]any, 0, len(elems))
	for _, elem := range elems {
		v, err := k.Element.Coerce(name, strings.TrimSpace(elem))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// split cuts raw at every comma, so "a,,b" has an empty middle element.
// Runs of the other separators count once.
func (k List) split(raw string) []string {
	seps := k.Separators
	if seps == "" {
		seps = ","
	}
	others := strings.ReplaceAll(seps, ",", "")

	parts := []string{raw}
	if strings.ContainsRune(seps, ',') {
		parts = strings.Split(raw, ",")
	}

	var elems []string
	for _, part := range parts {
		fields := []string{part}
		if others != "" {
			fields = strings.FieldsFunc(part, func(r rune) bool {
				return strings.ContainsRune(others, r)
			})
		}
		if len(fields) == 0 {
			fields = []string{""}
		}
		elems = append(elems, fields...)
	}
	return elems
}

func (k EnumMap) Coerce(name, raw string) (any, error) {
	if v, ok := k.Allowed[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return v, nil
	}

	keys := make([]string, 0, len(k.Allowed))
	for key := range k.Allowed {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return nil, twoslasherr.Newf(twoslasherr.InvalidDirectiveValue,
		"Invalid inline compiler value",
		"Allowed values: "+strings.Join(keys, ","),
		"Got %s for %s but it is not a supported value.", raw, name)
}

// ParsePrimitive converts raw into the given primitive. Booleans are true for
// "true" (any case) or an empty value.
func ParsePrimitive(raw string, typ Primitive) (any, error) {
	switch typ {
	case Number:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, twoslasherr.Newf(twoslasherr.InvalidDirectiveValue,
				"Invalid inline compiler value",
				"Use a plain number, e.g. 10 or 2.5.",
				"Could not read %q as a number.", raw)
		}
		return f, nil
	case String:
		return raw, nil
	case Boolean:
		v := strings.TrimSpace(raw)
		return strings.EqualFold(v, "true") || v == "", nil
	}

	return nil, twoslasherr.Newf(twoslasherr.InvalidDirectiveValue,
		"Unknown primitive value in compiler flag",
		"This is likely a typo.",
		"The only recognized primitives are number, string and boolean. Got %s with %s.", typ, raw)
}
