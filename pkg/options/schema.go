package options

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Declaration names one option and how its raw value is coerced.
type Declaration struct {
	Name string
	Kind Kind
}

// Schema is the table option directives are resolved against.
type Schema struct {
	decls   []Declaration
	byLower map[string]Declaration
}

func NewSchema(decls ...Declaration) *Schema {
	s := &Schema{byLower: make(map[string]Declaration, len(decls))}
	for _, d := range decls {
		s.decls = append(s.decls, d)
		s.byLower[strings.ToLower(d.Name)] = d
	}
	return s
}

// Lookup finds a declaration by name, ignoring case.
func (s *Schema) Lookup(name string) (Declaration, bool) {
	if s == nil {
		return Declaration{}, false
	}
	d, ok := s.byLower[strings.ToLower(name)]
	return d, ok
}

func (s *Schema) Declarations() []Declaration {
	if s == nil {
		return nil
	}
	return s.decls
}

// Values holds resolved compiler options keyed by their canonical name.
type Values map[string]any

func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Merge returns a copy of v overlaid with other.
func (v Values) Merge(other Values) Values {
	out := v.Clone()
	for k, val := range other {
		out[k] = val
	}
	return out
}

var identityNamespace = uuid.MustParse("0b1c5a43-7f4e-4c1e-9d0a-2f6c1e9b7a55")

// Identity is a stable id for the option set: equal values give equal ids.
func (v Values) Identity() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		b, err := json.Marshal(v[k])
		if err != nil {
			b = []byte("?")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.Write(b)
		sb.WriteByte('\n')
	}
	return uuid.NewSHA1(identityNamespace, []byte(sb.String())).String()
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int {
	switch n := v[name].(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// Strings reads a list option whose elements are strings.
func (v Values) Strings(name string) []string {
	switch l := v[name].(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, e := range l {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
