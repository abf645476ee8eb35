package options

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Resolver applies option directives to a compiler option set and a handbook.
// Compiler options win over handbook options of the same name.
type Resolver struct {
	Schema   *Schema
	Compiler Values
	Handbook Handbook
}

func NewResolver(schema *Schema, compiler Values, handbook Handbook) *Resolver {
	return &Resolver{
		Schema:   schema,
		Compiler: compiler.Clone(),
		Handbook: handbook,
	}
}

// Apply resolves name against both schemas. A boolean directive passes an
// empty raw value. The returned bool is false when neither schema knows name.
func (r *Resolver) Apply(ctx context.Context, name, raw string) (bool, error) {
	if decl, ok := r.Schema.Lookup(name); ok {
		v, err := decl.Kind.Coerce(decl.Name, raw)
		if err != nil {
			return true, err
		}
		zerolog.Ctx(ctx).Debug().Str("option", decl.Name).Interface("value", v).Msg("compiler option set")
		r.Compiler[decl.Name] = v
		return true, nil
	}

	if decl, ok := HandbookSchema.Lookup(name); ok {
		v, err := decl.Kind.Coerce(decl.Name, raw)
		if err != nil {
			return true, err
		}
		if err := r.Handbook.Set(decl.Name, v); err != nil {
			return true, errors.Errorf("setting handbook option: %w", err)
		}
		zerolog.Ctx(ctx).Debug().Str("option", decl.Name).Interface("value", v).Msg("handbook option set")
		return true, nil
	}

	return false, nil
}
