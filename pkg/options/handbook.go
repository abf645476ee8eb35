package options

import (
	"gitlab.com/tozd/go/errors"
)

// Handbook options steer the engine rather than the analyzer.
type Handbook struct {
	// Errors lists the diagnostic codes the sample is expected to raise.
	Errors               []int  `json:"errors" yaml:"errors" hcl:"errors,optional"`
	NoErrors             bool   `json:"noErrors" yaml:"noErrors" hcl:"no_errors,optional"`
	ShowEmit             bool   `json:"showEmit" yaml:"showEmit" hcl:"show_emit,optional"`
	ShowEmittedFile      string `json:"showEmittedFile,omitempty" yaml:"showEmittedFile,omitempty" hcl:"show_emitted_file,optional"`
	NoStaticSemanticInfo bool   `json:"noStaticSemanticInfo" yaml:"noStaticSemanticInfo" hcl:"no_static_semantic_info,optional"`
	Emit                 bool   `json:"emit" yaml:"emit" hcl:"emit,optional"`
	NoErrorValidation    bool   `json:"noErrorValidation" yaml:"noErrorValidation" hcl:"no_error_validation,optional"`
}

var HandbookSchema = NewSchema(
	Declaration{Name: "errors", Kind: List{Element: Scalar{Type: Number}, Separators: ", "}},
	Declaration{Name: "noErrors", Kind: Scalar{Type: Boolean}},
	Declaration{Name: "showEmit", Kind: Scalar{Type: Boolean}},
	Declaration{Name: "showEmittedFile", Kind: Scalar{Type: String}},
	Declaration{Name: "noStaticSemanticInfo", Kind: Scalar{Type: Boolean}},
	Declaration{Name: "emit", Kind: Scalar{Type: Boolean}},
	Declaration{Name: "noErrorValidation", Kind: Scalar{Type: Boolean}},
)

// Set stores an already coerced value under its canonical name.
func (h *Handbook) Set(name string, value any) error {
	switch name {
	case "errors":
		list, _ := value.([]any)
		codes := make([]int, 0, len(list))
		for _, v := range list {
			f, ok := v.(float64)
			if !ok {
				return errors.Errorf("error code %v is not a number", v)
			}
			codes = append(codes, int(f))
		}
		h.Errors = codes
	case "noErrors":
		h.NoErrors, _ = value.(bool)
	case "showEmit":
		h.ShowEmit, _ = value.(bool)
	case "showEmittedFile":
		h.ShowEmittedFile, _ = value.(string)
	case "noStaticSemanticInfo":
		h.NoStaticSemanticInfo, _ = value.(bool)
	case "emit":
		h.Emit, _ = value.(bool)
	case "noErrorValidation":
		h.NoErrorValidation, _ = value.(bool)
	default:
		return errors.Errorf("unknown handbook option %q", name)
	}
	return nil
}

// ExpectsError reports whether code was declared with @errors.
func (h Handbook) ExpectsError(code int) bool {
	for _, c := range h.Errors {
		if c == code {
			return true
		}
	}
	return false
}
