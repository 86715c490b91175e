package buildspec

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/craftfile/cli/pkg/containerfile"
)

//go:embed schema.cue
var schemaCUE []byte

// schemaValue compiles the embedded schema once and returns the
// #Document definition. A broken embedded schema is a build defect,
// hence the panic.
var schemaValue = sync.OnceValue(func() cue.Value {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		panic(fmt.Sprintf("buildspec: compiling embedded schema: %v", schema.Err()))
	}

	doc := schema.LookupPath(cue.ParsePath("#Document"))
	if !doc.Exists() {
		panic("buildspec: embedded schema has no #Document definition")
	}
	return doc
})

// validateSchema checks the raw YAML document against the embedded
// schema and maps every CUE error into a containerfile.Error with a
// dot/bracket field path.
func validateSchema(data []byte) containerfile.Errors {
	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return containerfile.Errors{{
			Message: fmt.Sprintf("malformed YAML: %v", err),
		}}
	}
	if parsed == nil {
		// An empty document is reported by Parse with a clearer message.
		return nil
	}

	// YAML allows non-string map keys; go through JSON so the CUE
	// value sees the same shapes the decoder will.
	jsonData, err := json.Marshal(normalizeYAML(parsed))
	if err != nil {
		return containerfile.Errors{{
			Message: fmt.Sprintf("converting document to JSON: %v", err),
		}}
	}

	schema := schemaValue()
	value := schema.Context().CompileBytes(jsonData)
	if value.Err() != nil {
		return containerfile.Errors{{
			Message: fmt.Sprintf("building document value: %v", value.Err()),
		}}
	}

	unified := schema.Unify(value)
	if err := unified.Validate(); err != nil {
		return cueToErrors(err)
	}
	return nil
}

// cueToErrors converts an accumulated CUE error into the package's
// uniform error shape, preserving one entry per underlying failure.
func cueToErrors(err error) containerfile.Errors {
	var out containerfile.Errors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		out = append(out, &containerfile.Error{
			Field:   fieldPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		})
	}
	if len(out) == 0 {
		out = append(out, &containerfile.Error{Message: err.Error()})
	}
	return out
}

// fieldPath renders a CUE path as a dot/bracket access path, e.g.
// ["stages", "0", "name"] becomes "stages[0].name".
func fieldPath(path []string) string {
	var sb strings.Builder
	for _, seg := range path {
		if isIndex(seg) {
			sb.WriteString("[")
			sb.WriteString(seg)
			sb.WriteString("]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeYAML converts YAML-specific types to JSON-compatible types.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			result[k] = normalizeYAML(item)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, item := range val {
			result[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, item := range val {
			result[i] = normalizeYAML(item)
		}
		return result
	default:
		return v
	}
}
