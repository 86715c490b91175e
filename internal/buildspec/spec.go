// Package buildspec loads declarative build-spec documents and
// compiles them into validated Containerfile documents.
//
// A build spec is a YAML file holding either a flat `instructions`
// list or a `stages` list. Loading happens in three passes: the raw
// document is checked against an embedded CUE schema (shape: known
// kinds, closed per-kind field sets, field types), then strictly
// decoded into the Go model, then compiled through the containerfile
// constructors which own all semantic validation and accumulate every
// error they find.
package buildspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/craftfile/cli/pkg/containerfile"
)

// Document is the decoded form of a build-spec file. Exactly one of
// Instructions and Stages is set.
type Document struct {
	Instructions []InstructionSpec `yaml:"instructions,omitempty"`
	Stages       []StageSpec       `yaml:"stages,omitempty"`
}

// StageSpec is one named stage of a multi-stage build spec.
type StageSpec struct {
	Name         string            `yaml:"name"`
	Instructions []InstructionSpec `yaml:"instructions"`
}

// InstructionSpec is the decoded form of one instruction entry. Kind
// selects the directive; the remaining fields are per-kind and the CUE
// schema rejects fields that do not belong to the declared kind.
type InstructionSpec struct {
	Kind string `yaml:"kind"`

	// FROM
	Image    string `yaml:"image,omitempty"`
	As       string `yaml:"as,omitempty"`
	Platform string `yaml:"platform,omitempty"`

	// RUN, CMD, ENTRYPOINT
	Command StringOrList `yaml:"command,omitempty"`

	// COPY, ADD
	Src   StringOrList `yaml:"src,omitempty"`
	Dest  string       `yaml:"dest,omitempty"`
	From  string       `yaml:"from,omitempty"`
	Chown string       `yaml:"chown,omitempty"`
	Chmod string       `yaml:"chmod,omitempty"`

	// WORKDIR
	Path string `yaml:"path,omitempty"`

	// ENV, LABEL
	Key   string `yaml:"key,omitempty"`
	Value string `yaml:"value,omitempty"`

	// EXPOSE
	Port     int    `yaml:"port,omitempty"`
	EndPort  *int   `yaml:"endPort,omitempty"`
	Protocol string `yaml:"protocol,omitempty"`

	// ARG
	Name    string  `yaml:"name,omitempty"`
	Default *string `yaml:"default,omitempty"`
}

// StringOrList decodes a YAML value that may be given as a single
// scalar or as a sequence of scalars. A scalar normalizes to a
// one-element list; List records which form the document used so
// shell-form and exec-form commands stay distinguishable.
type StringOrList struct {
	Values []string
	List   bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		s.Values = []string{v}
		s.List = false
		return nil
	case yaml.SequenceNode:
		s.List = true
		return node.Decode(&s.Values)
	default:
		return fmt.Errorf("line %d: must be a string or a list of strings", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler, emitting the form the value
// was decoded from.
func (s StringOrList) MarshalYAML() (any, error) {
	if !s.List && len(s.Values) == 1 {
		return s.Values[0], nil
	}
	return s.Values, nil
}

// Parse validates data against the embedded schema and decodes it into
// a Document. Schema violations come back as containerfile.Errors so
// callers report them alongside semantic errors; decode failures
// (malformed YAML, unknown fields) come back as plain errors.
func Parse(data []byte) (*Document, error) {
	if errs := validateSchema(data); len(errs) > 0 {
		return nil, errs
	}

	doc := new(Document)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode build spec: %w", err)
	}

	if len(doc.Instructions) > 0 && len(doc.Stages) > 0 {
		return nil, containerfile.Errors{{
			Message: "must define either instructions or stages, not both",
		}}
	}
	if len(doc.Instructions) == 0 && len(doc.Stages) == 0 {
		return nil, containerfile.Errors{{
			Message: "must define at least one instruction or stage",
		}}
	}

	return doc, nil
}

// ParseFile reads and parses the build spec at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read build spec: %w", err)
	}
	return Parse(data)
}
