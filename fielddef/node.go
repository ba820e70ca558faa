// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fielddef

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/surfaces"
)

// Node is one element of a field definition tree.
type Node struct {
	Kind   string             `yaml:"kind" validate:"required"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Args   []Node             `yaml:"args,omitempty" validate:"dive"`

	// Aff3 optionally gives the six affine parameters a..f as one row-major
	// list, in golang.org/x/image/math/f64.Aff3 order. Only kinds accepting
	// all of a..f (affine) allow it.
	Aff3 []float64 `yaml:"aff3,omitempty" validate:"omitempty,len=6"`
}

// Errors.
var (
	// ErrEmptyKind is returned when a node does not name a kind.
	ErrEmptyKind = errors.New("fielddef: node kind is empty")

	// ErrInvalidDefinition is returned when a decoded definition fails validation.
	ErrInvalidDefinition = errors.New("fielddef: invalid definition")

	// ErrAff3Length is returned when an aff3 list does not hold six values.
	ErrAff3Length = errors.New("fielddef: aff3 needs exactly 6 values")
)

// affineParams are the parameter names filled from an aff3 list.
var affineParams = []string{"a", "b", "c", "d", "e", "f"}

var validate = validator.New()

// Parse decodes a YAML definition and builds it with the global registry.
func Parse(data []byte) (surfaces.Field, error) {
	return globalRegistry.Parse(data)
}

// Build builds a node tree with the global registry.
func Build(n Node) (surfaces.Field, error) {
	return globalRegistry.Build(n)
}

// Decode decodes and validates a YAML definition without building it.
func Decode(data []byte) (Node, error) {
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Node{}, fmt.Errorf("fielddef: decode: %w", err)
	}
	if err := validate.Struct(n); err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return n, nil
}

// Parse decodes a YAML definition and builds it with r.
func (r *Registry) Parse(data []byte) (surfaces.Field, error) {
	n, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return r.Build(n)
}

// Build turns a node tree into a field, resolving kinds against r.
// Errors name the failing node by its path, e.g. "root.args[1].args[0]".
func (r *Registry) Build(n Node) (surfaces.Field, error) {
	f, err := r.build(n, "root")
	if err != nil {
		return nil, err
	}
	surfaces.Logger().Debug("fielddef: built field", "kind", n.Kind)
	return f, nil
}

func (r *Registry) build(n Node, path string) (surfaces.Field, error) {
	if n.Kind == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyKind)
	}
	entry, ok := r.Get(n.Kind)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, &UnknownKindError{Kind: n.Kind})
	}
	params, err := entry.params(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := entry.check(len(n.Args), params); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	args := make([]surfaces.Field, len(n.Args))
	for i, child := range n.Args {
		f, err := r.build(child, fmt.Sprintf("%s.args[%d]", path, i))
		if err != nil {
			return nil, err
		}
		args[i] = f
	}

	f, err := entry.Factory(params, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", path, n.Kind, err)
	}
	return f, nil
}

// params merges a node's aff3 list into its named parameters.
func (e *Entry) params(n Node) (Params, error) {
	if n.Aff3 == nil {
		return Params(n.Params), nil
	}
	for _, name := range affineParams {
		if !slices.Contains(e.Params, name) {
			return nil, &UnknownParamError{Kind: e.Name, Param: "aff3"}
		}
	}
	if len(n.Aff3) != 6 {
		return nil, ErrAff3Length
	}

	var a f64.Aff3
	copy(a[:], n.Aff3)
	m := surfaces.MatrixFromAff3(a)
	p := Params{"a": m.A, "b": m.B, "c": m.C, "d": m.D, "e": m.E, "f": m.F}
	for name, v := range n.Params {
		if _, dup := p[name]; dup {
			return nil, fmt.Errorf("fielddef: parameter %q is also set by aff3", name)
		}
		p[name] = v
	}
	return p, nil
}

// Params holds the numeric parameters of a node.
type Params map[string]float64

// Get returns the named parameter, or def if it is absent.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}
