package main

import (
	"errors"
	"fmt"
	"image"

	"github.com/golangsnmp/overlaykit/internal/overlay"
	"github.com/golangsnmp/overlaykit/internal/profile"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

var errNotBool = errors.New("expression must return bool")

// ruleSet compiles and evaluates the CEL "when" conditions attached to
// profile items. Compiled programs are cached by expression text.
type ruleSet struct {
	env      *cel.Env
	programs map[string]cel.Program
	errs     map[string]error
}

func newRuleSet() (*ruleSet, error) {
	env, err := cel.NewEnv(
		cel.Variable("host", cel.StringType),
		cel.Variable("format", cel.StringType),
		cel.Variable("vertical", cel.StringType),
		cel.Variable("horizontal", cel.StringType),
		cel.Variable("x", cel.IntType),
		cel.Variable("y", cel.IntType),
		cel.Variable("width", cel.IntType),
		cel.Variable("height", cel.IntType),
		ext.Strings(),
	)
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	return &ruleSet{
		env:      env,
		programs: make(map[string]cel.Program),
		errs:     make(map[string]error),
	}, nil
}

func (r *ruleSet) compile(expr string) (cel.Program, error) {
	if prg, ok := r.programs[expr]; ok {
		return prg, nil
	}
	if err, ok := r.errs[expr]; ok {
		return nil, err
	}

	prg, err := r.build(expr)
	if err != nil {
		r.errs[expr] = err
		return nil, err
	}
	r.programs[expr] = prg
	return prg, nil
}

func (r *ruleSet) build(expr string) (cel.Program, error) {
	ast, issues := r.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	if ast.OutputType() != cel.BoolType {
		return nil, errNotBool
	}
	return r.env.Program(ast)
}

// check reports a compile error for expr without evaluating it.
func (r *ruleSet) check(expr string) error {
	if expr == "" {
		return nil
	}
	_, err := r.compile(expr)
	return err
}

// activation builds the variables visible to rules for a touch in host.
// Coordinates are relative to the host.
func activation(h *hostPane, format overlay.Format, touch image.Point) map[string]any {
	b := h.Bounds()
	p := overlay.Resolve(touch, b)
	local := h.local(touch)
	return map[string]any{
		"host":       h.ID(),
		"format":     format.String(),
		"vertical":   p.Vertical.String(),
		"horizontal": p.Horizontal.String(),
		"x":          int64(local.X),
		"y":          int64(local.Y),
		"width":      int64(b.Dx()),
		"height":     int64(b.Dy()),
	}
}

// eval reports whether expr holds for vars. An empty expression always
// holds.
func (r *ruleSet) eval(expr string, vars map[string]any) (bool, error) {
	if expr == "" {
		return true, nil
	}
	prg, err := r.compile(expr)
	if err != nil {
		return false, err
	}
	out, _, err := prg.Eval(vars)
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	return ok && b, nil
}

// visible returns the labels of items whose condition holds for vars.
// Items with a broken condition are left out and reported.
func (r *ruleSet) visible(items []profile.Item, vars map[string]any) ([]string, []error) {
	var labels []string
	var errs []error
	for _, it := range items {
		ok, err := r.eval(it.When, vars)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", it.Label, err))
			continue
		}
		if ok {
			labels = append(labels, it.Label)
		}
	}
	return labels, errs
}
