package main

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
)

// ruleFields lists the variables visible to item conditions.
var ruleFields = []string{
	"format", "height", "horizontal", "host", "vertical", "width", "x", "y",
}

// ruleEnumValues maps string variables to their possible values.
var ruleEnumValues = map[string][]string{
	"format":     {"menu", "description", "side-menu"},
	"vertical":   {"above", "below"},
	"horizontal": {"left", "right"},
	"host":       {"left", "right"},
}

var ruleMethods = []string{"contains", "startsWith", "endsWith"}

// ruleBarModel is an input for trying item conditions against the cursor.
type ruleBarModel struct {
	input  textinput.Model
	rules  *ruleSet
	active bool
	width  int

	matched bool
	err     string

	tc tabCompleter
}

func newRuleBar(rules *ruleSet) ruleBarModel {
	ti := newStyledInput("when ", 256)
	ti.Placeholder = `horizontal == "left" and y < height / 2`
	s := ti.Styles()
	s.Focused.Placeholder = styles.Label
	s.Blurred.Placeholder = styles.Label
	ti.SetStyles(s)
	return ruleBarModel{input: ti, rules: rules}
}

func (r *ruleBarModel) setSize(width int) {
	r.width = width
}

func (r *ruleBarModel) activate() {
	r.active = true
	r.input.SetWidth(max(20, r.width-24))
	r.input.Focus()
}

func (r *ruleBarModel) deactivate() {
	r.active = false
	r.input.Blur()
}

// evaluate runs the current expression against vars.
func (r *ruleBarModel) evaluate(vars map[string]any) {
	r.err = ""
	ok, err := r.rules.eval(strings.TrimSpace(r.input.Value()), vars)
	if err != nil {
		r.err = err.Error()
	}
	r.matched = ok
}

// tabComplete completes variable names, or enum values after `field == "`.
func (r *ruleBarModel) tabComplete() {
	value := r.input.Value()
	cursor := min(r.input.Position(), len(value))

	tokenStart := cursor
	for tokenStart > 0 && !isRuleBoundary(value[tokenStart-1]) {
		tokenStart--
	}
	token := value[tokenStart:cursor]

	var candidates []string
	switch {
	case tokenStart > 0 && value[tokenStart-1] == '.':
		candidates = ruleMethods
	case tokenStart > 0 && value[tokenStart-1] == '"':
		candidates = ruleEnumValues[precedingField(value, tokenStart-1)]
	default:
		candidates = ruleFields
	}

	completion, ok := r.tc.complete(token, candidates)
	if !ok {
		return
	}
	r.input.SetValue(value[:tokenStart] + completion + value[cursor:])
	r.input.SetCursor(tokenStart + len(completion))
}

func isRuleBoundary(ch byte) bool {
	switch ch {
	case ' ', '(', ')', '!', '<', '>', '=', ',', '"', '.':
		return true
	}
	return false
}

// precedingField returns the identifier before an == or != that ends just
// before quote, or "" when there is none.
func precedingField(value string, quote int) string {
	pos := quote - 1
	for pos >= 0 && value[pos] == ' ' {
		pos--
	}
	if pos < 1 || (value[pos-1:pos+1] != "==" && value[pos-1:pos+1] != "!=") {
		return ""
	}
	pos -= 2
	for pos >= 0 && value[pos] == ' ' {
		pos--
	}
	end := pos + 1
	for pos >= 0 && !isRuleBoundary(value[pos]) {
		pos--
	}
	return value[pos+1 : end]
}

func (r *ruleBarModel) view() string {
	if !r.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.input.View())
	switch {
	case r.err != "":
		b.WriteString(styles.Status.ErrorMsg.Render("  " + r.err))
	case strings.TrimSpace(r.input.Value()) == "":
	case r.matched:
		b.WriteString(styles.Status.SuccessMsg.Render("  " + IconSuccess + " shown here"))
	default:
		b.WriteString(styles.Status.WarnMsg.Render("  " + IconError + " hidden here"))
	}
	return b.String()
}

// renderRuleHelp builds the reference shown in the help dialog.
func renderRuleHelp() string {
	hdr := styles.Header.Info
	val := styles.Value
	lbl := styles.Label

	var b strings.Builder
	b.WriteString(hdr.Render("Item conditions"))
	b.WriteString("\n")
	b.WriteString(styledList([]string{"host", "format", "vertical", "horizontal"}, val, "  "))
	b.WriteString(lbl.Render("  (string)"))
	b.WriteString("\n")
	b.WriteString(styledList([]string{"x", "y", "width", "height"}, val, "  "))
	b.WriteString(lbl.Render("  (int, pane relative)"))
	b.WriteString("\n")
	b.WriteString(val.Render(`  format == "menu" and horizontal == "left"`))
	return b.String()
}

// styledList renders items separated by sep, with a 2-char indent.
func styledList(items []string, style lipgloss.Style, sep string) string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = style.Render(item)
	}
	return "  " + strings.Join(rendered, sep)
}
