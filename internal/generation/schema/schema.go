// Package schema describes the expected shape of generated JSON values.
// A Descriptor is consumed twice per generation call: once to render the
// format constraint into the system instruction, and once to validate the
// provider response before it is handed to the caller.
package schema

import (
	"fmt"
	"math"
	"strings"
)

type Kind int

const (
	KindString Kind = iota
	KindInt
	KindNumber
	KindBool
	KindEnum
	KindArray
	KindObject
)

// Field is one named member of an object descriptor.
type Field struct {
	Name     string
	Schema   *Descriptor
	Required bool
}

// Descriptor declares a value shape. Exactly the members matching Kind are
// meaningful: Fields for objects, Items for arrays, Values for enums,
// Min/Max for bounded integers, NonEmpty/MaxLen for strings.
type Descriptor struct {
	Kind     Kind
	Hint     string
	Fields   []Field
	Items    *Descriptor
	Values   []string
	Min      int
	Max      int
	Bounded  bool
	NonEmpty bool
	MaxLen   int
	MinItems int
	MaxItems int
}

func String(hint string) *Descriptor {
	return &Descriptor{Kind: KindString, Hint: hint}
}

// StringMax declares a string with a hard length ceiling. Responses exceeding
// it fail validation, they are not truncated.
func StringMax(hint string, maxLen int) *Descriptor {
	return &Descriptor{Kind: KindString, Hint: hint, MaxLen: maxLen}
}

// NonEmptyString declares a string that must carry text. Empty and
// whitespace-only values fail validation.
func NonEmptyString(hint string) *Descriptor {
	return &Descriptor{Kind: KindString, Hint: hint, NonEmpty: true}
}

func Int(hint string) *Descriptor {
	return &Descriptor{Kind: KindInt, Hint: hint}
}

// IntRange declares an integer constrained to [min, max] inclusive.
func IntRange(hint string, min, max int) *Descriptor {
	return &Descriptor{Kind: KindInt, Hint: hint, Min: min, Max: max, Bounded: true}
}

func Number(hint string) *Descriptor {
	return &Descriptor{Kind: KindNumber, Hint: hint}
}

func Bool(hint string) *Descriptor {
	return &Descriptor{Kind: KindBool, Hint: hint}
}

func Enum(hint string, values ...string) *Descriptor {
	return &Descriptor{Kind: KindEnum, Hint: hint, Values: values}
}

func Array(hint string, items *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindArray, Hint: hint, Items: items}
}

// ArrayRange declares an array with item-count bounds. A zero max means
// unbounded above.
func ArrayRange(hint string, items *Descriptor, minItems, maxItems int) *Descriptor {
	return &Descriptor{Kind: KindArray, Hint: hint, Items: items, MinItems: minItems, MaxItems: maxItems}
}

func Object(hint string, fields ...Field) *Descriptor {
	return &Descriptor{Kind: KindObject, Hint: hint, Fields: fields}
}

// Req declares a required object field.
func Req(name string, d *Descriptor) Field {
	return Field{Name: name, Schema: d, Required: true}
}

// Opt declares an optional object field.
func Opt(name string, d *Descriptor) Field {
	return Field{Name: name, Schema: d}
}

// Violation is one schema violation at a JSON path.
type Violation struct {
	Path    string
	Message string
}

// Violations collects every violation found during a validation walk.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, viol := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", viol.Path, viol.Message))
	}
	return "schema violations: " + strings.Join(parts, "; ")
}

// Validate checks a decoded JSON value (the result of unmarshalling into
// any) against the descriptor. Unknown object fields are ignored; missing
// required fields, enum values outside the declared set and out-of-range
// integers are violations. Out-of-range values are never clamped.
func (d *Descriptor) Validate(value any) error {
	var violations Violations
	d.walk("$", value, &violations)
	if len(violations) > 0 {
		return violations
	}
	return nil
}

func (d *Descriptor) walk(path string, value any, out *Violations) {
	switch d.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			out.add(path, "expected string")
			return
		}
		if d.NonEmpty && strings.TrimSpace(s) == "" {
			out.add(path, "string must not be empty")
		}
		if d.MaxLen > 0 && len(s) > d.MaxLen {
			out.add(path, fmt.Sprintf("string length %d exceeds limit %d", len(s), d.MaxLen))
		}
	case KindInt:
		f, ok := value.(float64)
		if !ok {
			out.add(path, "expected integer")
			return
		}
		if f != math.Trunc(f) {
			out.add(path, fmt.Sprintf("expected integer, got %v", f))
			return
		}
		n := int(f)
		if d.Bounded && (n < d.Min || n > d.Max) {
			out.add(path, fmt.Sprintf("integer %d outside range [%d, %d]", n, d.Min, d.Max))
		}
	case KindNumber:
		if _, ok := value.(float64); !ok {
			out.add(path, "expected number")
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			out.add(path, "expected boolean")
		}
	case KindEnum:
		s, ok := value.(string)
		if !ok {
			out.add(path, "expected string")
			return
		}
		for _, allowed := range d.Values {
			if s == allowed {
				return
			}
		}
		out.add(path, fmt.Sprintf("value %q not in {%s}", s, strings.Join(d.Values, ", ")))
	case KindArray:
		items, ok := value.([]any)
		if !ok {
			out.add(path, "expected array")
			return
		}
		if d.MinItems > 0 && len(items) < d.MinItems {
			out.add(path, fmt.Sprintf("array has %d items, minimum is %d", len(items), d.MinItems))
		}
		if d.MaxItems > 0 && len(items) > d.MaxItems {
			out.add(path, fmt.Sprintf("array has %d items, maximum is %d", len(items), d.MaxItems))
		}
		for i, item := range items {
			d.Items.walk(fmt.Sprintf("%s[%d]", path, i), item, out)
		}
	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			out.add(path, "expected object")
			return
		}
		for _, field := range d.Fields {
			fieldValue, present := obj[field.Name]
			if !present || fieldValue == nil {
				if field.Required {
					out.add(path+"."+field.Name, "required field is missing")
				}
				continue
			}
			field.Schema.walk(path+"."+field.Name, fieldValue, out)
		}
	}
}

func (v *Violations) add(path, message string) {
	*v = append(*v, Violation{Path: path, Message: message})
}

// Instruction renders the descriptor as a JSON skeleton with inline hints,
// suitable for embedding into a system instruction. The rendering is
// deterministic for a given descriptor.
func (d *Descriptor) Instruction() string {
	var sb strings.Builder
	d.render(&sb, 0)
	return sb.String()
}

func (d *Descriptor) render(sb *strings.Builder, depth int) {
	switch d.Kind {
	case KindString:
		sb.WriteString("string")
		d.renderStringConstraints(sb)
	case KindInt:
		sb.WriteString("integer")
		if d.Bounded {
			fmt.Fprintf(sb, " (between %d and %d)", d.Min, d.Max)
		}
		d.renderHint(sb)
	case KindNumber:
		sb.WriteString("number")
		d.renderHint(sb)
	case KindBool:
		sb.WriteString("boolean")
		d.renderHint(sb)
	case KindEnum:
		quoted := make([]string, len(d.Values))
		for i, v := range d.Values {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		sb.WriteString("one of " + strings.Join(quoted, " | "))
		d.renderHint(sb)
	case KindArray:
		sb.WriteString("[")
		d.Items.render(sb, depth+1)
		sb.WriteString(", ...]")
		if d.MinItems > 0 || d.MaxItems > 0 {
			fmt.Fprintf(sb, " (%s)", itemBounds(d.MinItems, d.MaxItems))
		}
		d.renderHint(sb)
	case KindObject:
		indent := strings.Repeat("  ", depth)
		sb.WriteString("{\n")
		for i, field := range d.Fields {
			fmt.Fprintf(sb, "%s  %q: ", indent, field.Name)
			field.Schema.render(sb, depth+1)
			if !field.Required {
				sb.WriteString(" (optional)")
			}
			if i < len(d.Fields)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indent + "}")
		d.renderHint(sb)
	}
}

func (d *Descriptor) renderStringConstraints(sb *strings.Builder) {
	constraints := []string{}
	if d.NonEmpty {
		constraints = append(constraints, "must not be empty")
	}
	if d.MaxLen > 0 {
		constraints = append(constraints, fmt.Sprintf("max %d characters", d.MaxLen))
	}
	if d.Hint != "" {
		constraints = append(constraints, d.Hint)
	}
	if len(constraints) > 0 {
		fmt.Fprintf(sb, " - %s", strings.Join(constraints, "; "))
	}
}

func (d *Descriptor) renderHint(sb *strings.Builder) {
	if d.Hint != "" {
		fmt.Fprintf(sb, " - %s", d.Hint)
	}
}

func itemBounds(min, max int) string {
	switch {
	case min > 0 && max > 0 && min == max:
		return fmt.Sprintf("exactly %d items", min)
	case min > 0 && max > 0:
		return fmt.Sprintf("%d to %d items", min, max)
	case min > 0:
		return fmt.Sprintf("at least %d items", min)
	default:
		return fmt.Sprintf("at most %d items", max)
	}
}
