// Package filter translates product search parameters into a declarative
// predicate that can be rendered as SQL or evaluated against a product.
package filter

import (
	"fmt"
	"strings"

	"stylique/internal/model"
)

// Field identifies a filterable product attribute.
type Field string

// Filterable product fields.
const (
	FieldCategory Field = "category"
	FieldPrice    Field = "price"
	FieldRating   Field = "rating"
	FieldName     Field = "name"
)

// Op is a comparison operator.
type Op int

// Supported operators.
const (
	OpEq Op = iota
	OpGte
	OpLte
	OpContainsFold
)

// Condition is a single field comparison.
type Condition struct {
	Field Field
	Op    Op
	Value any
}

// Predicate is a conjunction of conditions. A predicate with no conditions
// matches every product.
type Predicate struct {
	Conditions []Condition
}

// Params holds the optional product search parameters. A nil field is absent.
type Params struct {
	Category *string
	MinPrice *float64
	MaxPrice *float64
	Rating   *float64
	Search   *string
}

// Build creates a predicate from the given parameters.
func Build(p Params) Predicate {
	var conds []Condition

	if p.Category != nil && *p.Category != "" {
		conds = append(conds, Condition{Field: FieldCategory, Op: OpEq, Value: *p.Category})
	}

	if p.MinPrice != nil {
		conds = append(conds, Condition{Field: FieldPrice, Op: OpGte, Value: *p.MinPrice})
	}
	if p.MaxPrice != nil {
		conds = append(conds, Condition{Field: FieldPrice, Op: OpLte, Value: *p.MaxPrice})
	}

	if p.Rating != nil {
		conds = append(conds, Condition{Field: FieldRating, Op: OpGte, Value: *p.Rating})
	}

	if p.Search != nil {
		if term := strings.TrimSpace(*p.Search); term != "" {
			conds = append(conds, Condition{Field: FieldName, Op: OpContainsFold, Value: term})
		}
	}

	return Predicate{Conditions: conds}
}

// IsEmpty reports whether the predicate matches everything.
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// SQL renders the predicate as a parameterised WHERE clause body. Placeholders
// are numbered from argOffset+1. An empty predicate renders as "TRUE".
func (p Predicate) SQL(argOffset int) (string, []any) {
	if p.IsEmpty() {
		return "TRUE", nil
	}

	clauses := make([]string, 0, len(p.Conditions))
	args := make([]any, 0, len(p.Conditions))

	for _, c := range p.Conditions {
		placeholder := fmt.Sprintf("$%d", argOffset+len(args)+1)
		column := string(c.Field)

		switch c.Op {
		case OpEq:
			clauses = append(clauses, column+" = "+placeholder)
			args = append(args, c.Value)
		case OpGte:
			clauses = append(clauses, column+" >= "+placeholder)
			args = append(args, c.Value)
		case OpLte:
			clauses = append(clauses, column+" <= "+placeholder)
			args = append(args, c.Value)
		case OpContainsFold:
			clauses = append(clauses, column+" ILIKE "+placeholder)
			args = append(args, "%"+escapeLike(fmt.Sprint(c.Value))+"%")
		}
	}

	return strings.Join(clauses, " AND "), args
}

// Match evaluates the predicate against a product in memory. It applies the
// same conditions as SQL and serves as the reference the repository query is
// checked against.
func (p Predicate) Match(product model.Product) bool {
	for _, c := range p.Conditions {
		if !c.match(product) {
			return false
		}
	}
	return true
}

func (c Condition) match(product model.Product) bool {
	switch c.Field {
	case FieldCategory:
		v, _ := c.Value.(string)
		return c.Op == OpEq && product.Category == v
	case FieldName:
		v, _ := c.Value.(string)
		return c.Op == OpContainsFold &&
			strings.Contains(strings.ToLower(product.Name), strings.ToLower(v))
	case FieldPrice:
		return compare(c.Op, product.Price, c.Value)
	case FieldRating:
		return compare(c.Op, product.Rating, c.Value)
	}
	return false
}

func compare(op Op, actual float64, value any) bool {
	bound, ok := value.(float64)
	if !ok {
		return false
	}
	switch op {
	case OpEq:
		return actual == bound
	case OpGte:
		return actual >= bound
	case OpLte:
		return actual <= bound
	}
	return false
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
