package returns

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/erp/backoffice/internal/domain/shared"
)

// Field names a filterable return request column
type Field string

const (
	FieldID       Field = "id"
	FieldStatusID Field = "return_request_status_id"
	FieldStoreID  Field = "store_id"
)

// Operator is a comparison operator of a clause
type Operator string

const (
	OpEqual Operator = "="
	OpIn    Operator = "IN"
)

// Clause is a single (field, operator, value) condition
type Clause struct {
	Field    Field
	Operator Operator
	Value    any
}

// String renders the clause for logs and span attributes
func (c Clause) String() string {
	return fmt.Sprintf("%s %s %v", c.Field, c.Operator, c.Value)
}

// Predicate is a conjunction of clauses. Clause order carries no meaning.
type Predicate struct {
	clauses []Clause
}

// And returns a new predicate with the clause appended
func (p Predicate) And(c Clause) Predicate {
	clauses := make([]Clause, 0, len(p.clauses)+1)
	clauses = append(clauses, p.clauses...)
	clauses = append(clauses, c)
	return Predicate{clauses: clauses}
}

// Clauses returns the clauses sorted by field then operator
func (p Predicate) Clauses() []Clause {
	out := make([]Clause, len(p.clauses))
	copy(out, p.clauses)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field != out[j].Field {
			return out[i].Field < out[j].Field
		}
		return out[i].Operator < out[j].Operator
	})
	return out
}

// IsEmpty reports whether the predicate matches everything
func (p Predicate) IsEmpty() bool {
	return len(p.clauses) == 0
}

// Equal reports whether both predicates hold the same clauses in any order
func (p Predicate) Equal(other Predicate) bool {
	a, b := p.Clauses(), other.Clauses()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Field != b[i].Field || a[i].Operator != b[i].Operator || !reflect.DeepEqual(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// String renders the predicate as an AND-joined expression
func (p Predicate) String() string {
	clauses := p.Clauses()
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}

// Matches evaluates the predicate against a return request in memory
func (p Predicate) Matches(r *ReturnRequest) bool {
	for _, c := range p.clauses {
		var actual int64
		switch c.Field {
		case FieldID:
			actual = r.ID
		case FieldStatusID:
			actual = int64(r.Status)
		case FieldStoreID:
			actual = r.StoreID
		default:
			return false
		}
		if !c.matches(actual) {
			return false
		}
	}
	return true
}

func (c Clause) matches(actual int64) bool {
	switch c.Operator {
	case OpEqual:
		v, ok := toInt64(c.Value)
		return ok && v == actual
	case OpIn:
		values, ok := c.Value.([]int64)
		if !ok {
			return false
		}
		for _, v := range values {
			if v == actual {
				return true
			}
		}
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case ReturnRequestStatus:
		return int64(n), true
	}
	return 0, false
}

// SortDirection is ascending or descending
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortSpec orders the grid
type SortSpec struct {
	Field     string
	Direction SortDirection
}

// DefaultSort keeps paging stable when the caller does not sort
var DefaultSort = SortSpec{Field: "id", Direction: SortAsc}

// GridQuery is the caller-facing filter and paging input of the grid
type GridQuery struct {
	SearchID       *int64
	SearchStatusID *int
	SearchStoreID  *int64
	Page           int
	PageSize       int
	Sort           *SortSpec
}

// Validate checks the paging arguments and the status filter
func (q GridQuery) Validate() error {
	if q.PageSize <= 0 {
		return shared.InvalidArgument("page size must be greater than zero")
	}
	if q.Page < 1 {
		return shared.InvalidArgument("page must be at least 1")
	}
	if q.Page-1 > math.MaxInt/q.PageSize {
		return shared.InvalidArgument("page is out of range")
	}
	if q.SearchStatusID != nil {
		if _, err := ParseReturnRequestStatus(*q.SearchStatusID); err != nil {
			return err
		}
	}
	return nil
}

// Predicate builds the AND-conjunction of all present filters
func (q GridQuery) Predicate() Predicate {
	var p Predicate
	if q.SearchID != nil {
		p = p.And(Clause{Field: FieldID, Operator: OpEqual, Value: *q.SearchID})
	}
	if q.SearchStatusID != nil {
		p = p.And(Clause{Field: FieldStatusID, Operator: OpEqual, Value: int64(*q.SearchStatusID)})
	}
	if q.SearchStoreID != nil {
		p = p.And(Clause{Field: FieldStoreID, Operator: OpEqual, Value: *q.SearchStoreID})
	}
	return p
}

// Skip returns the number of rows to skip
func (q GridQuery) Skip() int {
	return shared.Offset(q.Page, q.PageSize)
}

// SortOrDefault returns the requested sort, or the default
func (q GridQuery) SortOrDefault() SortSpec {
	if q.Sort == nil || q.Sort.Field == "" {
		return DefaultSort
	}
	return *q.Sort
}
