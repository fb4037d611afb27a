package variables

import (
	"fmt"
	"sort"
	"strings"
)

// Variable is a named physical quantity
type Variable struct {
	Name  string
	Value float64
	Units string
}

// Set is a flat collection of variables indexed by name.
// Names are case-insensitive. A variable keeps the spelling it was first
// added with, or its catalogue spelling when added in lower case.
type Set struct {
	vars map[string]Variable
}

// NewSet creates an empty variable set
func NewSet() *Set {
	return &Set{vars: make(map[string]Variable)}
}

// Add stores a variable, replacing the value and units of any variable
// with the same name
func (s *Set) Add(name string, value float64, units string) {
	key := normalize(name)
	if old, ok := s.vars[key]; ok {
		name = old.Name
	}
	s.vars[key] = Variable{Name: Canonical(name), Value: value, Units: units}
}

// Has reports whether a variable is defined
func (s *Set) Has(name string) bool {
	_, ok := s.vars[normalize(name)]
	return ok
}

// Get returns the variable with the given name
func (s *Set) Get(name string) (Variable, bool) {
	v, ok := s.vars[normalize(name)]
	return v, ok
}

// Value returns the value of a required variable
func (s *Set) Value(name string) (float64, error) {
	v, ok := s.Get(name)
	if !ok {
		return 0, &MissingInputError{Names: []string{Canonical(name)}}
	}
	return v.Value, nil
}

// ValueOr returns the value of an optional variable
func (s *Set) ValueOr(name string, def float64) float64 {
	if v, ok := s.Get(name); ok {
		return v.Value
	}
	return def
}

// Merge copies all variables of other into s
func (s *Set) Merge(other *Set) {
	for key, v := range other.vars {
		if old, ok := s.vars[key]; ok {
			v.Name = old.Name
		}
		s.vars[key] = v
	}
}

// Len returns the number of variables
func (s *Set) Len() int {
	return len(s.vars)
}

// Variables returns all variables sorted by name, ignoring case
func (s *Set) Variables() []Variable {
	keys := make([]string, 0, len(s.vars))
	for key := range s.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	vars := make([]Variable, len(keys))
	for i, key := range keys {
		vars[i] = s.vars[key]
	}
	return vars
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Reader collects required and optional inputs from a set and remembers
// every missing or mismatching one, so that a component can report all
// wiring problems at once before computing anything.
type Reader struct {
	set     *Set
	missing []string
	units   []string
}

// NewReader creates a reader on a variable set
func NewReader(set *Set) *Reader {
	return &Reader{set: set}
}

// Required returns a required input. Units are checked when both the
// variable and the caller declare them.
func (r *Reader) Required(name, units string) float64 {
	v, ok := r.set.Get(name)
	if !ok {
		r.missing = append(r.missing, Canonical(name))
		return 0
	}
	r.checkUnits(v, units)
	return v.Value
}

// Optional returns an optional input or its default value
func (r *Reader) Optional(name, units string, def float64) float64 {
	v, ok := r.set.Get(name)
	if !ok {
		return def
	}
	r.checkUnits(v, units)
	return v.Value
}

// Err returns a *MissingInputError listing all missing inputs, or a
// *UnitsError for the first unit mismatch.
func (r *Reader) Err() error {
	if len(r.missing) > 0 {
		return &MissingInputError{Names: r.missing}
	}
	if len(r.units) > 0 {
		return &UnitsError{msg: r.units[0]}
	}
	return nil
}

func (r *Reader) checkUnits(v Variable, units string) {
	if v.Units == "" || units == "" || v.Units == units {
		return
	}
	r.units = append(r.units, fmt.Sprintf("%s is in %q, expected %q", v.Name, v.Units, units))
}

// MissingInputError reports required inputs that are not defined
type MissingInputError struct {
	Names []string
}

func (e *MissingInputError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("missing required input %s", e.Names[0])
	}
	return fmt.Sprintf("missing required inputs: %s", strings.Join(e.Names, ", "))
}

// UnitsError reports an input given in unexpected units.
// No unit conversion is performed.
type UnitsError struct {
	msg string
}

func (e *UnitsError) Error() string {
	return e.msg
}
