package table

import "fmt"

type Kind int

const (
	Categorical Kind = iota
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	default:
		return "categorical"
	}
}

type Field struct {
	Name string
	Kind Kind
}

// Schema is an ordered list of fields. Column lookups by name go through
// an index built once by NewSchema.
type Schema struct {
	fields []Field
	index  map[string]int
}

func NewSchema(fields ...Field) (Schema, error) {
	s := Schema{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return Schema{}, fmt.Errorf("field %d has no name", i)
		}
		if _, dup := s.index[f.Name]; dup {
			return Schema{}, fmt.Errorf("duplicate field %q", f.Name)
		}
		s.fields[i] = f
		s.index[f.Name] = i
	}
	return s, nil
}

func (s Schema) Len() int { return len(s.fields) }

func (s Schema) Field(i int) Field { return s.fields[i] }

func (s Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

func (s Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}
