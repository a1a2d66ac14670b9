// Package grid builds the row/column model the engine edits: column schema,
// canonical cell text, record identity and pagination-aware row labels.
package grid

import (
	"errors"
	"fmt"
)

// Kind is the editor flavour of a column.
type Kind string

const (
	KindText      Kind = "text"
	KindNumber    Kind = "number"
	KindCheckbox  Kind = "checkbox"
	KindStatus    Kind = "status"
	KindComposite Kind = "composite"
)

// RowNumberColumnID is the ID of the synthetic row-number column.
const RowNumberColumnID = "#"

var (
	ErrDuplicateColumn = errors.New("duplicate column id")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrNotEditable     = errors.New("cell is not editable")
	ErrInvalidColumn   = errors.New("invalid column")
)

// Column describes one grid column.
type Column struct {
	ID       string   `mapstructure:"id" yaml:"id"`
	Label    string   `mapstructure:"label" yaml:"label,omitempty"`
	Width    int      `mapstructure:"width" yaml:"width,omitempty"`
	ReadOnly bool     `mapstructure:"read_only" yaml:"read_only,omitempty"`
	Kind     Kind     `mapstructure:"kind" yaml:"kind,omitempty"`
	Field    string   `mapstructure:"field" yaml:"field,omitempty"`   // record key, defaults to ID
	Parts    []string `mapstructure:"parts" yaml:"parts,omitempty"`   // composite sub-fields
	Options  []string `mapstructure:"options" yaml:"options,omitempty"` // status values
	Header   bool     `mapstructure:"-" yaml:"-"`
}

// FieldName returns the record key the column reads from.
func (c Column) FieldName() string {
	if c.Field != "" {
		return c.Field
	}
	return c.ID
}

// Title returns the label shown in the header row.
func (c Column) Title() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Editable reports whether cells in this column accept edits.
// Row-number and composite columns never do.
func (c Column) Editable() bool {
	return !c.ReadOnly && !c.Header && c.Kind != KindComposite
}

// ValidateColumns checks a schema before it is mounted.
func ValidateColumns(cols []Column) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: schema has no columns", ErrInvalidColumn)
	}
	seen := make(map[string]bool, len(cols))
	for i, c := range cols {
		if c.ID == "" {
			return fmt.Errorf("%w: column %d has no id", ErrInvalidColumn, i)
		}
		if c.ID == RowNumberColumnID {
			return fmt.Errorf("%w: id %q is reserved", ErrInvalidColumn, c.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.ID)
		}
		seen[c.ID] = true

		switch c.Kind {
		case "", KindText, KindNumber, KindCheckbox:
		case KindStatus:
			if len(c.Options) == 0 {
				return fmt.Errorf("%w: status column %q has no options", ErrInvalidColumn, c.ID)
			}
		case KindComposite:
			if len(c.Parts) == 0 {
				return fmt.Errorf("%w: composite column %q has no parts", ErrInvalidColumn, c.ID)
			}
		default:
			return fmt.Errorf("%w: column %q has unknown kind %q", ErrInvalidColumn, c.ID, c.Kind)
		}
		if c.Width < 0 {
			return fmt.Errorf("%w: column %q has negative width", ErrInvalidColumn, c.ID)
		}
	}
	return nil
}
