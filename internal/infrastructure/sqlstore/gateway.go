package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/grid"
)

var ErrInvalidValue = errors.New("invalid value")

// Gateway persists grid writes through a Store.
type Gateway struct {
	store   *Store
	columns map[string]grid.Column
}

var _ gateway.BatchGateway = (*Gateway)(nil)

// NewGateway maps column IDs to table fields using cols.
func NewGateway(store *Store, cols []grid.Column) *Gateway {
	m := make(map[string]grid.Column, len(cols))
	for _, c := range cols {
		m[c.ID] = c
	}
	return &Gateway{store: store, columns: m}
}

func (g *Gateway) CommitCell(ctx context.Context, w gateway.Write) error {
	u, err := g.update(w)
	if err != nil {
		return err
	}
	return translate(g.store.UpdateField(ctx, u.RecordID, u.Field, u.Value))
}

// CommitMany sends every valid write in one pass over the store.
func (g *Gateway) CommitMany(ctx context.Context, writes []gateway.Write) gateway.BatchResult {
	outcomes := make([]gateway.Outcome, len(writes))
	var updates []FieldUpdate
	var index []int
	for i, w := range writes {
		outcomes[i].Write = w
		u, err := g.update(w)
		if err != nil {
			outcomes[i].Err = &gateway.CommitError{Write: w, Err: err}
			continue
		}
		updates = append(updates, u)
		index = append(index, i)
	}
	for j, err := range g.store.UpdateFields(ctx, updates) {
		if err != nil {
			i := index[j]
			outcomes[i].Err = &gateway.CommitError{Write: writes[i], Err: translate(err)}
		}
	}
	return gateway.NewBatchResult(outcomes)
}

func (g *Gateway) update(w gateway.Write) (FieldUpdate, error) {
	c, ok := g.columns[w.ColumnID]
	if !ok {
		return FieldUpdate{}, fmt.Errorf("%w: %q", gateway.ErrUnknownColumn, w.ColumnID)
	}
	if !c.Editable() {
		return FieldUpdate{}, fmt.Errorf("%w: %q", gateway.ErrReadOnly, w.ColumnID)
	}
	v, err := toDBValue(c, w.Value)
	if err != nil {
		return FieldUpdate{}, err
	}
	return FieldUpdate{RecordID: w.RecordID, Field: c.FieldName(), Value: v}, nil
}

// toDBValue converts cell text to the value bound for the column's kind.
// Empty text stores NULL for numbers.
func toDBValue(c grid.Column, raw string) (any, error) {
	s := strings.TrimSpace(raw)
	switch c.Kind {
	case grid.KindNumber:
		if s == "" {
			return nil, nil
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, raw)
		}
		return f, nil
	case grid.KindCheckbox:
		if s == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not true or false", ErrInvalidValue, raw)
		}
		return b, nil
	case grid.KindStatus:
		if len(c.Options) > 0 && s != "" {
			for _, o := range c.Options {
				if strings.EqualFold(o, s) {
					return o, nil
				}
			}
			return nil, fmt.Errorf("%w: %q is not one of %s", ErrInvalidValue, raw, strings.Join(c.Options, ", "))
		}
		return raw, nil
	default:
		return raw, nil
	}
}

func translate(err error) error {
	if errors.Is(err, ErrNoRows) {
		return fmt.Errorf("%w: %w", gateway.ErrRecordNotFound, err)
	}
	return err
}
