package layout

import (
	"errors"
	"fmt"

	"github.com/ironsheep/artboard-tools-mcp/internal/document"
	"github.com/ironsheep/artboard-tools-mcp/internal/logging"
)

// TempGroup is a transient group over a set of items, remembering the layer
// each member came from.
type TempGroup struct {
	group   document.Group
	members []document.Item
	origins []document.Layer
}

// Group returns the underlying host group.
func (t *TempGroup) Group() document.Group {
	return t.group
}

// Group wraps items in a new transient group created on the first item's
// layer. If adopting any item fails, the items adopted so far are released
// and the group discarded before returning.
func Group(g document.Grouper, items []document.Item) (*TempGroup, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCollection
	}
	grp, err := g.NewGroup(items[0].Layer())
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	t := &TempGroup{group: grp}
	for _, it := range items {
		origin := it.Layer()
		if err := grp.Adopt(it); err != nil {
			return nil, errors.Join(fmt.Errorf("failed to group item: %w", err), UngroupOnce(t))
		}
		t.members = append(t.members, it)
		t.origins = append(t.origins, origin)
	}
	return t, nil
}

// UngroupOnce returns every member to its original layer and discards the
// group. It keeps going after a failed release so as many members as possible
// are restored.
func UngroupOnce(t *TempGroup) error {
	var errs []error
	for i, it := range t.members {
		if err := t.group.Release(it, t.origins[i]); err != nil {
			errs = append(errs, fmt.Errorf("failed to release item %d: %w", i, err))
		}
	}
	t.members, t.origins = nil, nil
	if err := t.group.Discard(); err != nil {
		errs = append(errs, fmt.Errorf("failed to discard group: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		logging.Logger().Warn("ungroup incomplete", "error", err)
		return err
	}
	return nil
}

// WithGroup groups items, runs fn with the group, and ungroups on every exit
// path including a panic in fn.
func WithGroup(g document.Grouper, items []document.Item, fn func(document.Group) error) (err error) {
	t, err := Group(g, items)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, UngroupOnce(t))
	}()
	return fn(t.group)
}
