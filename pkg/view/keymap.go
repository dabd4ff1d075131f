package view

import (
	"slices"

	"github.com/matzehuels/wordweb/pkg/errors"
)

// Default key bindings. Key "1" lowers the zoom value and "2" raises it.
var (
	DefaultZoomOutKeys = []string{"1", "-"}
	DefaultZoomInKeys  = []string{"2", "+", "="}
)

// Keymap maps key names to zoom events. Unbound keys map to [EventNone].
type Keymap map[string]Event

// DefaultKeymap returns the default bindings.
func DefaultKeymap() Keymap {
	km, _ := NewKeymap(DefaultZoomInKeys, DefaultZoomOutKeys)
	return km
}

// NewKeymap binds zoomIn and zoomOut keys. A key bound to both directions is
// rejected, as is an empty key.
func NewKeymap(zoomIn, zoomOut []string) (Keymap, error) {
	km := make(Keymap, len(zoomIn)+len(zoomOut))
	for _, k := range zoomIn {
		if k == "" {
			return nil, errors.New(errors.ErrCodeInvalidKey, "empty zoom-in key")
		}
		km[k] = ZoomIn
	}
	for _, k := range zoomOut {
		if k == "" {
			return nil, errors.New(errors.ErrCodeInvalidKey, "empty zoom-out key")
		}
		if slices.Contains(zoomIn, k) {
			return nil, errors.New(errors.ErrCodeInvalidKey, "key %q bound to both zoom directions", k)
		}
		km[k] = ZoomOut
	}
	return km, nil
}

// Event returns the event bound to key.
func (km Keymap) Event(key string) Event {
	return km[key]
}

// Keys returns the keys bound to ev, sorted.
func (km Keymap) Keys(ev Event) []string {
	var keys []string
	for k, e := range km {
		if e == ev {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
