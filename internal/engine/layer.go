package engine

import "fmt"

// Layer is one of 32 collision layers a GameObject can live on.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerIgnoreRaycast
	LayerUI
	LayerPlayer

	MaxLayers = 32
)

var layerNames = map[string]Layer{
	"Default":       LayerDefault,
	"IgnoreRaycast": LayerIgnoreRaycast,
	"UI":            LayerUI,
	"Player":        LayerPlayer,
}

// NameToLayer resolves a layer by name.
func NameToLayer(name string) (Layer, error) {
	if l, ok := layerNames[name]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// RegisterLayer gives a name to a user layer.
func RegisterLayer(name string, l Layer) error {
	if l >= MaxLayers {
		return fmt.Errorf("layer %d out of range", l)
	}
	if existing, ok := layerNames[name]; ok && existing != l {
		return fmt.Errorf("layer %q already registered as %d", name, existing)
	}
	layerNames[name] = l
	return nil
}

// LayerMask is a set of layers.
type LayerMask uint32

// MaskOf builds a mask containing the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}
	return m
}

// MaskFromNames builds a mask from layer names, failing on the first unknown one.
func MaskFromNames(names []string) (LayerMask, error) {
	var m LayerMask
	for _, name := range names {
		l, err := NameToLayer(name)
		if err != nil {
			return 0, err
		}
		m |= 1 << l
	}
	return m, nil
}

func (m LayerMask) Contains(l Layer) bool {
	return m&(1<<l) != 0
}
