package container

import (
	"fmt"
	"strings"
)

// Kind names the storage variant backing a container.
type Kind string

const (
	// KindArray is a fixed block of pre-allocated slots.
	KindArray Kind = "array"
	// KindVec is backed by a slice allocated once with the requested capacity.
	KindVec Kind = "vec"
	// KindRing is a circular buffer (queue only).
	KindRing Kind = "ring"
)

// ParseKind returns a Kind for the supplied name, empty name defaults to KindArray.
func ParseKind(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case "", KindArray:
		return KindArray, nil
	case KindVec:
		return KindVec, nil
	case KindRing:
		return KindRing, nil
	}
	return "", fmt.Errorf("unsupported container kind: %q", name)
}

// UnsupportedKindError reports a kind the named container cannot be built with.
func UnsupportedKindError(containerName string, kind Kind) error {
	return fmt.Errorf("%s: unsupported kind %q", containerName, kind)
}
