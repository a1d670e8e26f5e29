package extension

import (
	"reflect"
	"strings"

	"github.com/viant/x"
)

// Types is a registry of action data types
type Types struct {
	x.Registry
}

// Register adds a data type to the registry
func (t *Types) Register(dataType *x.Type) {
	if dataType == nil {
		return
	}
	t.Registry.Register(dataType)
}

// RegisterType adds a reflect type, pointers are registered by their element type
func (t *Types) RegisterType(rType reflect.Type) {
	if rType == nil {
		return
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	t.Register(x.NewType(rType))
}

// Lookup returns a data type by its qualified name; slice and map modifiers
// such as "[]" or "map[string]" prefix are supported. It returns nil for an
// unknown type.
func (t *Types) Lookup(dataType string) *x.Type {
	typeModifier := ""
	if idx := strings.LastIndex(dataType, "]"); idx != -1 {
		typeModifier = dataType[:idx+1]
		dataType = dataType[idx+1:]
	}
	ret := t.Registry.Lookup(dataType)
	if ret == nil {
		return nil
	}
	rType := ret.Type
	switch strings.TrimSpace(typeModifier) {
	case "[]":
		rType = reflect.SliceOf(rType)
	case "map[string]":
		rType = reflect.MapOf(reflect.TypeOf(""), rType)
	}
	if rType != ret.Type {
		return x.NewType(rType)
	}
	return ret
}

// NewTypes creates a new types
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{
		Registry: *x.NewRegistry(options...),
	}
}
