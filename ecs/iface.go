package ecs

import "unsafe"

// iface mirrors the runtime layout of a non-empty interface value; the data
// word of a reflect.Type is its unique *rtype.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}
