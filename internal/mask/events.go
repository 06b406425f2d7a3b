package mask

// Event describes a state change inside the annotation core. Events replace
// in-core logging: the core emits them through an optional Hook and makes no
// control-flow decisions based on them.
type Event struct {
	// Op identifies the operation: "tile", "apply_threshold", "add_region",
	// "remove_region", or "clear_mask".
	Op string

	// Row and Col locate the affected patch. Both are -1 for image-level
	// events such as tiling.
	Row int
	Col int

	// Detail carries a short human-readable description.
	Detail string
}

// Hook receives events synchronously from the operation that produced them.
// A nil Hook disables event emission. Hooks must not call back into the
// emitting Patch or Image.
type Hook func(Event)

func (p *Patch) emit(op, detail string) {
	if p.hook != nil {
		p.hook(Event{Op: op, Row: p.index.Row, Col: p.index.Col, Detail: detail})
	}
}
