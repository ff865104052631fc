package syntax

// Diagnostics printed after a sized declaration.
const (
	MsgSizeExceeded = "Error: Array initialization exceeds declared size."
	MsgSizeOK       = "Legal init size"
)

// SizeCheck is the result of comparing a declaration's capacity with the
// length of its initializer.
type SizeCheck struct {
	Name     string  // declared name
	Kind     CmdKind // KindArrayDecl, KindStringDecl or KindStringListDecl
	Capacity uint32  // declared capacity, or the inferred one
	Required uint32  // length of the initializer
	Inferred bool    // Capacity was taken from the initializer
}

// Exceeds reports whether the initializer does not fit.
func (c SizeCheck) Exceeds() bool {
	return c.Capacity < c.Required
}

// Message returns the diagnostic printed for c.
func (c SizeCheck) Message() string {
	if c.Exceeds() {
		return MsgSizeExceeded
	}
	return MsgSizeOK
}

// CheckDecl runs the declared-size check for a sized declaration.
// ok is false if c is not a sized declaration, has no initializer, or
// declares a size that is not a constant.
func CheckDecl(c Cmd) (check SizeCheck, ok bool) {
	switch d := c.(type) {
	case *ArrayDeclCmd:
		if d.Size == nil || d.Init == nil {
			return SizeCheck{}, false
		}
		n, isConst := constValue(d.Size)
		if !isConst {
			return SizeCheck{}, false
		}
		return SizeCheck{
			Name:     d.Name,
			Kind:     KindArrayDecl,
			Capacity: n,
			Required: uint32(d.Init.Len()),
		}, true

	case *StringDeclCmd:
		if d.Init == nil {
			return SizeCheck{}, false
		}
		lit, isLit := d.Init.(*StringLit)
		if !isLit {
			return SizeCheck{}, false
		}
		required := literalLen(lit.Lit)
		capacity, inferred, known := capacityOf(d.Size, required)
		if !known {
			return SizeCheck{}, false
		}
		return SizeCheck{
			Name:     d.Name,
			Kind:     KindStringDecl,
			Capacity: capacity,
			Required: required,
			Inferred: inferred,
		}, true

	case *StringListDeclCmd:
		if d.Init == nil {
			return SizeCheck{}, false
		}
		required := uint32(d.Init.Len())
		capacity, inferred, known := capacityOf(d.Size, required)
		if !known {
			return SizeCheck{}, false
		}
		return SizeCheck{
			Name:     d.Name,
			Kind:     KindStringListDecl,
			Capacity: capacity,
			Required: required,
			Inferred: inferred,
		}, true
	}
	return SizeCheck{}, false
}

// CheckSizes returns the size checks of all declarations in n, in
// depth-first order.
func CheckSizes(n Node) []SizeCheck {
	var checks []SizeCheck
	Inspect(n, func(n Node) bool {
		if c, ok := n.(Cmd); ok {
			if check, ok := CheckDecl(c); ok {
				checks = append(checks, check)
			}
		}
		return true
	})
	return checks
}

// capacityOf resolves a declared size. An inferred size takes the value of
// the initializer length.
func capacityOf(s Size, initLen uint32) (capacity uint32, inferred, known bool) {
	switch s := s.(type) {
	case InferredSize:
		return initLen, true, true
	case ExplicitSize:
		n, ok := constValue(s.X)
		return n, false, ok
	}
	return 0, false, false
}

func constValue(x Expr) (uint32, bool) {
	if c, ok := x.(*ConstExpr); ok {
		return c.Value, true
	}
	return 0, false
}

// literalLen is the length of a quoted literal without its two quotes.
func literalLen(lit string) uint32 {
	if len(lit) < 2 {
		return 0
	}
	return uint32(len(lit) - 2)
}
