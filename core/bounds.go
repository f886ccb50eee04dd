package core

import (
	"fmt"
	"strings"
)

// CollisionPolicy selects how an object reacts on reaching a grid edge
type CollisionPolicy uint8

const (
	// PolicyIgnore passes motion through, clamped silently into the grid
	PolicyIgnore CollisionPolicy = iota
	// PolicyReflect pins the object at the edge and reports a reversal
	PolicyReflect
	// PolicyStop pins the object at the edge and reports a halt
	PolicyStop
	// PolicyScroll wraps the coordinate toroidally
	PolicyScroll
)

var policyNames = [...]string{
	PolicyIgnore:  "ignore",
	PolicyReflect: "reflect",
	PolicyStop:    "stop",
	PolicyScroll:  "scroll",
}

func (p CollisionPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("policy(%d)", p)
}

// ParseCollisionPolicy resolves a policy name, case-insensitive
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range policyNames {
		if n == name {
			return CollisionPolicy(i), nil
		}
	}
	return PolicyIgnore, fmt.Errorf("%w: unknown collision policy %q", ErrInvalidConfiguration, s)
}

// Padding insets the usable region from each grid edge
type Padding struct {
	Left, Top, Right, Bottom int
}

// UniformPadding returns the same inset on all sides
func UniformPadding(n int) Padding {
	return Padding{Left: n, Top: n, Right: n, Bottom: n}
}

// Bounds describes the grid an object moves within
type Bounds struct {
	Width, Height int
	Policy        CollisionPolicy
	Padding       Padding
}

// Validate rejects non-positive dimensions, negative padding and padding that consumes the grid
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfiguration, b.Width, b.Height)
	}
	p := b.Padding
	if p.Left < 0 || p.Top < 0 || p.Right < 0 || p.Bottom < 0 {
		return fmt.Errorf("%w: padding %+v must not be negative", ErrInvalidConfiguration, p)
	}
	if p.Left+p.Right >= b.Width || p.Top+p.Bottom >= b.Height {
		return fmt.Errorf("%w: padding %+v leaves no room in %dx%d grid", ErrInvalidConfiguration, p, b.Width, b.Height)
	}
	if b.Policy > PolicyScroll {
		return fmt.Errorf("%w: unknown collision policy %d", ErrInvalidConfiguration, b.Policy)
	}
	return nil
}

// Fits returns an error if an object of the given size cannot sit inside the padded grid
// Scroll ignores padding and only needs the object to fit the grid itself
func (b Bounds) Fits(width, height int) error {
	availW := b.Width - b.Padding.Left - b.Padding.Right
	availH := b.Height - b.Padding.Top - b.Padding.Bottom
	if b.Policy == PolicyScroll {
		availW, availH = b.Width, b.Height
	}
	if width > availW || height > availH {
		return fmt.Errorf("%w: object %dx%d exceeds usable %dx%d region", ErrInvalidConfiguration, width, height, availW, availH)
	}
	return nil
}
