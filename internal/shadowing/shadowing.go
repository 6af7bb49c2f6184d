// Package shadowing shows that redeclaring a name in a nested block creates
// a new variable and leaves the enclosing one untouched.
package shadowing

import (
	"fmt"
	"io"
)

// Go has no same-scope redeclaration, so each shadow gets its own block.

// walk rebinds x through the nested blocks and hands the innermost value to
// inner and the value after that block ends to outer.
func walk(inner, outer func(x int) error) error {
	x := 5
	{
		x := x + 1
		{
			x := x * 2
			if err := inner(x); err != nil {
				return err
			}
		}
		return outer(x)
	}
}

// Values returns the value seen inside the innermost block and the value
// seen once that block has ended.
func Values() (inner, outer int) {
	_ = walk(
		func(x int) error { inner = x; return nil },
		func(x int) error { outer = x; return nil },
	)
	return inner, outer
}

// Run prints the inner and outer values of x to w.
func Run(w io.Writer) error {
	return walk(
		func(x int) error {
			if _, err := fmt.Fprintf(w, "The value of x in the inner scope is: %d\n", x); err != nil {
				return fmt.Errorf("write inner value: %w", err)
			}
			return nil
		},
		func(x int) error {
			if _, err := fmt.Fprintf(w, "The value of x is: %d\n", x); err != nil {
				return fmt.Errorf("write outer value: %w", err)
			}
			return nil
		},
	)
}
