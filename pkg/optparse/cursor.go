package optparse

import "fmt"

// cursor is a forward-only view over the argument tokens of one invocation.
// The dispatch loop owns the position; rules that take trailing arguments
// consume them through next.
type cursor struct {
	args []string
	pos  int
}

func newCursor(args []string) *cursor {
	return &cursor{args: args}
}

// done reports whether every token has been consumed.
func (c *cursor) done() bool {
	return c.pos >= len(c.args)
}

// current returns the token under the cursor.
func (c *cursor) current() string {
	return c.args[c.pos]
}

// advance moves to the following token.
func (c *cursor) advance() {
	c.pos++
}

// next consumes and returns the token after the current one. Running past
// the end means an option claimed arguments the invocation does not have.
func (c *cursor) next() (string, error) {
	if c.pos+1 >= len(c.args) {
		return "", fmt.Errorf("%w: %q expects a following argument", ErrTruncatedArgument, c.args[c.pos])
	}
	c.pos++
	return c.args[c.pos], nil
}
