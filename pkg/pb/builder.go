// Package pb provides a fluent way to build SVG path data ("d" attribute) strings.
//
//	d, err := pb.NewPathBuilder().
//		MoveTo(10, 10).
//		CubicTo(20, 20, 40, 20, 50, 10).
//		Close()
//
// The builder is a plain serializer: arguments are never validated against
// geometry and every number is written exactly as given.
// A PathBuilder is not safe for concurrent use.
package pb

import (
	"fmt"
	"strings"

	"github.com/kpango/glg"
)

// PathBuilder accumulates path commands. Every command method returns the builder,
// so calls can be chained. Use Close to finish the path and read the result.
type PathBuilder struct {
	commands []Command
	closed   bool
	result   string
	err      error
}

// NewPathBuilder creates an empty, open PathBuilder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// Push appends commands to the path.
// Unlike the typed methods, Push validates every command and records
// ErrUnknownCommand or ErrArgCount (see Err) instead of appending an invalid one.
// The close command is not accepted here, use Close.
func (b *PathBuilder) Push(cmds ...Command) *PathBuilder {
	for _, cmd := range cmds {
		if cmd.Code.Abs() == ClosePath {
			b.setErr(fmt.Errorf("%w: use Close to close the path", ErrUnknownCommand))
			continue
		}

		if err := cmd.Validate(); err != nil {
			b.setErr(err)
			continue
		}

		b.push(cmd.Code, append([]float64(nil), cmd.Args...)...)
	}

	return b
}

func (b *PathBuilder) push(code PathCommand, args ...float64) *PathBuilder {
	if b.closed {
		glg.Warnf("%s called, but path is already closed! %s", code, b.result)
		b.setErr(fmt.Errorf("cannot append %s: %w", code, ErrPathClosed))
		return b
	}

	b.commands = append(b.commands, Command{Code: code, Args: args})

	return b
}

// setErr keeps the first error only.
func (b *PathBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Close appends the close command (z) and returns the whole path.
// The builder stays closed afterwards: further commands are dropped and reported by Err.
// Calling Close again returns the same path together with ErrPathClosed.
func (b *PathBuilder) Close() (string, error) {
	if b.closed {
		glg.Warnf("Close called, but path is already closed! %s", b.result)
		return b.result, fmt.Errorf("cannot close: %w", ErrPathClosed)
	}

	b.commands = append(b.commands, Command{Code: ClosePath})
	b.result = b.join()
	b.closed = true

	return b.result, b.err
}

func (b *PathBuilder) join() string {
	tokens := make([]string, len(b.commands))
	for i, cmd := range b.commands {
		tokens[i] = cmd.String()
	}

	return strings.Join(tokens, " ")
}

// String returns the path built so far. It does not close the path.
func (b *PathBuilder) String() string {
	if b.closed {
		return b.result
	}

	return b.join()
}

// Commands returns a copy of the commands pushed so far.
// Changing the result never affects the builder.
func (b *PathBuilder) Commands() []Command {
	result := make([]Command, len(b.commands))
	for i, cmd := range b.commands {
		result[i] = Command{Code: cmd.Code, Args: append([]float64(nil), cmd.Args...)}
	}

	return result
}

// Len returns number of tokens in the path (including z once closed).
func (b *PathBuilder) Len() int {
	return len(b.commands)
}

// Closed reports whether Close was already called.
func (b *PathBuilder) Closed() bool {
	return b.closed
}

// Err returns the first error recorded while building.
func (b *PathBuilder) Err() error {
	return b.err
}

// Clone returns an independent copy of b.
// It lets several paths share a common prefix.
func (b *PathBuilder) Clone() *PathBuilder {
	result := *b
	result.commands = b.Commands()

	return &result
}

// Reset makes the builder empty and open again.
func (b *PathBuilder) Reset() *PathBuilder {
	*b = PathBuilder{}
	return b
}
