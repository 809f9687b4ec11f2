package pb

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a single path data token, e.g. "L 10 10".
// Arc flags are stored in Args as numbers; anything non-zero means true.
type Command struct {
	Code PathCommand
	Args []float64
}

// Validate checks whether Code is known and Args fit it.
func (c Command) Validate() error {
	if !c.Code.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Code)
	}

	if want := c.Code.NArgs(); len(c.Args) != want {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgCount, c.Code, want, len(c.Args))
	}

	return nil
}

// String renders the command the way it appears in path data.
// Cubic and smooth cubic commands separate their coordinate pairs with a comma.
func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Code))

	switch c.Code.Abs() {
	case CubicToAbs, SmoothToAbs:
		for i, arg := range c.Args {
			if i > 0 && i%2 == 0 {
				sb.WriteByte(',')
			}

			sb.WriteByte(' ')
			sb.WriteString(FormatNumber(arg))
		}
	case ArcToAbs:
		for i, arg := range c.Args {
			sb.WriteByte(' ')
			// 3 and 4 are large-arc and sweep flags
			if i == 3 || i == 4 {
				sb.WriteString(formatFlag(arg != 0))
				continue
			}

			sb.WriteString(FormatNumber(arg))
		}
	default:
		for _, arg := range c.Args {
			sb.WriteByte(' ')
			sb.WriteString(FormatNumber(arg))
		}
	}

	return sb.String()
}

// FormatNumber writes v as the shortest decimal that reads back as v.
// No exponent, no grouping, no forced decimals.
func FormatNumber(v float64) string {
	// -0 reads as 0 for every consumer
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFlag(f bool) string {
	if f {
		return "1"
	}

	return "0"
}

func flagValue(f bool) float64 {
	if f {
		return 1
	}

	return 0
}
