package soc

import (
	"io"
	"strconv"
	"strings"
)

// A UART is the primary serial console. Its output goes to an io.Writer.
type UART struct {
	w       io.Writer
	present bool
	enabled bool
	baud    uint32
}

// NewUART creates a UART writing to w. A UART that is not present reports
// itself unavailable and drops all output.
func NewUART(w io.Writer, present bool) *UART {
	return &UART{w: w, present: present}
}

// Setup enables the UART at the given baud rate.
func (u *UART) Setup(baud uint32) {
	u.baud = baud
	u.enabled = u.present
}

// Baud returns the configured baud rate.
func (u *UART) Baud() uint32 {
	return u.baud
}

// Available tells if the UART is implemented.
func (u *UART) Available() bool {
	return u.present
}

// Printf formats and transmits text.
func (u *UART) Printf(format string, args ...uint32) {
	if !u.enabled || u.w == nil {
		return
	}

	_, _ = io.WriteString(u.w, Sprintf(format, args...))
}

// Sprintf formats like the firmware printf: %u prints an unsigned decimal,
// %x and %X an unsigned hexadecimal and %% a percent sign. Missing
// arguments print as 0, unknown verbs are copied verbatim.
func Sprintf(format string, args ...uint32) string {
	var sb strings.Builder

	next := 0
	arg := func() uint64 {
		if next >= len(args) {
			return 0
		}
		next++

		return uint64(args[next-1])
	}

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 == len(format) {
			sb.WriteByte(ch)
			continue
		}

		i++
		switch format[i] {
		case 'u':
			sb.WriteString(strconv.FormatUint(arg(), 10))
		case 'x':
			sb.WriteString(strconv.FormatUint(arg(), 16))
		case 'X':
			sb.WriteString(strings.ToUpper(strconv.FormatUint(arg(), 16)))
		case '%':
			sb.WriteByte('%')
		default:
			sb.WriteByte('%')
			sb.WriteByte(format[i])
		}
	}

	return sb.String()
}
