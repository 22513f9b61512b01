// File: ringbuf/dump.go
// Author: momentics <momentics@gmail.com>
//
// Hex rendering of the raw backing array for debugging. Presentation
// only; never consulted by the transfer engine.

package ringbuf

import (
	"fmt"
	"io"
	"strings"
)

// DumpTo writes a two-line snapshot of the buffer: the raw backing
// bytes in hex, then a marker line with H at head, t at tail and
// dashes across the live region. head==tail collapses to a caret,
// annotated (empty) or (full) since the indices alone are ambiguous.
func (b *Buffer) DumpTo(w io.Writer) error {
	b.lk.Lock()
	data := make([]byte, len(b.data))
	copy(data, b.data)
	head, tail, used := b.head, b.tail, b.used
	b.lk.Unlock()

	n := len(data)
	if n == 0 {
		_, err := fmt.Fprintln(w, "(zero capacity)")
		return err
	}

	var hexLine strings.Builder
	for _, c := range data {
		fmt.Fprintf(&hexLine, "%02x ", c)
	}

	// Lazy indices may rest at n; they denote slot 0 for display.
	if head == n {
		head = 0
	}
	if tail == n {
		tail = 0
	}

	marks := make([]byte, 3*n)
	for i := range marks {
		marks[i] = ' '
	}
	for i := 0; i < used; i++ {
		marks[3*((tail+i)%n)] = '-'
	}

	suffix := ""
	if head == tail {
		marks[3*head] = '^'
		if used == 0 {
			suffix = " (empty)"
		} else {
			suffix = " (full)"
		}
	} else {
		marks[3*tail] = 't'
		marks[3*head] = 'H'
	}

	_, err := fmt.Fprintf(w, "%s\n%s%s\n",
		strings.TrimRight(hexLine.String(), " "),
		strings.TrimRight(string(marks), " "), suffix)
	return err
}

// String renders the DumpTo output.
func (b *Buffer) String() string {
	var sb strings.Builder
	_ = b.DumpTo(&sb)
	return sb.String()
}
