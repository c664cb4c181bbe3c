package genni

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SolveFunc runs a search over the given bounds.
type SolveFunc func(Bounds) ([]Solution, error)

// RunServer implements the line protocol used by scripted harnesses.
// Protocol (one command per line):
//   - BOUNDS <xrMin> <xrMax> <yrMin> <yrMax> <xlMin> <xlMax> <ylMin> <ylMax>:
//     restrict the search; DefaultBounds applies until then.
//   - RUN: search and print OK <n>, then n lines "<x> <y>".
//   - CHECK <x> <y>: print OK TRUE or OK FALSE.
//   - QUIT: exit.
//
// Bad arguments and search failures are reported on w and do not end the
// session; only read and write failures are returned.
func RunServer(r io.Reader, w io.Writer, solve SolveFunc) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	bounds := DefaultBounds()

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				return nil
			}
			continue
		}

		switch strings.ToUpper(parts[0]) {
		case "BOUNDS":
			b, perr := parseBounds(parts[1:])
			if perr != nil {
				fmt.Fprintln(writer, "ERR BADARGS")
				break
			}
			bounds = b
			fmt.Fprintln(writer, "OK")

		case "RUN":
			sols, serr := solve(bounds)
			if serr != nil {
				fmt.Fprintf(writer, "ERR %s\n", serr)
				break
			}
			fmt.Fprintf(writer, "OK %d\n", len(sols))
			for _, s := range sols {
				fmt.Fprintf(writer, "%d %d\n", s.X, s.Y)
			}

		case "CHECK":
			if len(parts) != 3 {
				fmt.Fprintln(writer, "ERR BADARGS")
				break
			}
			x, err1 := strconv.ParseInt(parts[1], 10, 64)
			y, err2 := strconv.ParseInt(parts[2], 10, 64)
			if err1 != nil || err2 != nil {
				fmt.Fprintln(writer, "ERR BADARGS")
				break
			}
			if Check(x, y) {
				fmt.Fprintln(writer, "OK TRUE")
			} else {
				fmt.Fprintln(writer, "OK FALSE")
			}

		case "QUIT":
			return writer.Flush()

		default:
			fmt.Fprintln(writer, "ERR BADCMD")
		}

		if err := writer.Flush(); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
		if eof {
			return nil
		}
	}
}

func parseBounds(args []string) (Bounds, error) {
	if len(args) != 8 {
		return Bounds{}, fmt.Errorf("want 8 bounds, got %d: %w", len(args), ErrInvalidRange)
	}
	var v [8]int64
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("bound %q: %w", a, err)
		}
		v[i] = n
	}
	b := Bounds{
		XR: Range{v[0], v[1]},
		YR: Range{v[2], v[3]},
		XL: Range{v[4], v[5]},
		YL: Range{v[6], v[7]},
	}
	return b, b.Validate()
}
