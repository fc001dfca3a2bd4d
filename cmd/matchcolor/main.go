// Command matchcolor looks up the palette name for a color the way the device does.
//
//	matchcolor -rgb 200,30,40
//	matchcolor -hex '#87CEEB'
//	matchcolor -rgbc 812,120,95,1020
//	matchcolor -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"colorpicky/internal/colors"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

const usage = "usage: matchcolor -rgb R,G,B | -hex #RRGGBB | -rgbc R,G,B,C | -list"

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("matchcolor", flag.ContinueOnError)
	var (
		rgbArg  = fs.String("rgb", "", "8-bit color as R,G,B.")
		hexArg  = fs.String("hex", "", "8-bit color as #RRGGBB.")
		rgbcArg = fs.String("rgbc", "", "Raw sensor counts as R,G,B,C.")
		list    = fs.Bool("list", false, "Print the palette.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for i, c := range colors.Default {
			fmt.Fprintf(out, "%2d  %s  %s\n", i, c.RGB.Hex(), c.Name)
		}
		return nil
	}

	var c colors.RGB
	switch {
	case *rgbArg != "":
		v, err := parseList(*rgbArg, 3, 255)
		if err != nil {
			return fmt.Errorf("rgb: %w", err)
		}
		c = colors.RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}
	case *hexArg != "":
		v, err := parseHex(*hexArg)
		if err != nil {
			return fmt.Errorf("hex: %w", err)
		}
		c = v
	case *rgbcArg != "":
		v, err := parseList(*rgbcArg, 4, 0xFFFF)
		if err != nil {
			return fmt.Errorf("rgbc: %w", err)
		}
		s := colors.Sample{R: uint16(v[0]), G: uint16(v[1]), B: uint16(v[2]), C: uint16(v[3])}
		n, ok := colors.Normalize(s)
		if !ok {
			return errors.New("rgbc: clear channel is zero, no reading")
		}
		c = n
	default:
		return errors.New(usage)
	}

	nc, idx := colors.Default.Nearest(c)
	fmt.Fprintf(out, "%s  %s (palette %s, #%d)\n", c.Hex(), nc.Name, nc.RGB.Hex(), idx)
	return nil
}

func parseList(s string, n int, max uint64) ([]uint64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]uint64, n)
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, err
		}
		if v > max {
			return nil, fmt.Errorf("value %d out of range 0..%d", v, max)
		}
		out[i] = v
	}
	return out, nil
}

func parseHex(s string) (colors.RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return colors.RGB{}, fmt.Errorf("want 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return colors.RGB{}, err
	}
	return colors.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
