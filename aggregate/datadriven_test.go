package aggregate

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/gernest/ewah/bitmaps"
)

func TestDataDriven(t *testing.T) {
	defined := map[string]*bitmaps.Bitmap{}
	datadriven.RunTest(t, "testdata/aggregate", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "bitmap":
			var name string
			td.ScanArgs(t, "name", &name)
			b := bitmaps.New()
			for line := range strings.SplitSeq(strings.TrimSpace(td.Input), "\n") {
				f := strings.Fields(line)
				if len(f) == 0 {
					continue
				}
				args := make([]uint64, len(f)-1)
				for i := range args {
					v, err := strconv.ParseUint(f[i+1], 0, 64)
					if err != nil {
						td.Fatalf(t, "invalid argument %q %v", f[i+1], err)
						return ""
					}
					args[i] = v
				}
				switch f[0] {
				case "set":
					for _, v := range args {
						if !b.Set(int(v)) {
							td.Fatalf(t, "bits must be increasing %d", v)
							return ""
						}
					}
				case "run":
					b.AddRun(args[0] == 1, int(args[1]))
				case "word":
					for _, w := range args {
						b.AddWord(w)
					}
				default:
					td.Fatalf(t, "unknown directive %v", f[0])
					return ""
				}
			}
			defined[name] = b
			return format(b)
		case "and", "or", "xor":
			var bms []*bitmaps.Bitmap
			buffer := DefaultBufferWords
			for _, arg := range td.CmdArgs {
				if arg.Key == "buffer" {
					n, err := strconv.Atoi(arg.Vals[0])
					if err != nil {
						td.Fatalf(t, "invalid buffer %v", err)
						return ""
					}
					buffer = n
					continue
				}
				b, ok := defined[arg.Key]
				if !ok {
					td.Fatalf(t, "unknown bitmap %v", arg.Key)
					return ""
				}
				bms = append(bms, b)
			}
			var op bitmaps.Op
			switch td.Cmd {
			case "and":
				op = bitmaps.AND
			case "or":
				op = bitmaps.OR
			default:
				op = bitmaps.XOR
			}
			var o bytes.Buffer
			r, err := Reduce(op, bms...)
			if err != nil {
				fmt.Fprintln(&o, "reduce:", err)
			} else {
				fmt.Fprintln(&o, "reduce:", format(r))
			}
			if op == bitmaps.OR {
				a := New(&Config{BufferWords: buffer, Logger: quiet()})
				fmt.Fprintln(&o, "buffered:", format(collect(a.BufferedOr, bms)))
				fmt.Fprintln(&o, "streaming:", format(collect(a.StreamingOr, bms)))
			}
			return o.String()
		case "count":
			var bms []*bitmaps.Bitmap
			for _, arg := range td.CmdArgs {
				bms = append(bms, defined[arg.Key])
			}
			return fmt.Sprintln(OrCardinality(bms...))
		default:
			td.Fatalf(t, "unknown command %v", td.Cmd)
			return ""
		}
	})
}

// format prints the size of b and its set bits with consecutive positions collapsed
// into ranges.
func format(b *bitmaps.Bitmap) string {
	var parts []string
	lo, hi := -1, -1
	flush := func() {
		switch {
		case lo < 0:
		case lo == hi:
			parts = append(parts, strconv.Itoa(lo))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", lo, hi))
		}
	}
	for i := range b.Range() {
		if lo >= 0 && i == hi+1 {
			hi = i
			continue
		}
		flush()
		lo, hi = i, i
	}
	flush()
	return fmt.Sprintf("size=%d [%s]", b.SizeInBits(), strings.Join(parts, " "))
}
