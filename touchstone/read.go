package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rf/rf/network"
)

// valuesPerRow is one frequency plus four complex pairs for a 2-port.
const valuesPerRow = 9

// ReadFile reads a two-port touchstone file from disk.
func ReadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touchstone: %w", err)
	}
	defer f.Close()

	n, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return n, nil
}

// Read parses a two-port touchstone network from r.
func Read(r io.Reader) (*network.Network, error) {
	opts := defaultOptions()
	optionSeen := false

	var values []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++

		text := scanner.Text()
		if i := strings.IndexByte(text, '!'); i >= 0 {
			text = text[:i]
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "#") {
			if optionSeen {
				return nil, parseErr(line, "multiple option lines")
			}

			optionSeen = true

			parsed, err := parseOptionLine(text, line)
			if err != nil {
				return nil, err
			}

			opts = parsed

			continue
		}

		if !optionSeen {
			return nil, parseErr(line, "data before the option line")
		}

		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, parseErr(line, "invalid number %q", field)
			}

			values = append(values, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("touchstone: %w", err)
	}

	if len(values) == 0 {
		return nil, parseErr(line, "no network data")
	}

	if len(values)%valuesPerRow != 0 {
		return nil, parseErr(line,
			"%d data values do not form 2-port rows of %d (noise parameter data is not supported)",
			len(values), valuesPerRow)
	}

	return buildNetwork(values, opts)
}

func parseOptionLine(text string, line int) (options, error) {
	opts := defaultOptions()

	fields := strings.Fields(strings.TrimPrefix(text, "#"))
	for i := 0; i < len(fields); i++ {
		switch tok := strings.ToUpper(fields[i]); tok {
		case "HZ":
			opts.unitScale = 1
		case "KHZ":
			opts.unitScale = 1e3
		case "MHZ":
			opts.unitScale = 1e6
		case "GHZ":
			opts.unitScale = 1e9
		case "S", "Z":
			opts.param = tok
		case "Y", "G", "H":
			return options{}, parseErr(line, "unsupported parameter type %q", tok)
		case "RI", "MA", "DB":
			opts.format = tok
		case "R":
			if i+1 >= len(fields) {
				return options{}, parseErr(line, "option R without an impedance value")
			}

			i++

			z0, err := strconv.ParseFloat(fields[i], 64)
			if err != nil || z0 <= 0 {
				return options{}, parseErr(line, "invalid reference impedance %q", fields[i])
			}

			opts.z0 = z0
		default:
			return options{}, parseErr(line, "unknown option %q", fields[i])
		}
	}

	return opts, nil
}

func buildNetwork(values []float64, opts options) (*network.Network, error) {
	rows := len(values) / valuesPerRow

	freqs := make([]float64, rows)
	m := make([]network.Matrix, rows)

	for i := range rows {
		row := values[i*valuesPerRow : (i+1)*valuesPerRow]
		freqs[i] = row[0] * opts.unitScale

		s11 := complexValue(row[1], row[2], opts.format)
		s21 := complexValue(row[3], row[4], opts.format)
		s12 := complexValue(row[5], row[6], opts.format)
		s22 := complexValue(row[7], row[8], opts.format)

		// Touchstone stores 2-port data in S11 S21 S12 S22 order.
		m[i] = network.Matrix{{s11, s12}, {s21, s22}}
	}

	if opts.param == "Z" {
		// Z data is normalized to the reference impedance.
		scale := complex(opts.z0, 0)
		for i := range m {
			for r := range 2 {
				for c := range 2 {
					m[i][r][c] *= scale
				}
			}
		}

		return network.FromImpedance(freqs, m, opts.z0)
	}

	return network.New(freqs, m, opts.z0)
}

func complexValue(a, b float64, format string) complex128 {
	switch format {
	case "RI":
		return complex(a, b)
	case "DB":
		return cmplx.Rect(math.Pow(10, a/20), b*math.Pi/180)
	default: // MA
		return cmplx.Rect(a, b*math.Pi/180)
	}
}
