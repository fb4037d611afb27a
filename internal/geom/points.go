package geom

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadPoints reads a profile point file in Selig format: an optional name
// line followed by one "x z" pair per line, in order around the perimeter.
// Blank lines and lines starting with '#' are ignored.
func LoadPoints(filepath string) (name string, x, z []float64, err error) {
	f, err := os.Open(filepath)
	if err != nil {
		return "", nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		xi, errX := strconv.ParseFloat(fields[0], 64)
		var zi float64
		var errZ error
		if len(fields) >= 2 {
			zi, errZ = strconv.ParseFloat(fields[1], 64)
		}
		if len(fields) < 2 || errX != nil || errZ != nil {
			if len(x) == 0 && name == "" {
				name = text
				continue
			}
			return "", nil, nil, &ValidationError{msg: fmt.Sprintf("%s:%d: expected \"x z\", got %q", filepath, line, text)}
		}
		x = append(x, xi)
		z = append(z, zi)
	}
	if err := scanner.Err(); err != nil {
		return "", nil, nil, err
	}
	return name, x, z, nil
}
