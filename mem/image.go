package mem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadImage parses a memory initialization image.
//
// The image holds one word per line written in hexadecimal, with or without
// a 0x prefix. Blank lines are skipped and everything after a '#' is a
// comment. Words wider than width bits are rejected.
func ReadImage(r io.Reader, width uint32) ([]uint32, error) {
	if !validWidth(width) {
		return nil, fmt.Errorf("unsupported data width %d", width)
	}

	mask := widthMask(width)
	image := make([]uint32, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")

		word, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		if uint32(word)&^mask != 0 {
			return nil, fmt.Errorf("line %d: word 0x%X wider than %d bits",
				lineNo, word, width)
		}

		image = append(image, uint32(word))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return image, nil
}

// LoadImageFile reads an image from a file.
func LoadImageFile(path string, width uint32) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	image, err := ReadImage(f, width)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return image, nil
}
