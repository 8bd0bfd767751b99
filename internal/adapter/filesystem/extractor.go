package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	markerLink       = "Link"
	markerTitle      = "Title"
	markerDifficulty = "Difficulty"

	maxLineSize = 1024 * 1024
)

// Metadata is the header information found in one solution file.
// Fields stay empty when their marker line is absent.
type Metadata struct {
	Title      string
	Link       string
	Difficulty string
}

// ExtractFile opens path and scans it for metadata lines.
func ExtractFile(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	meta, err := ExtractMetadata(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("scan %s: %w", path, err)
	}
	return meta, nil
}

// ExtractMetadata scans lines for the Link, Title and Difficulty markers.
// The first marker found on a line wins; any Difficulty line ends the scan.
func ExtractMetadata(r io.Reader) (Metadata, error) {
	var meta Metadata

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.Contains(line, markerLink):
			if v, ok := valueAfterColon(line); ok {
				meta.Link = v
			}
		case strings.Contains(line, markerTitle):
			if v, ok := valueAfterColon(line); ok {
				meta.Title = v
			}
		case strings.Contains(line, markerDifficulty):
			if v, ok := valueAfterColon(line); ok {
				meta.Difficulty = v
			}
			return meta, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return meta, err
	}
	return meta, nil
}

// valueAfterColon returns the text after the first ":" with one separator character dropped.
func valueAfterColon(line string) (string, bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(line[idx+1:])
	return line[idx+1+size:], true
}
