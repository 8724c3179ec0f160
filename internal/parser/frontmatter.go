package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter holds the fields marknote reads from a note's YAML header.
type FrontMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

var fenceLine = []byte("---")

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// body. Notes without a well formed block come back unchanged with ok false.
func SplitFrontMatter(source []byte) (fm FrontMatter, body []byte, ok bool) {
	if !bytes.HasPrefix(source, fenceLine) {
		return fm, source, false
	}

	rest := source[len(fenceLine):]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return fm, source, false
	}
	rest = rest[nl+1:]

	header := rest
	body = nil
	found := false
	for offset := 0; offset <= len(rest); {
		end := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		if end < 0 {
			line = rest[offset:]
		} else {
			line = rest[offset : offset+end]
		}
		if string(bytes.TrimRight(line, "\r \t")) == string(fenceLine) {
			header = rest[:offset]
			if end < 0 {
				body = nil
			} else {
				body = rest[offset+end+1:]
			}
			found = true
			break
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}
	if !found {
		return FrontMatter{}, source, false
	}

	if err := yaml.Unmarshal(header, &fm); err != nil {
		return FrontMatter{}, source, false
	}
	fm.Title = strings.TrimSpace(fm.Title)
	return fm, body, true
}
