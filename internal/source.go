package internal

import (
	"os"
	"strings"
)

// SourceCode represents a source file as a collection of lines, used by
// the formatter to quote snippets.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a SourceCode.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return SourceFromBytes(content), nil
}

// SourceFromBytes splits raw source into lines.
func SourceFromBytes(content []byte) *SourceCode {
	return &SourceCode{Lines: strings.Split(string(content), "\n")}
}
