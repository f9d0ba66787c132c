package estree

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// File is a decoded AST envelope: one source file plus its syntax tree.
type File struct {
	// Path is the path of the original source file, as recorded by the
	// parser that produced the envelope.
	Path string

	// Source is the raw source text the tree was parsed from.
	Source []byte

	// Program is the root of the syntax tree.
	Program *Node

	index *lineIndex
}

type envelope struct {
	Path   string `json:"path"`
	Source string `json:"source"`
	AST    *Node  `json:"ast"`
}

// Decode parses an AST envelope.
func Decode(data []byte) (*File, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding AST envelope: %w", err)
	}
	if env.AST == nil {
		return nil, errors.New(`AST envelope has no "ast" field`)
	}
	if env.AST.Type != TypeProgram {
		return nil, fmt.Errorf("envelope root node is %s, want %s", env.AST.Type, TypeProgram)
	}

	source := []byte(env.Source)
	return &File{
		Path:    env.Path,
		Source:  source,
		Program: env.AST,
		index:   newLineIndex(source),
	}, nil
}

// DecodeFile reads and decodes an AST envelope from disk. When the
// envelope does not record a source path, the envelope's own path is used
// so findings always point somewhere.
func DecodeFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading AST file: %w", err)
	}

	file, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if file.Path == "" {
		file.Path = path
	}
	return file, nil
}

// PositionFor converts a byte offset in the source to a 1-based position.
func (f *File) PositionFor(offset int) Position {
	return f.index.position(offset)
}
