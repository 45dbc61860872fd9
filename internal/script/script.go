// Package script reads and writes turn scripts:
//
//	GAME-START
//	R:S
//	B:E
//	GAME-END
//
// Each line between the markers moves one knight one cell.
package script

import (
	"bytes"
	"fmt"
	"io"
	"knights-battle/internal/component"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	startMarker = "GAME-START"
	endMarker   = "GAME-END"
)

var frame = regexp.MustCompile(`^` + startMarker + `\n([\s\S]*)\n` + endMarker + `$`)

// Instruction moves one knight one cell.
type Instruction struct {
	Actor     component.Actor
	Direction component.Direction
}

func (in Instruction) String() string {
	return in.Actor.String() + ":" + in.Direction.String()
}

// Read consumes r and parses it as a turn script.
func Read(r io.Reader) ([]Instruction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read turn script: %w", err)
	}
	return Decode(data)
}

// Decode parses raw file bytes, rejecting binary input with ErrFormat.
// Windows line endings and a single trailing line break after GAME-END are
// tolerated.
func Decode(data []byte) ([]Instruction, error) {
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return nil, ErrFormat
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return Parse(strings.TrimSuffix(text, "\n"))
}

// Parse turns script text into instructions in file order. A script with an
// empty body yields no instructions.
func Parse(text string) ([]Instruction, error) {
	m := frame.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: missing %s/%s frame", ErrSyntax, startMarker, endMarker)
	}
	body := m[1]
	if body == "" {
		return []Instruction{}, nil
	}

	lines := strings.Split(body, "\n")
	turns := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		in, err := parseLine(line)
		if err != nil {
			// +2: one for the start marker, one for 1-based numbering.
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		turns = append(turns, in)
	}
	return turns, nil
}

func parseLine(line string) (Instruction, error) {
	tokens := strings.Split(line, ":")
	if len(tokens) != 2 {
		return Instruction{}, fmt.Errorf("%w: %q is not <knight>:<direction>", ErrSyntax, line)
	}
	actor, ok := component.ParseActor(tokens[0])
	if !ok {
		return Instruction{}, fmt.Errorf("%w: unknown knight %q", ErrSyntax, tokens[0])
	}
	dir, ok := component.ParseDirection(tokens[1])
	if !ok {
		return Instruction{}, fmt.Errorf("%w: unknown direction %q", ErrSyntax, tokens[1])
	}
	return Instruction{Actor: actor, Direction: dir}, nil
}

// Format writes turns back out as a complete script that Parse accepts.
func Format(turns []Instruction) string {
	var sb strings.Builder
	sb.WriteString(startMarker)
	sb.WriteByte('\n')
	for _, in := range turns {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}
	if len(turns) == 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(endMarker)
	return sb.String()
}
