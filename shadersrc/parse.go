// Package shadersrc splits a single GLSL text into per-stage sources
// using #shader pragmas, so a producer assembling CREATE_SHADER steps
// can keep vertex and fragment source in one file.
package shadersrc

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Sources holds the per-stage text extracted from one combined file.
// Vertex and Fragment are plain (not null-terminated) source strings;
// CreateShaderStep and the binding layer own null-termination.
type Sources struct {
	Vertex   string
	Fragment string
	Include  string
}

// Parse splits r on #shader pragma lines (vertex / fragment / pixel /
// includeashead), inspired by The Cherno's shader-file segmenting: text
// above the first pragma is ignored, and text under includeashead is
// prepended to both other stages.
//
//	// ignored
//	#shader vertex
//	void main() { ... }
//
//	#shader fragment
//	void main() { ... }
func Parse(r io.Reader) (Sources, error) {
	const (
		none = iota
		vertex
		fragment
		header
		numKinds
	)
	nothing := bytes.NewBuffer(nil)
	vertexBuf := bytes.NewBuffer(nil)
	fragBuf := bytes.NewBuffer(nil)
	includeBuf := bytes.NewBuffer(nil)
	buffers := [numKinds]*bytes.Buffer{
		none:     nothing,
		vertex:   vertexBuf,
		fragment: fragBuf,
		header:   includeBuf,
	}

	scanner := bufio.NewScanner(r)
	current := none
	for scanner.Scan() {
		line := scanner.Bytes()
		if current != none && !bytes.HasPrefix(bytes.TrimSpace(line), []byte("#shader ")) {
			buffers[current].Write(line)
			buffers[current].WriteByte('\n')
			continue
		}
		fields := bytes.Fields(line)
		if len(fields) != 2 || string(fields[0]) != "#shader" {
			continue
		}
		switch string(fields[1]) {
		case "includeashead":
			current = header
		case "vertex":
			current = vertex
		case "fragment", "pixel":
			current = fragment
		default:
			return Sources{}, errors.New("shadersrc: unexpected #shader pragma value: " + string(fields[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		return Sources{}, err
	}

	include := includeBuf.String()
	var out Sources
	out.Include = include
	if vertexBuf.Len() > 0 {
		out.Vertex = include + vertexBuf.String()
	}
	if fragBuf.Len() > 0 {
		out.Fragment = include + fragBuf.String()
	}
	return out, nil
}
