package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/tumble/pkg/math3d"
)

// maxOBJLine is the longest line the decoder keeps. Longer lines are
// skipped without being buffered.
const maxOBJLine = 256 << 10

var (
	errUnknownRecord = errors.New("unknown record")
	errLineTooLong   = errors.New("line too long")
	errNotFinite     = errors.New("coordinate is not finite")
)

// OBJLoader decodes the vertex and face records of Wavefront OBJ text.
// Any line it cannot use is skipped; decoding never fails on content.
type OBJLoader struct {
	// OnSkip, if set, is called for every skipped non-blank line.
	// line is 1-based.
	OnSkip func(line int, text string, err error)
}

// LoadOBJ loads an OBJ file from disk.
func LoadOBJ(path string) (*Mesh, error) {
	return (&OBJLoader{}).Load(path)
}

// Load decodes the OBJ file at path. The mesh is named after the file.
func (l *OBJLoader) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := l.Decode(filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return mesh, nil
}

// DecodeOBJ decodes OBJ text with default options.
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	return (&OBJLoader{}).Decode("obj", r)
}

// objFace remembers where a face came from so out-of-range faces can be
// reported against their source line.
type objFace struct {
	line    int
	text    string
	indices []int
}

// Decode reads "v x y z" and "f i j k ..." records from r. Face indices are
// 1-based in the text and 0-based in the result. Only read errors are returned.
func (l *OBJLoader) Decode(name string, r io.Reader) (*Mesh, error) {
	var (
		vertices []math3d.Vec3
		pending  []objFace
	)

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read obj: %w", err)
		}
		lineNo++
		if tooLong {
			l.skip(lineNo, "", fmt.Errorf("%w: over %d bytes", errLineTooLong, maxOBJLine))
			continue
		}

		text := strings.TrimSpace(string(raw))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				l.skip(lineNo, text, err)
				continue
			}
			vertices = append(vertices, v)
		case "f":
			indices, err := parseFace(fields[1:])
			if err != nil {
				l.skip(lineNo, text, err)
				continue
			}
			pending = append(pending, objFace{line: lineNo, text: text, indices: indices})
		default:
			l.skip(lineNo, text, fmt.Errorf("%w %q", errUnknownRecord, fields[0]))
		}
	}

	faces := make([]Face, 0, len(pending))
	for _, pf := range pending {
		if err := checkIndices(pf.indices, len(vertices)); err != nil {
			l.skip(pf.line, pf.text, err)
			continue
		}
		faces = append(faces, Face{Indices: pf.indices})
	}

	return NewMesh(name, vertices, faces)
}

func (l *OBJLoader) skip(line int, text string, err error) {
	if l.OnSkip != nil {
		l.OnSkip(line, text, err)
	}
}

// readLine returns the next line without its line ending. Lines longer than
// maxOBJLine are consumed and reported as tooLong with no content.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(line) > 0 || tooLong) {
				return line, tooLong, nil
			}
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxOBJLine {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %d: %w", i, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return math3d.Vec3{}, fmt.Errorf("vertex coordinate %d: %w", i, errNotFinite)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

// parseFace converts 1-based face tokens to 0-based indices. Tokens of the
// form "i/t/n" or "i//n" contribute their leading vertex index.
func parseFace(fields []string) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateFace, len(fields))
	}
	indices := make([]int, len(fields))
	for i, tok := range fields {
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			tok = tok[:slash]
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("face index %d: %w", i, err)
		}
		indices[i] = n - 1
	}
	return indices, nil
}

func checkIndices(indices []int, vertexCount int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= vertexCount {
			return fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, idx+1, vertexCount)
		}
	}
	return nil
}
