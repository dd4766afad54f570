// Package obj reads Wavefront OBJ files with faces and polylines.
//
// Groups ("g") and objects ("o") both open a new group; the group name is used
// as the layer name by callers. Texture, normal and material records are
// ignored.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/terrainpick/pkg/geometry"
)

// DefaultGroup names geometry that appears before any "g" or "o" record
const DefaultGroup = "default"

// ErrMalformed is returned for records that cannot be parsed
var ErrMalformed = errors.New("malformed obj record")

// Group is a named set of faces and polylines
type Group struct {
	Name      string
	Triangles []geometry.Triangle
	Polylines [][]geometry.Vector3
}

// Model is the parsed content of an OBJ file
type Model struct {
	Name   string
	Groups []*Group
}

// Parse reads an OBJ file from disk
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader reads OBJ content from r
func ParseReader(r io.Reader) (*Model, error) {
	p := &parser{
		model:  &Model{},
		groups: make(map[string]*Group),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.lineNo++
		if err := p.parseLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	// Drop groups that were opened but never received geometry
	groups := p.model.Groups[:0]
	for _, g := range p.model.Groups {
		if len(g.Triangles) > 0 || len(g.Polylines) > 0 {
			groups = append(groups, g)
		}
	}
	p.model.Groups = groups

	return p.model, nil
}

// TriangleCount returns the number of triangles across all groups
func (m *Model) TriangleCount() int {
	count := 0
	for _, g := range m.Groups {
		count += len(g.Triangles)
	}
	return count
}

type parser struct {
	model    *Model
	vertices []geometry.Vector3
	groups   map[string]*Group
	current  *Group
	lineNo   int
}

func (p *parser) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		if len(fields) < 4 {
			return p.errorf("vertex needs 3 coordinates")
		}
		var coords [3]float64
		for i := 0; i < 3; i++ {
			value, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return p.errorf("invalid coordinate %q", fields[i+1])
			}
			coords[i] = value
		}
		p.vertices = append(p.vertices, geometry.NewVector3(coords[0], coords[1], coords[2]))

	case "o":
		if p.model.Name == "" && len(fields) > 1 {
			p.model.Name = strings.Join(fields[1:], " ")
		}
		p.openGroup(fields[1:])

	case "g":
		p.openGroup(fields[1:])

	case "f":
		if len(fields) < 4 {
			return p.errorf("face needs at least 3 vertices")
		}
		corners, err := p.resolve(fields[1:])
		if err != nil {
			return err
		}
		group := p.group()
		// Fan triangulation around the first corner
		for i := 1; i+1 < len(corners); i++ {
			tri := geometry.Triangle{V1: corners[0], V2: corners[i], V3: corners[i+1]}
			tri.Normal = tri.CalculateNormal()
			group.Triangles = append(group.Triangles, tri)
		}

	case "l":
		if len(fields) < 3 {
			return p.errorf("line needs at least 2 vertices")
		}
		points, err := p.resolve(fields[1:])
		if err != nil {
			return err
		}
		group := p.group()
		group.Polylines = append(group.Polylines, points)
	}

	return nil
}

// openGroup switches to the named group, reusing it if seen before
func (p *parser) openGroup(names []string) {
	name := DefaultGroup
	if len(names) > 0 {
		name = strings.Join(names, " ")
	}
	if g, ok := p.groups[name]; ok {
		p.current = g
		return
	}
	g := &Group{Name: name}
	p.groups[name] = g
	p.model.Groups = append(p.model.Groups, g)
	p.current = g
}

func (p *parser) group() *Group {
	if p.current == nil {
		p.openGroup(nil)
	}
	return p.current
}

// resolve converts "v", "v/vt", "v//vn" or "v/vt/vn" references to positions.
// Negative indices count back from the last vertex read.
func (p *parser) resolve(refs []string) ([]geometry.Vector3, error) {
	points := make([]geometry.Vector3, 0, len(refs))
	for _, ref := range refs {
		if i := strings.IndexByte(ref, '/'); i >= 0 {
			ref = ref[:i]
		}
		index, err := strconv.Atoi(ref)
		if err != nil {
			return nil, p.errorf("invalid vertex reference %q", ref)
		}
		if index < 0 {
			index = len(p.vertices) + index + 1
		}
		if index < 1 || index > len(p.vertices) {
			return nil, p.errorf("vertex reference %d out of range", index)
		}
		points = append(points, p.vertices[index-1])
	}
	return points, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", p.lineNo, fmt.Sprintf(format, args...), ErrMalformed)
}
