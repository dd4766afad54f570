package obj

import (
	"strings"
	"testing"

	"github.com/philipparndt/terrainpick/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteOBJ = `# site export
o site
v 0 0 0
v 10 0 1
v 10 10 2
v 0 10 1
g terrain
f 1 2 3 4
g dashed
v 0 0 3
v 5 5 3
v 10 0 3
l 5 6 7
g boundary
l 1/1 2/2
g dashed
l -3 -1
`

func TestParseGroupsAndRecords(t *testing.T) {
	model, err := ParseReader(strings.NewReader(siteOBJ))
	require.NoError(t, err)

	assert.Equal(t, "site", model.Name)
	require.Len(t, model.Groups, 3)

	terrain := model.Groups[0]
	assert.Equal(t, "terrain", terrain.Name)
	require.Len(t, terrain.Triangles, 2, "quad is split into a fan of two triangles")
	assert.Equal(t, geometry.NewVector3(0, 0, 0), terrain.Triangles[1].V1)
	assert.Equal(t, geometry.NewVector3(0, 10, 1), terrain.Triangles[1].V3)
	assert.Greater(t, terrain.Triangles[0].Normal.Z, 0.0)

	dashed := model.Groups[1]
	assert.Equal(t, "dashed", dashed.Name)
	require.Len(t, dashed.Polylines, 2, "reopened group keeps collecting")
	assert.Len(t, dashed.Polylines[0], 3)
	assert.Equal(t, []geometry.Vector3{
		geometry.NewVector3(0, 0, 3),
		geometry.NewVector3(10, 0, 3),
	}, dashed.Polylines[1])

	boundary := model.Groups[2]
	assert.Equal(t, "boundary", boundary.Name)
	require.Len(t, boundary.Polylines, 1)
	assert.Equal(t, geometry.NewVector3(10, 0, 1), boundary.Polylines[0][1])

	assert.Equal(t, 2, model.TriangleCount())
}

func TestParseDefaultGroup(t *testing.T) {
	model, err := ParseReader(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)

	require.Len(t, model.Groups, 1)
	assert.Equal(t, DefaultGroup, model.Groups[0].Name)
}

func TestParseDropsEmptyGroups(t *testing.T) {
	model, err := ParseReader(strings.NewReader("g empty\ng real\nv 0 0 0\nv 1 0 0\nl 1 2\n"))
	require.NoError(t, err)

	require.Len(t, model.Groups, 1)
	assert.Equal(t, "real", model.Groups[0].Name)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"bad reference", "v 0 0 0\nv 1 0 0\nl 1 x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
