package geometry

import "math"

// Icosahedron returns the 20 faces of a regular icosahedron centered on the
// origin with the given circumradius. Normals point outward.
func Icosahedron(radius float64) []Triangle {
	phi := (1 + math.Sqrt(5)) / 2

	raw := []Vector3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	vertices := make([]Vector3, len(raw))
	for i, v := range raw {
		vertices[i] = v.Normalize().Mul(radius)
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	triangles := make([]Triangle, 0, len(faces))
	for _, f := range faces {
		tri := Triangle{V1: vertices[f[0]], V2: vertices[f[1]], V3: vertices[f[2]]}
		tri.Normal = tri.CalculateNormal()
		triangles = append(triangles, tri)
	}
	return triangles
}
