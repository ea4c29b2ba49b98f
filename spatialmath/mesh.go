package spatialmath

import (
	"github.com/golang/geo/r3"
)

// Triangle is a triangle in the space of the mesh that owns it.
type Triangle struct {
	p0 r3.Vector
	p1 r3.Vector
	p2 r3.Vector

	normal r3.Vector
}

// NewTriangle creates a Triangle from three points. The normal is computed
// from the winding order.
func NewTriangle(p0, p1, p2 r3.Vector) *Triangle {
	return &Triangle{
		p0:     p0,
		p1:     p1,
		p2:     p2,
		normal: PlaneNormal(p0, p1, p2),
	}
}

// Points returns the three points of the triangle.
func (t *Triangle) Points() []r3.Vector {
	return []r3.Vector{t.p0, t.p1, t.p2}
}

// Normal returns the triangle's normal vector.
func (t *Triangle) Normal() r3.Vector {
	return t.normal
}

// PlaneNormal returns the unit normal of the plane through the three given points.
func PlaneNormal(p0, p1, p2 r3.Vector) r3.Vector {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}

// Mesh represents a set of triangles, e.g. the visual geometry of a tool.
// Triangle points are in the frame of the mesh.
type Mesh struct {
	pose      Pose
	triangles []*Triangle
}

// NewMesh creates a mesh from a pose and a set of triangles expressed in the
// space of that pose.
func NewMesh(pose Pose, triangles []*Triangle) *Mesh {
	return &Mesh{
		pose:      pose,
		triangles: triangles,
	}
}

// Pose returns the pose of the mesh.
func (m *Mesh) Pose() Pose {
	return m.pose
}

// Triangles returns the triangles of the mesh.
func (m *Mesh) Triangles() []*Triangle {
	return m.triangles
}

// Transform returns a new mesh whose pose has been premultiplied by the given
// pose. Triangle points are in the frame of the mesh and need no transforming.
func (m *Mesh) Transform(pose Pose) *Mesh {
	return &Mesh{
		pose:      Compose(pose, m.pose),
		triangles: m.triangles,
	}
}
