package hittable

import (
	"math"
	"math/rand"

	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// triangleIndices is one face of a TriangleMesh: indices into the
// mesh's shared vertex/normal/uv arrays. normalIndices/uvIndices are
// only read when the mesh is not flat-shaded / carries UVs.
type triangleIndices struct {
	a, b, c          int
	na, nb, nc       int
	hasUV            bool
	uva, uvb, uvc    int
}

// TriangleMesh is an indexed triangle soup accelerated by an octree.
// Ground truth: the original source's object/mesh.rs (Möller–Trumbore
// intersection, barycentric normal interpolation) and
// object/mesh/octree.rs (the 8-way midpoint-split acceleration
// structure, ported into pkg/hittable/octree.go). The teacher's
// pkg/geometry/triangle_mesh.go does the equivalent job with a flat
// BVH over individual Triangle shapes; this mesh instead keeps the
// original's single shared-vertex-array design, which is the cheaper
// representation once FlatShading and UV interpolation both need to
// reach into the same per-vertex arrays.
type TriangleMesh struct {
	Vertices     []vmath.Vec4
	Normals      []vmath.Vec4
	UVs          []vmath.Vec4
	Material     material.Material
	FlatShading  bool

	// HitBackFaces chooses whether testTriangle is one- or two-sided,
	// per spec.md §4.3: the Möller–Trumbore determinant's sign
	// distinguishes front- from back-face, and a negative determinant
	// is rejected when this is false. Defaults to true (two-sided) in
	// NewTriangleMesh so existing two-sided callers keep working.
	HitBackFaces bool

	triangles []triangleIndices
	bbox      aabb.AABB
	octree    *octreeNode
}

// NewTriangleMesh builds a mesh from shared vertex/normal/uv arrays and
// a list of triangle index triples, and constructs its octree.
func NewTriangleMesh(vertices, normals, uvs []vmath.Vec4, triangles []triangleIndices, mat material.Material) *TriangleMesh {
	bbox := aabb.FromPoints(vertices...)
	m := &TriangleMesh{
		Vertices:     vertices,
		Normals:      normals,
		UVs:          uvs,
		Material:     mat,
		HitBackFaces: true,
		triangles:    triangles,
		bbox:         bbox,
	}
	m.octree = buildOctree(vertices, triangles, bbox)
	return m
}

// AddTriangle appends a face referencing vertex indices va/vb/vc and,
// unless the mesh is flat-shaded, normal indices na/nb/nc. Call
// BuildOctree once after all faces are added.
func (m *TriangleMesh) AddTriangle(va, vb, vc, na, nb, nc int) {
	m.triangles = append(m.triangles, triangleIndices{a: va, b: vb, c: vc, na: na, nb: nb, nc: nc})
}

// AddTriangleUV appends a face that also carries UV indices.
func (m *TriangleMesh) AddTriangleUV(va, vb, vc, na, nb, nc, uva, uvb, uvc int) {
	m.triangles = append(m.triangles, triangleIndices{
		a: va, b: vb, c: vc, na: na, nb: nb, nc: nc,
		hasUV: true, uva: uva, uvb: uvb, uvc: uvc,
	})
}

// BuildOctree (re)computes the mesh bounding box and octree from the
// current vertex/triangle arrays. Call after AddTriangle calls made
// outside NewTriangleMesh.
func (m *TriangleMesh) BuildOctree() {
	m.bbox = aabb.FromPoints(m.Vertices...)
	m.octree = buildOctree(m.Vertices, m.triangles, m.bbox)
}

func (m *TriangleMesh) BoundingBox() aabb.AABB {
	return m.bbox
}

// testTriangle is the Möller–Trumbore ray-triangle intersection test.
func (m *TriangleMesh) testTriangle(tri triangleIndices, ray vmath.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	v0, v1, v2 := m.Vertices[tri.a], m.Vertices[tri.b], m.Vertices[tri.c]

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	rayXEdge2 := ray.Direction.Cross(edge2)
	det := edge1.Dot(rayXEdge2)
	if math.Abs(det) < 1e-12 {
		return material.HitRecord{}, false
	}
	if !m.HitBackFaces && det < 0 {
		return material.HitRecord{}, false
	}
	invDet := 1.0 / det

	b := ray.Origin.Sub(v0)
	u := b.Dot(rayXEdge2) * invDet
	if u < 0 || u > 1 {
		return material.HitRecord{}, false
	}

	bXEdge1 := b.Cross(edge1)
	v := ray.Direction.Dot(bXEdge1) * invDet
	if v < 0 || u+v > 1 {
		return material.HitRecord{}, false
	}

	t := edge2.Dot(bXEdge1) * invDet
	if t <= tMin || tMax <= t {
		return material.HitRecord{}, false
	}

	var normal vmath.Vec4
	if m.FlatShading || len(m.Normals) == 0 {
		normal = edge1.Cross(edge2).Unit()
	} else {
		w := 1.0 - u - v
		n0, n1, n2 := m.Normals[tri.na], m.Normals[tri.nb], m.Normals[tri.nc]
		normal = n0.Scale(w).Add(n1.Scale(u)).Add(n2.Scale(v))
	}

	var hit material.HitRecord
	hit.Point = ray.At(t)
	hit.T = t
	if tri.hasUV && len(m.UVs) > 0 {
		w := 1.0 - u - v
		uv0, uv1, uv2 := m.UVs[tri.uva], m.UVs[tri.uvb], m.UVs[tri.uvc]
		uv := uv0.Scale(w).Add(uv1.Scale(u)).Add(uv2.Scale(v))
		hit.U, hit.V = uv.X, uv.Y
	} else {
		hit.U, hit.V = u, v
	}
	hit.SetFaceNormal(ray, normal)

	return hit, true
}

func (m *TriangleMesh) testOctreeNode(node *octreeNode, ray vmath.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	if !node.bbox.Hit(ray, tMin, tMax) {
		return material.HitRecord{}, false
	}

	var closest material.HitRecord
	found := false
	closestT := tMax

	if node.children == nil {
		for _, idx := range node.leaf {
			if hit, ok := m.testTriangle(m.triangles[idx], ray, tMin, closestT); ok {
				closest = hit
				closestT = hit.T
				found = true
			}
		}
		return closest, found
	}

	for _, child := range node.children {
		if hit, ok := m.testOctreeNode(child, ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
			found = true
		}
	}
	return closest, found
}

func (m *TriangleMesh) Hit(ray vmath.Ray, tMin, tMax float64, rng *rand.Rand) (material.HitRecord, material.Material, bool) {
	hit, ok := m.testOctreeNode(m.octree, ray, tMin, tMax)
	if !ok {
		return material.HitRecord{}, nil, false
	}
	return hit, m.Material, true
}
