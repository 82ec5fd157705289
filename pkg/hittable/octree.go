package hittable

import (
	"github.com/kestrel-ray/pathtracer/pkg/aabb"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// maxTrisPerLeaf and maxOctreeDepth bound the octree's recursive
// midpoint split. Ground truth: the original source's
// object/mesh/octree.rs.
const (
	maxTrisPerLeaf = 50
	maxOctreeDepth = 50
)

// octreeNode is one node of the mesh acceleration structure: either a
// leaf holding triangle indices, or a branch of exactly 8 children
// split at the node's bounding-box midpoint. A triangle whose bounds
// straddle the midpoint on some axis is pushed into every child octant
// its bounds overlap, so the same triangle index can appear in more
// than one leaf.
type octreeNode struct {
	bbox     aabb.AABB
	leaf     []int
	children *[8]*octreeNode
}

// buildOctree constructs the octree for a mesh's triangles, given the
// mesh's full vertex list (already in whatever space the mesh tests
// rays in) and the overall mesh bounding box.
func buildOctree(vertices []vmath.Vec4, triangles []triangleIndices, bounds aabb.AABB) *octreeNode {
	indices := make([]int, len(triangles))
	for i := range triangles {
		indices[i] = i
	}
	return buildOctreeNode(vertices, triangles, indices, bounds, 0)
}

func buildOctreeNode(vertices []vmath.Vec4, triangles []triangleIndices, indices []int, bounds aabb.AABB, depth int) *octreeNode {
	if len(indices) <= maxTrisPerLeaf || depth >= maxOctreeDepth {
		return &octreeNode{bbox: bounds, leaf: indices}
	}

	mid := bounds.Center()
	childLists := [8][]int{}

	for _, idx := range indices {
		tri := triangles[idx]
		triBounds := aabb.FromPoints(vertices[tri.a], vertices[tri.b], vertices[tri.c])

		in := [8]bool{true, true, true, true, true, true, true, true}
		if triBounds.Min.X > mid.X {
			in[0], in[1], in[2], in[3] = false, false, false, false
		}
		if triBounds.Max.X < mid.X {
			in[4], in[5], in[6], in[7] = false, false, false, false
		}
		if triBounds.Min.Y > mid.Y {
			in[0], in[1], in[4], in[5] = false, false, false, false
		}
		if triBounds.Max.Y < mid.Y {
			in[2], in[3], in[6], in[7] = false, false, false, false
		}
		if triBounds.Min.Z > mid.Z {
			in[0], in[2], in[4], in[6] = false, false, false, false
		}
		if triBounds.Max.Z < mid.Z {
			in[1], in[3], in[5], in[7] = false, false, false, false
		}

		for i := 0; i < 8; i++ {
			if in[i] {
				childLists[i] = append(childLists[i], idx)
			}
		}
	}

	minX, minY, minZ := bounds.Min.X, bounds.Min.Y, bounds.Min.Z
	maxX, maxY, maxZ := bounds.Max.X, bounds.Max.Y, bounds.Max.Z
	midX, midY, midZ := mid.X, mid.Y, mid.Z

	childBounds := [8]aabb.AABB{
		aabb.New(vmath.Point(minX, minY, minZ), vmath.Point(midX, midY, midZ)),
		aabb.New(vmath.Point(minX, minY, midZ), vmath.Point(midX, midY, maxZ)),
		aabb.New(vmath.Point(minX, midY, minZ), vmath.Point(midX, maxY, midZ)),
		aabb.New(vmath.Point(minX, midY, midZ), vmath.Point(midX, maxY, maxZ)),
		aabb.New(vmath.Point(midX, minY, minZ), vmath.Point(maxX, midY, midZ)),
		aabb.New(vmath.Point(midX, minY, midZ), vmath.Point(maxX, midY, maxZ)),
		aabb.New(vmath.Point(midX, midY, minZ), vmath.Point(maxX, maxY, midZ)),
		aabb.New(vmath.Point(midX, midY, midZ), vmath.Point(maxX, maxY, maxZ)),
	}

	var children [8]*octreeNode
	for i := 0; i < 8; i++ {
		children[i] = buildOctreeNode(vertices, triangles, childLists[i], childBounds[i], depth+1)
	}

	return &octreeNode{bbox: bounds, children: &children}
}
