package sceneio

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// LoadMeshGLTF loads every triangle primitive out of a glTF/GLB
// document's meshes into a single TriangleMesh, via
// github.com/qmuntal/gltf's Open/modeler helpers. This is a format the
// original source's loaders package never supported (it only ever
// read PLY and a hand-rolled OBJ) -- a pack-wide enrichment, since
// qmuntal/gltf ships in this module's go.mod without any component
// exercising it otherwise.
//
// All of a document's mesh nodes are flattened into one mesh with no
// per-node transform applied; a scene wanting per-instance placement
// should wrap the "mesh ..." declaration in a "transform" declaration.
func LoadMeshGLTF(path string, mat material.Material) (*hittable.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening glTF file %q", path)
	}

	var vertices, normals []vmath.Vec4
	var faces [][3]int
	hasNormals := true

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Indices == nil {
				continue
			}
			posAccessorIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessorIdx], nil)
			if err != nil {
				return nil, errors.Wrap(err, "reading glTF POSITION attribute")
			}

			var primNormals [][3]float32
			if normalAccessorIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				primNormals, err = modeler.ReadNormal(doc, doc.Accessors[normalAccessorIdx], nil)
				if err != nil {
					return nil, errors.Wrap(err, "reading glTF NORMAL attribute")
				}
			} else {
				hasNormals = false
			}

			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, errors.Wrap(err, "reading glTF indices")
			}

			base := len(vertices)
			for _, p := range positions {
				vertices = append(vertices, vmath.Point(float64(p[0]), float64(p[1]), float64(p[2])))
			}
			for _, n := range primNormals {
				normals = append(normals, vmath.Direction(float64(n[0]), float64(n[1]), float64(n[2])))
			}

			for i := 0; i+2 < len(indices); i += 3 {
				faces = append(faces, [3]int{
					base + int(indices[i]),
					base + int(indices[i+1]),
					base + int(indices[i+2]),
				})
			}
		}
	}

	if len(faces) == 0 {
		return nil, errors.Errorf("glTF file %q has no triangle primitives", path)
	}
	if !hasNormals {
		normals = nil
	}

	mesh := hittable.NewTriangleMesh(vertices, normals, nil, nil, mat)
	if normals == nil {
		mesh.FlatShading = true
	}
	for _, f := range faces {
		mesh.AddTriangle(f[0], f[1], f[2], f[0], f[1], f[2])
	}
	mesh.BuildOctree()
	return mesh, nil
}
