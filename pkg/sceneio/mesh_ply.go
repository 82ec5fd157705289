package sceneio

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/kestrel-ray/pathtracer/pkg/hittable"
	"github.com/kestrel-ray/pathtracer/pkg/material"
	"github.com/kestrel-ray/pathtracer/pkg/vmath"
)

// plyProperty is one "property <type> <name>" (or "property list ...")
// header line.
type plyProperty struct {
	name     string
	dataType string
	isList   bool
	listType string
}

type plyHeader struct {
	format      string
	vertexCount int
	faceCount   int
	vertexProps []plyProperty
	faceProps   []plyProperty

	normalIndex [3]int
	hasNormals  bool
}

// LoadMeshPLY loads a binary-little-endian PLY mesh (the only format
// this loader supports, same limitation as the teacher's
// pkg/loaders/ply.go, which also rejects ascii/big-endian) and returns
// it as a TriangleMesh with mat attached to every face.
func LoadMeshPLY(path string, mat material.Material) (*hittable.TriangleMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening PLY file %q", path)
	}
	defer f.Close()

	header, err := parsePLYHeader(f)
	if err != nil {
		return nil, errors.Wrap(err, "parsing PLY header")
	}
	if header.format != "binary_little_endian" {
		return nil, errors.Errorf("PLY format %q not supported, only binary_little_endian", header.format)
	}

	vertices, normals, err := readPLYVertices(f, header)
	if err != nil {
		return nil, errors.Wrap(err, "reading PLY vertices")
	}
	faces, err := readPLYFaces(f, header)
	if err != nil {
		return nil, errors.Wrap(err, "reading PLY faces")
	}

	mesh := hittable.NewTriangleMesh(vertices, normals, nil, nil, mat)
	if !header.hasNormals {
		mesh.FlatShading = true
	}
	for _, face := range faces {
		mesh.AddTriangle(face[0], face[1], face[2], face[0], face[1], face[2])
	}
	mesh.BuildOctree()
	return mesh, nil
}

func parsePLYHeader(f *os.File) (*plyHeader, error) {
	header := &plyHeader{}
	scanner := bufio.NewScanner(f)

	var bytesRead int
	var currentElement string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bytesRead += len(scanner.Bytes()) + 1

		if line == "end_header" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "format":
			if len(fields) >= 2 {
				header.format = fields[1]
			}
		case "element":
			if len(fields) >= 3 {
				count, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, errors.Wrapf(err, "invalid element count %q", fields[2])
				}
				currentElement = fields[1]
				switch currentElement {
				case "vertex":
					header.vertexCount = count
				case "face":
					header.faceCount = count
				}
			}
		case "property":
			prop, err := parsePLYProperty(fields[1:])
			if err != nil {
				return nil, err
			}
			switch currentElement {
			case "vertex":
				header.vertexProps = append(header.vertexProps, prop)
				idx := len(header.vertexProps) - 1
				switch prop.name {
				case "nx":
					header.hasNormals = true
					header.normalIndex[0] = idx
				case "ny":
					header.hasNormals = true
					header.normalIndex[1] = idx
				case "nz":
					header.hasNormals = true
					header.normalIndex[2] = idx
				}
			case "face":
				header.faceProps = append(header.faceProps, prop)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if _, err := f.Seek(int64(bytesRead), io.SeekStart); err != nil {
		return nil, err
	}
	return header, nil
}

func parsePLYProperty(fields []string) (plyProperty, error) {
	if len(fields) < 2 {
		return plyProperty{}, errors.New("invalid property definition")
	}
	if fields[0] == "list" {
		if len(fields) < 4 {
			return plyProperty{}, errors.New("invalid list property definition")
		}
		return plyProperty{isList: true, listType: fields[1], dataType: fields[2], name: fields[3]}, nil
	}
	return plyProperty{dataType: fields[0], name: fields[1]}, nil
}

func plyTypeSize(t string) int {
	switch t {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 4
	}
}

func readPLYVertices(r io.Reader, header *plyHeader) ([]vmath.Vec4, []vmath.Vec4, error) {
	vertexSize := 0
	for _, p := range header.vertexProps {
		vertexSize += plyTypeSize(p.dataType)
	}

	buf := make([]byte, vertexSize)
	vertices := make([]vmath.Vec4, 0, header.vertexCount)
	var normals []vmath.Vec4
	if header.hasNormals {
		normals = make([]vmath.Vec4, 0, header.vertexCount)
	}

	xIdx, yIdx, zIdx := -1, -1, -1
	for i, p := range header.vertexProps {
		switch p.name {
		case "x":
			xIdx = i
		case "y":
			yIdx = i
		case "z":
			zIdx = i
		}
	}

	for i := 0; i < header.vertexCount; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, nil, errors.Wrapf(err, "reading vertex %d", i)
		}
		values := decodePLYFields(buf, header.vertexProps)
		vertices = append(vertices, vmath.Point(values[xIdx], values[yIdx], values[zIdx]))
		if header.hasNormals {
			normals = append(normals, vmath.Direction(
				values[header.normalIndex[0]],
				values[header.normalIndex[1]],
				values[header.normalIndex[2]],
			))
		}
	}
	return vertices, normals, nil
}

// decodePLYFields decodes one record's worth of fixed-size properties
// into float64s, in property order; list properties are not handled
// here (only vertex records reach this function, and no renderer-side
// vertex property is a list).
func decodePLYFields(buf []byte, props []plyProperty) []float64 {
	values := make([]float64, len(props))
	offset := 0
	for i, p := range props {
		size := plyTypeSize(p.dataType)
		if offset+size > len(buf) {
			break
		}
		values[i] = decodePLYScalar(buf[offset:offset+size], p.dataType)
		offset += size
	}
	return values
}

func decodePLYScalar(b []byte, dataType string) float64 {
	switch dataType {
	case "float", "float32":
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case "double", "float64":
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	case "int", "int32":
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case "uint", "uint32":
		return float64(binary.LittleEndian.Uint32(b))
	case "short", "int16":
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case "ushort", "uint16":
		return float64(binary.LittleEndian.Uint16(b))
	case "char", "int8":
		return float64(int8(b[0]))
	case "uchar", "uint8":
		return float64(b[0])
	default:
		return 0
	}
}

func readPLYFaces(r io.Reader, header *plyHeader) ([][3]int, error) {
	bufReader := bufio.NewReaderSize(r, 1<<20)
	faces := make([][3]int, 0, header.faceCount)

	for i := 0; i < header.faceCount; i++ {
		for _, prop := range header.faceProps {
			if prop.isList && prop.name == "vertex_indices" {
				count, err := readPLYListCount(bufReader, prop.listType)
				if err != nil {
					return nil, errors.Wrapf(err, "reading face %d vertex count", i)
				}
				if count != 3 {
					return nil, errors.Errorf("only triangular faces supported, face %d has %d vertices", i, count)
				}
				var idx [3]int
				for j := 0; j < 3; j++ {
					v, err := readPLYListElement(bufReader, prop.dataType)
					if err != nil {
						return nil, errors.Wrapf(err, "reading face %d index %d", i, j)
					}
					idx[j] = v
				}
				faces = append(faces, idx)
			} else if err := skipPLYProperty(bufReader, prop); err != nil {
				return nil, errors.Wrapf(err, "skipping face %d property %q", i, prop.name)
			}
		}
	}
	return faces, nil
}

func readPLYListCount(r io.Reader, listType string) (int, error) {
	switch listType {
	case "uchar", "uint8":
		var c uint8
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return 0, err
		}
		return int(c), nil
	case "int", "int32":
		var c int32
		if err := binary.Read(r, binary.LittleEndian, &c); err != nil {
			return 0, err
		}
		return int(c), nil
	default:
		return 0, errors.Errorf("unsupported list count type %q", listType)
	}
}

func readPLYListElement(r io.Reader, dataType string) (int, error) {
	switch dataType {
	case "int", "int32":
		var v int32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return int(v), nil
	case "uint", "uint32":
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return int(v), nil
	default:
		return 0, errors.Errorf("unsupported face index type %q", dataType)
	}
}

func skipPLYProperty(r io.Reader, prop plyProperty) error {
	if !prop.isList {
		_, err := io.CopyN(io.Discard, r, int64(plyTypeSize(prop.dataType)))
		return err
	}
	count, err := readPLYListCount(r, prop.listType)
	if err != nil {
		return err
	}
	_, err = io.CopyN(io.Discard, r, int64(count*plyTypeSize(prop.dataType)))
	return err
}
