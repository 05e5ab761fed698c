// Package stl serializes a mesh buffer to binary STL, the flat
// triangle-soup format slicers consume: an 80-byte header, a uint32
// triangle count, then one 50-byte record per triangle holding a facet
// normal, three vertex positions as little-endian float32, and a
// 16-bit attribute word.
package stl

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/chazu/lumen/pkg/mesh"
)

// short name, for convenience
var le = binary.LittleEndian

// recordSize is the fixed on-disk size of one triangle record.
const recordSize = 50

// Triangle is one decoded STL record.
type Triangle struct {
	Normal [3]float32
	Vertex [3][3]float32
	Attr   uint16
}

// Encode writes the buffer as binary STL. The indexed representation is
// resolved and flattened here: every triangle record carries explicit
// vertex positions, and the facet normal is computed from the winding
// (zero for degenerate triangles).
func Encode(w io.Writer, header string, buf *mesh.Buffer) error {
	bw := bufio.NewWriter(w)

	var hdr [80]byte
	copy(hdr[:], header)
	if _, err := bw.Write(hdr[:]); err != nil {
		return errors.Wrap(err, "stl: writing header")
	}
	if err := binary.Write(bw, le, uint32(buf.TriangleCount())); err != nil {
		return errors.Wrap(err, "stl: writing triangle count")
	}

	var rec [recordSize]byte
	for _, t := range buf.Triangles() {
		n := buf.FacetNormal(t)
		p0, p1, p2 := buf.Corners(t)

		putVec(rec[0:], n)
		putVec(rec[12:], p0)
		putVec(rec[24:], p1)
		putVec(rec[36:], p2)
		le.PutUint16(rec[48:], 0)

		if _, err := bw.Write(rec[:]); err != nil {
			return errors.Wrap(err, "stl: writing triangle record")
		}
	}

	return errors.Wrap(bw.Flush(), "stl: flushing output")
}

// putVec packs a vector as three little-endian float32 values.
func putVec(dst []byte, v mesh.Vec3) {
	le.PutUint32(dst[0:], math.Float32bits(float32(v.X)))
	le.PutUint32(dst[4:], math.Float32bits(float32(v.Y)))
	le.PutUint32(dst[8:], math.Float32bits(float32(v.Z)))
}

// WriteFile serializes the buffer to path, creating the parent
// directory if needed. The write is all-or-nothing: output goes to a
// temporary file in the destination directory and is renamed into place
// only after a successful flush and sync, so a failure never leaves a
// partial file behind.
func WriteFile(path, header string, buf *mesh.Buffer) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "stl: creating output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrap(err, "stl: creating temporary file")
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Encode(tmp, header, buf); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "stl: syncing output")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "stl: closing output")
	}

	name := tmp.Name()
	tmp = nil
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return errors.Wrapf(err, "stl: renaming %s into place", name)
	}
	return nil
}

// Decode reads a binary STL stream. Used by the inspector and by tests
// to verify round trips; the writer never goes through this path.
func Decode(r io.Reader) (header string, tris []Triangle, err error) {
	var hdr [80]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return "", nil, errors.Wrap(err, "stl: reading header")
	}

	var count uint32
	if err := binary.Read(r, le, &count); err != nil {
		return "", nil, errors.Wrap(err, "stl: reading triangle count")
	}

	tris = make([]Triangle, count)
	var rec [recordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return "", nil, errors.Wrapf(err, "stl: reading triangle %d", i)
		}
		t := &tris[i]
		getVec(rec[0:], &t.Normal)
		getVec(rec[12:], &t.Vertex[0])
		getVec(rec[24:], &t.Vertex[1])
		getVec(rec[36:], &t.Vertex[2])
		t.Attr = le.Uint16(rec[48:])
	}

	return trimHeader(hdr), tris, nil
}

// getVec unpacks three little-endian float32 values.
func getVec(src []byte, dst *[3]float32) {
	dst[0] = math.Float32frombits(le.Uint32(src[0:]))
	dst[1] = math.Float32frombits(le.Uint32(src[4:]))
	dst[2] = math.Float32frombits(le.Uint32(src[8:]))
}

// trimHeader strips trailing NUL padding from the 80-byte header.
func trimHeader(hdr [80]byte) string {
	end := len(hdr)
	for end > 0 && hdr[end-1] == 0 {
		end--
	}
	return string(hdr[:end])
}
