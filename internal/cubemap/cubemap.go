// Package cubemap holds six decoded cube-face images and answers two
// questions: which face (and where on it) a direction vector hits, and
// what color a face holds at a given texel.
package cubemap

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/Faultbox/spheremap/internal/imageio"
	"github.com/Faultbox/spheremap/pkg/math"
)

// Decoder turns an image file into an owned pixel buffer. Satisfied by
// imageio.DecodeFile; tests substitute in-memory fixtures.
type Decoder func(path string) (*imageio.Image, error)

// Cubemap owns six face images for its lifetime. Passive and stateless
// beyond its pixel data; safe for concurrent read access.
type Cubemap struct {
	faces [NumFaces]*imageio.Image

	// clampLow guards against negative nearest-neighbor indices from
	// floating-point drift at s,t near 0. Disable only for bit-exact
	// compatibility with renderers that clamp the upper bound alone.
	clampLow bool
}

// New builds a cubemap from six pre-decoded face images, indexed by
// Face value. All six must be non-nil.
func New(faces [NumFaces]*imageio.Image) (*Cubemap, error) {
	for f, img := range faces {
		if img == nil {
			return nil, errors.Errorf("cube face %s: missing image", Face(f))
		}
	}
	return &Cubemap{faces: faces, clampLow: true}, nil
}

// Load decodes the six conventional face files
// {prefix}_right.{ext} .. {prefix}_back.{ext} from disk.
func Load(prefix, ext string) (*Cubemap, error) {
	return LoadFrom(imageio.DecodeFile, prefix, ext)
}

// LoadFrom decodes the six face files through the given decoder. Every
// face is attempted even after a failure so a single run reports all
// missing or corrupt faces at once. No sampling may happen on a
// partially loaded cubemap; a non-nil error means the whole load failed.
func LoadFrom(decode Decoder, prefix, ext string) (*Cubemap, error) {
	cm := &Cubemap{clampLow: true}

	var loadErr error
	for f := FacePosX; f < NumFaces; f++ {
		path := fmt.Sprintf("%s_%s.%s", prefix, f.Suffix(), ext)
		img, err := decode(path)
		if err != nil {
			loadErr = multierr.Append(loadErr, errors.Wrapf(err, "face %s (%s)", f, path))
			continue
		}
		cm.faces[f] = img
	}
	if loadErr != nil {
		return nil, loadErr
	}

	return cm, nil
}

// SetClampLow selects whether SampleFace clamps negative texel indices
// to zero (the default) or leaves them to the truncating conversion.
func (c *Cubemap) SetClampLow(clamp bool) {
	c.clampLow = clamp
}

// Face returns the image for a face. Invalid face ids panic.
func (c *Cubemap) Face(f Face) *imageio.Image {
	if f < 0 || f >= NumFaces {
		panic(fmt.Sprintf("cubemap: invalid face %d", int(f)))
	}
	return c.faces[f]
}

// ReadTexel returns the packed color at integer texel (x, y) of the
// given face. Out-of-range coordinates and invalid face ids indicate a
// bug in the mapping math and panic rather than returning an error.
func (c *Cubemap) ReadTexel(f Face, x, y int) uint32 {
	img := c.Face(f)
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		panic(fmt.Sprintf("cubemap: texel (%d,%d) out of range for face %s (%dx%d)",
			x, y, f, img.Width, img.Height))
	}
	return img.Texel(x, y)
}

// SampleFace point-samples a face at normalized coordinates (s, t):
// the nearest texel, upper bound clamped to the face edge.
func (c *Cubemap) SampleFace(f Face, s, t float32) uint32 {
	img := c.Face(f)

	x := int(s * float32(img.Width))
	y := int(t * float32(img.Height))
	if c.clampLow {
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
	}
	if x > img.Width-1 {
		x = img.Width - 1
	}
	if y > img.Height-1 {
		y = img.Height - 1
	}

	return c.ReadTexel(f, x, y)
}

// Sample classifies a direction onto a face and point-samples it.
func (c *Cubemap) Sample(dir math.Vec3) uint32 {
	f, s, t := ComputeTexCoords(dir)
	return c.SampleFace(f, s, t)
}
