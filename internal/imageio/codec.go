package imageio

import (
	"image"
	"os"

	// Input decoder registration. BMP, TIFF and WebP come from
	// golang.org/x/image; PNG, JPEG and GIF from the standard library.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeFile decodes an image file of any registered format into an
// owned 4-channel buffer.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening image")
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	return FromImage(src), nil
}

// EncodeBMPFile writes the buffer to path as an uncompressed bitmap.
func EncodeBMPFile(path string, m *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}

	if err := bmp.Encode(f, m.RGBA()); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}

	return errors.Wrap(f.Close(), "closing output file")
}
