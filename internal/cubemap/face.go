package cubemap

import (
	"fmt"

	"github.com/Faultbox/spheremap/pkg/math"
)

// Face identifies one of the six cube faces. The numeric order is
// fixed: classification derives the value directly from the major
// axis index and sign.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
	NumFaces
)

// faceSuffixes maps faces to the conventional filename suffixes.
var faceSuffixes = [NumFaces]string{
	FacePosX: "right",
	FaceNegX: "left",
	FacePosY: "top",
	FaceNegY: "bottom",
	FacePosZ: "front",
	FaceNegZ: "back",
}

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	names := [NumFaces]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}
	return names[f]
}

// Suffix returns the filename suffix conventionally used for the face
// ("right", "left", "top", "bottom", "front", "back").
func (f Face) Suffix() string {
	return faceSuffixes[f]
}

// ComputeTexCoords classifies a direction vector onto a cube face and
// returns normalized face-local coordinates s,t in [0,1]. Ties on
// equal-magnitude components resolve toward the lower axis (x over y
// over z). Floating-point drift can push s,t slightly outside [0,1]
// at face boundaries; SampleFace clamps before indexing.
func ComputeTexCoords(dir math.Vec3) (Face, float32, float32) {
	a := dir.Abs()

	var axis int
	if a.X >= a.Y && a.X >= a.Z {
		axis = 0
	} else if a.Y >= a.X && a.Y >= a.Z {
		axis = 1
	} else {
		axis = 2
	}

	face := Face(axis * 2)
	if dir.Component(axis) < 0 {
		face++
	}

	var s, t, m float32
	switch face {
	case FacePosX:
		s, t, m = -dir.Z, -dir.Y, a.X
	case FaceNegX:
		s, t, m = dir.Z, -dir.Y, a.X
	case FacePosY:
		s, t, m = dir.X, dir.Z, a.Y
	case FaceNegY:
		s, t, m = dir.X, -dir.Z, a.Y
	case FacePosZ:
		s, t, m = dir.X, -dir.Y, a.Z
	case FaceNegZ:
		s, t, m = -dir.X, -dir.Y, a.Z
	}

	return face, 0.5 * (s/m + 1), 0.5 * (t/m + 1)
}
