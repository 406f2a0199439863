package icon

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FallbackFace is the built-in bitmap face used when no scalable font can
// be loaded. It has a fixed 7×13 cell, so labels on large icons come out
// small.
var FallbackFace font.Face = basicfont.Face7x13

// FontResolver picks the face used to draw icon labels.
type FontResolver struct {
	// Paths are scalable font files (TTF, OTF or TTC collections) tried in
	// order. For collections the first font is used.
	Paths []string

	// ReadFile loads a font file. Nil means os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// Resolve returns a face for the given pixel size. It never fails: any
// problem with a candidate moves on to the next one, and FallbackFace is
// returned when none loads. The caller should Close the returned face.
func (r FontResolver) Resolve(px int) font.Face {
	if px <= 0 {
		return FallbackFace
	}
	read := r.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	for _, p := range r.Paths {
		data, err := read(p)
		if err != nil {
			continue
		}
		face, err := NewFace(data, px)
		if err != nil {
			continue
		}
		return face
	}
	return FallbackFace
}

// NewFace parses a TTF/OTF file or TTC collection and returns a face whose
// em size is px pixels.
func NewFace(data []byte, px int) (font.Face, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, err
	}
	// At 72 DPI one point is one pixel.
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
