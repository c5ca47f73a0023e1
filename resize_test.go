package iconkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleTo(t *testing.T) {
	src, err := Render(128)
	if err != nil {
		t.Fatal(err)
	}
	dst := ScaleTo(src, 32)
	assert.Equal(t, 32, dst.Bounds().Dx())
	assert.Equal(t, 32, dst.Bounds().Dy())
	// The upper-left corner is solid background, so resampling can't change it.
	assert.Equal(t, Background, dst.RGBAAt(0, 0))
}

func TestScaleToSameSizeCopies(t *testing.T) {
	src, err := Render(64)
	if err != nil {
		t.Fatal(err)
	}
	dst := ScaleTo(src, 64)
	assert.Equal(t, src.Pix, dst.Pix)
}
