package iconkit

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/oxtoacart/bpool"
)

// Encoder writes PNGs through a pool of reusable buffers. We encode to a
// buffer first so that an encoding error never leaves a half-written file on
// disk (same reasoning as buffering template output before sending a
// response).
type Encoder struct {
	bufpool *bpool.BufferPool
}

func NewEncoder() *Encoder {
	return &Encoder{bufpool: bpool.NewBufferPool(4)}
}

func (e *Encoder) EncodePNG(w io.Writer, img image.Image) error {
	buf := e.bufpool.Get()
	defer e.bufpool.Put(buf)
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// WriteFile encodes img as a PNG at path, overwriting any existing file.
// Parent directories are not created: if the directory is missing the caller
// gets the os.Create error.
func (e *Encoder) WriteFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
