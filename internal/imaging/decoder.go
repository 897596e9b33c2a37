package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
)

// Model input geometry. The classifier expects a single 224x224 RGB image.
const (
	InputSize = 224
	Channels  = 3
)

var jpegHeader = []byte{0xFF, 0xD8}

// DecodeError wraps the underlying cause when a payload cannot be turned
// into a usable image.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode image: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Tensor is a decoded image in NHWC layout: shape (1, InputSize, InputSize,
// Channels), float32 pixel values in [0, 255]. Input scaling for the model
// lives in the classifier, not here.
type Tensor struct {
	Data []float32
}

// At returns the value at (y, x, channel).
func (t *Tensor) At(y, x, c int) float32 {
	return t.Data[(y*InputSize+x)*Channels+c]
}

// DecodeFile reads and normalizes a stored image file.
func DecodeFile(path string) (*Tensor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return toTensor(img), nil
}

// DecodeBytes normalizes a raw byte buffer purporting to be a JPEG image.
// The returned bool reports whether the JPEG magic number was present; a
// missing magic number is not fatal, decoding is attempted regardless.
func DecodeBytes(data []byte) (*Tensor, bool, error) {
	looksJPEG := bytes.HasPrefix(data, jpegHeader)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, looksJPEG, &DecodeError{Cause: err}
	}

	return toTensor(img), looksJPEG, nil
}

// toTensor resizes to the model input size and flattens to RGB float32.
// Alpha is dropped; grayscale sources expand to three equal channels through
// the color model conversion.
func toTensor(img image.Image) *Tensor {
	resized := resize.Resize(InputSize, InputSize, img, resize.Lanczos3)

	data := make([]float32, InputSize*InputSize*Channels)
	for y := 0; y < InputSize; y++ {
		for x := 0; x < InputSize; x++ {
			r, g, b, _ := resized.At(resized.Bounds().Min.X+x, resized.Bounds().Min.Y+y).RGBA()

			idx := (y*InputSize + x) * Channels
			data[idx] = float32(r >> 8)
			data[idx+1] = float32(g >> 8)
			data[idx+2] = float32(b >> 8)
		}
	}

	return &Tensor{Data: data}
}
