package sift

// Image is a 2D float32 array backed by a flat row-major buffer, plus a
// SyncFromDevice hook that a GPU-backed Backend could use to refresh host
// contents after a dispatch. The CPU backends in this package never leave
// device-only state, so SyncFromDevice is a no-op for them, but the method
// stays part of the type so a future GPU-backed Backend can implement it
// without changing callers.
type Image struct {
	data []float32
	w, h int
}

// NewImage allocates a zeroed w x h image. It never returns a partially
// sized image: callers that cannot afford the allocation get a panic from
// the runtime.
func NewImage(w, h int) Image {
	return Image{data: make([]float32, w*h), w: w, h: h}
}

// NewImageFromRows copies a caller-supplied [][]float32 grayscale image
// into an Image. All rows must share the same length.
func NewImageFromRows(rows [][]float32) (Image, error) {
	h := len(rows)
	if h == 0 {
		return Image{}, &ConfigError{Msg: "image has zero rows"}
	}
	w := len(rows[0])
	if w == 0 {
		return Image{}, &ConfigError{Msg: "image has zero columns"}
	}
	img := NewImage(w, h)
	for y, row := range rows {
		if len(row) != w {
			return Image{}, &ConfigError{Msg: "image rows have inconsistent length"}
		}
		copy(img.data[y*w:(y+1)*w], row)
	}
	return img, nil
}

// Width returns the image width in pixels.
func (im Image) Width() int { return im.w }

// Height returns the image height in pixels.
func (im Image) Height() int { return im.h }

// At reads the pixel at (x, y). Out-of-range coordinates are a caller bug;
// callers in this package only ever read within precomputed interior
// bounds, so no bounds checking beyond what the slice index already gives.
func (im Image) At(x, y int) float32 {
	return im.data[y*im.w+x]
}

// Set writes the pixel at (x, y).
func (im Image) Set(x, y int, v float32) {
	im.data[y*im.w+x] = v
}

// Raw exposes the backing row-major buffer, e.g. for a Backend kernel that
// wants to operate on the whole image without per-pixel method calls.
func (im Image) Raw() []float32 { return im.data }

// SyncFromDevice refreshes host-visible contents after a compute dispatch.
// The CPU backends in this package compute directly into the host buffer,
// so this is always a no-op here; it exists for a future device-backed
// Image to implement.
func (im Image) SyncFromDevice() {}

// Clone returns an independent copy that shares no backing storage with im.
func (im Image) Clone() Image {
	out := NewImage(im.w, im.h)
	copy(out.data, im.data)
	return out
}

// Sub returns a new image containing a - b, pixel-wise. a and b must have
// identical dimensions.
func Sub(a, b Image) Image {
	out := NewImage(a.w, a.h)
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out
}

// Buffer is a linear, host-visible array of fixed-layout records. The
// keypoint and descriptor pipelines in this package use plain Go slices
// instead of a distinct Buffer[T] type — a slice already gives contiguous
// storage and nothing here needs device-mirroring — but the alias stays
// available for record types that want to name it explicitly.
type Buffer[T any] []T

// Count returns the number of records in the buffer.
func (b Buffer[T]) Count() int { return len(b) }
