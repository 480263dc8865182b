package render

const (
	TextureSize = 512
	TileSize    = 64
)

var (
	checkerLight = [4]byte{255, 255, 255, 255}
	checkerDark  = [4]byte{150, 150, 150, 255}
)

// Texture is a tightly packed RGBA8 pixel buffer.
type Texture struct {
	Width  int
	Height int
	Pix    []byte
}

// At returns the RGBA value of pixel (x, y).
func (t *Texture) At(x, y int) [4]byte {
	i := (y*t.Width + x) * 4
	return [4]byte{t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]}
}

// Checkerboard returns a size*size RGBA buffer where the tile containing
// (x, y) is white when x/tile + y/tile is even and light gray otherwise.
func Checkerboard(size, tile int) []byte {
	if size <= 0 || tile <= 0 {
		return nil
	}
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := checkerDark
			if (x/tile+y/tile)%2 == 0 {
				c = checkerLight
			}
			copy(pix[(y*size+x)*4:], c[:])
		}
	}
	return pix
}

// NewCheckerboardTexture wraps Checkerboard in a Texture.
func NewCheckerboardTexture(size, tile int) *Texture {
	return &Texture{Width: size, Height: size, Pix: Checkerboard(size, tile)}
}
