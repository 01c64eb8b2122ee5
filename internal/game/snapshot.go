package game

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// saveSnapshot writes the current world buffer to a timestamped WebP
// file in the working directory.
func (g *Game) saveSnapshot() {
	if g.worldBuf == nil {
		g.status = "nothing rendered yet"
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	g.worldBuf.ReadPixels(img.Pix)

	name := fmt.Sprintf("fianchetto-%s.webp", time.Now().Format("20060102-150405"))
	f, err := os.Create(name) // #nosec G304 -- fixed name pattern in the cwd
	if err != nil {
		g.status = "snapshot failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		g.status = "snapshot failed: " + err.Error()
		return
	}
	g.status = "saved " + name
}
