package nav

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

const jpegQuality = 95

// writeSnapshot encodes img to path, replacing any existing file.
func writeSnapshot(path string, img *image.RGBA) error {
	dc := newCanvas(img)
	defer dc.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = dc.EncodePNG(f)
	} else {
		err = dc.EncodeJPEG(f, jpegQuality)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
