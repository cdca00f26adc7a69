// internal/ui/font.go
package ui

import (
	"log"
	"os"

	"go-arena-clash/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadFontFace загружает TTF-шрифт для HUD и кнопок.
func LoadFontFace() font.Face {
	fontData, err := os.ReadFile(config.FontPath)
	if err != nil {
		log.Fatal(err)
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		log.Fatal(err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return face
}
