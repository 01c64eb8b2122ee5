package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"fianchetto/internal/game"
)

func main() {
	var cols int
	var rows int
	var themePath string

	flag.IntVar(&cols, "cols", 8, "board width in squares (min 8)")
	flag.IntVar(&rows, "rows", 8, "board height in squares (min 8)")
	flag.StringVar(&themePath, "theme", "", "optional YAML theme file")
	flag.Parse()

	theme := game.DefaultTheme()
	if themePath != "" {
		var err error
		theme, err = game.LoadTheme(themePath)
		if err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowTitle("Fianchetto")
	ebiten.SetWindowSize(1280, 860)
	if err := ebiten.RunGame(game.New(game.Options{Cols: cols, Rows: rows, Theme: theme})); err != nil {
		log.Fatal(err)
	}
}
