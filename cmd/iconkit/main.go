// Generates the placeholder app icon (blue background, white checkered flag)
// and writes it as a single PNG.

package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/trackapp/iconkit"
)

func main() {
	defaultOut := filepath.Join("Assets.xcassets", "AppIcon.appiconset", "icon-1024.png")
	size := flag.Int("size", 1024, "Icon side length in pixels")
	out := flag.String("out", defaultOut, "Path to write the PNG to (directory must exist)")
	flag.Parse()

	fmt.Println("Generating app icon...")
	img, err := iconkit.Render(*size)
	if err != nil {
		log.Fatal(err)
	}
	if err := iconkit.NewEncoder().WriteFile(*out, img); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("App icon saved to: %s\n", *out)
}
