// Renders the placeholder icon once at full size, then exports the whole
// AppIcon.appiconset: every iPhone/iPad slot plus the App Store marketing
// icon, with a Contents.json that references them.

package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/trackapp/iconkit"
)

func main() {
	defaultOut := filepath.Join("Assets.xcassets", "AppIcon.appiconset")
	out := flag.String("out", defaultOut, "Directory to write the icon set into (must exist)")
	master := flag.Int("master", 1024, "Size to render the master icon at before scaling down")
	flag.Parse()

	fmt.Printf("Generating app icon set in %s...\n", *out)
	img, err := iconkit.Render(*master)
	if err != nil {
		log.Fatal(err)
	}
	written, err := iconkit.WriteAppIconSet(*out, img)
	for _, name := range written {
		fmt.Printf("  wrote %s\n", name)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Done: %d files\n", len(written))
}
