package iconkit

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
)

// IconSlot is one entry in an Xcode AppIcon.appiconset: a point size, a
// display scale, and the device idiom it applies to.
type IconSlot struct {
	Idiom     string
	PointSize float64
	Scale     int
}

// Pixels is the rendered side length for this slot. Point sizes are either
// whole or x.5 (83.5pt iPad Pro) and scales are 1-3, so the product is always
// exact in a float64.
func (s IconSlot) Pixels() int {
	return int(s.PointSize * float64(s.Scale))
}

func (s IconSlot) Filename() string {
	return fmt.Sprintf("icon-%d.png", s.Pixels())
}

func (s IconSlot) sizeString() string {
	pt := strconv.FormatFloat(s.PointSize, 'f', -1, 64)
	return pt + "x" + pt
}

func (s IconSlot) scaleString() string {
	return strconv.Itoa(s.Scale) + "x"
}

// AppIconSlots is the standard iOS icon set: notification, settings, spotlight
// and app sizes for iPhone and iPad, plus the App Store marketing icon.
var AppIconSlots = []IconSlot{
	{"iphone", 20, 2}, {"iphone", 20, 3},
	{"iphone", 29, 2}, {"iphone", 29, 3},
	{"iphone", 40, 2}, {"iphone", 40, 3},
	{"iphone", 60, 2}, {"iphone", 60, 3},
	{"ipad", 20, 1}, {"ipad", 20, 2},
	{"ipad", 29, 1}, {"ipad", 29, 2},
	{"ipad", 40, 1}, {"ipad", 40, 2},
	{"ipad", 76, 1}, {"ipad", 76, 2},
	{"ipad", 83.5, 2},
	{"ios-marketing", 1024, 1},
}

// Contents.json shapes, as Xcode expects them.
type contentsImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contentsFile struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// WriteAppIconSet scales master to every slot in AppIconSlots, writes one PNG
// per distinct pixel size into dir (slots that share a pixel size share a
// file), and writes the matching Contents.json. It returns the filenames it
// wrote, in order. dir must already exist.
func WriteAppIconSet(dir string, master image.Image) ([]string, error) {
	enc := NewEncoder()
	var written []string
	images := make([]contentsImage, 0, len(AppIconSlots))
	done := make(map[int]bool)

	for _, slot := range AppIconSlots {
		images = append(images, contentsImage{
			Filename: slot.Filename(),
			Idiom:    slot.Idiom,
			Scale:    slot.scaleString(),
			Size:     slot.sizeString(),
		})
		px := slot.Pixels()
		if done[px] {
			continue
		}
		done[px] = true
		scaled := ScaleTo(master, px)
		if err := enc.WriteFile(filepath.Join(dir, slot.Filename()), scaled); err != nil {
			return written, err
		}
		written = append(written, slot.Filename())
	}

	contents := contentsFile{
		Images: images,
		Info:   contentsInfo{Author: "xcode", Version: 1},
	}
	data, err := json.MarshalIndent(&contents, "", "  ")
	if err != nil {
		return written, err
	}
	if err := os.WriteFile(filepath.Join(dir, "Contents.json"), append(data, '\n'), 0644); err != nil {
		return written, err
	}
	written = append(written, "Contents.json")
	return written, nil
}
