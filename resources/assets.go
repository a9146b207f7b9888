package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const imageDir = "images/"

//go:embed images/*.svg
var imageFS embed.FS

var imageCache sync.Map

// Image returns a Fyne resource for the given image file.
func Image(fileName string) (fyne.Resource, error) {
	path := imageDir + fileName
	if cached, ok := imageCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	imageCache.Store(path, resource)
	return resource, nil
}

// MustImage returns a Fyne resource or panics on error.
func MustImage(fileName string) fyne.Resource {
	resource, err := Image(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Tomato returns the tomato artwork used for the window and app icon.
func Tomato() fyne.Resource {
	return MustImage("tomato.svg")
}
