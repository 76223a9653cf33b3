package thumbnail

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"

	"skyedit/internal/savefile"
)

var (
	// ErrNoInstallPath is returned when no game installation folder is configured
	ErrNoInstallPath = errors.New("installation path is not set")
	// ErrImageNotFound is returned when a ship thumbnail is missing on disk
	ErrImageNotFound = errors.New("image not found")
	// ErrNoProtocol is returned when the terminal cannot show images
	ErrNoProtocol = errors.New("terminal does not support inline images")
)

// Protocol is an inline terminal image protocol
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolSixel
	ProtocolKitty
	ProtocolITerm
)

func (p Protocol) String() string {
	switch p {
	case ProtocolSixel:
		return "sixel"
	case ProtocolKitty:
		return "kitty"
	case ProtocolITerm:
		return "iterm"
	}
	return "none"
}

// ParseProtocol maps a config value to a protocol. "auto" runs Detect.
func ParseProtocol(name string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Detect(), nil
	case "none", "off":
		return ProtocolNone, nil
	case "sixel":
		return ProtocolSixel, nil
	case "kitty":
		return ProtocolKitty, nil
	case "iterm", "iterm2":
		return ProtocolITerm, nil
	}
	return ProtocolNone, fmt.Errorf("unknown image protocol %q", name)
}

// Detect picks the best protocol the current terminal advertises
func Detect() Protocol {
	if rasterm.IsKittyCapable() {
		return ProtocolKitty
	}
	if rasterm.IsItermCapable() {
		return ProtocolITerm
	}
	if ok, err := rasterm.IsSixelCapable(); err == nil && ok {
		return ProtocolSixel
	}
	return ProtocolNone
}

// Resolve maps a ship thumbnail value to its PNG under the installation folder
func Resolve(installPath, thumbnail string) (string, error) {
	if installPath == "" {
		return "", ErrNoInstallPath
	}
	return savefile.ImagePath(installPath, thumbnail), nil
}

// Check reports whether the image at path exists
func Check(path string) error {
	if path == "" {
		return ErrNoInstallPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return fmt.Errorf("failed to stat image: %w", err)
	}
	return nil
}

// Load decodes the PNG at path
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Fit scales img down to fit within maxWidth x maxHeight pixels, keeping
// the aspect ratio. Images that already fit are returned as is.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || (w <= maxWidth && h <= maxHeight) {
		return img
	}

	scale := min(float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
	newWidth := max(1, int(float64(w)*scale))
	newHeight := max(1, int(float64(h)*scale))

	scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled
}

// Encode writes img to w using the given terminal protocol
func Encode(w io.Writer, img image.Image, proto Protocol) error {
	switch proto {
	case ProtocolSixel:
		encoder := sixel.NewEncoder(w)
		encoder.Dither = false
		return encoder.Encode(img)
	case ProtocolKitty:
		return rasterm.KittyWriteImage(w, img, rasterm.KittyImgOpts{})
	case ProtocolITerm:
		return rasterm.ItermWriteImage(w, img)
	}
	return ErrNoProtocol
}

// Render loads, scales and writes the thumbnail at path
func Render(w io.Writer, path string, maxWidth, maxHeight int, proto Protocol) error {
	if proto == ProtocolNone {
		return ErrNoProtocol
	}
	img, err := Load(path)
	if err != nil {
		return err
	}
	if err := Encode(w, Fit(img, maxWidth, maxHeight), proto); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", proto, err)
	}
	return nil
}
