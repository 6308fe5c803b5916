package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	// Logo decoding: stdlib formats plus the extended set fpdf cannot
	// embed natively (those are re-encoded to PNG before drawing).
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ---------------------------------------------------------------------------
// Logo Asset Resolution
// ---------------------------------------------------------------------------

// LogoAsset is a resolved company logo: raw bytes in an fpdf-embeddable
// format plus its natural pixel size and the scaled size that fits the
// configured bounding box. Owned by one render call; never cached.
type LogoAsset struct {
	Data          []byte
	Format        string // "png", "jpeg" or "gif"
	NaturalWidth  int    // pixels
	NaturalHeight int    // pixels
	Width         float64 // scaled, mm
	Height        float64 // scaled, mm
}

// Natural pixel size assumed when the dimensions cannot be probed.
const (
	fallbackLogoWidthPx  = 300
	fallbackLogoHeightPx = 100
)

// logoFetchTimeout bounds the one network round trip a render may make.
const logoFetchTimeout = 10 * time.Second

// embeddableFormats are the image types fpdf can take as-is.
var embeddableFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"gif":  true,
}

// resolveLogo turns a URL or local path into a drawable LogoAsset. Any
// fetch or decode failure degrades to nil so the header falls back to the
// company name alone; a render never fails because of its logo.
func resolveLogo(ref string, opts *Options) *LogoAsset {
	if strings.TrimSpace(ref) == "" {
		return nil
	}

	data, err := fetchLogo(ref)
	if err != nil {
		slog.Warn("logo unavailable, header degrades to company name", "ref", ref, "error", err)
		return nil
	}

	format, w, h, err := probeDimensions(data)
	if err != nil {
		// Size undeterminable but the format is recognizable: draw it at
		// an assumed natural size instead of dropping it.
		format = sniffFormat(data)
		if format == "" {
			slog.Warn("logo undecodable, header degrades to company name", "ref", ref, "error", err)
			return nil
		}
		slog.Warn("logo dimensions unknown, using fallback size", "ref", ref, "error", err)
		w, h = fallbackLogoWidthPx, fallbackLogoHeightPx
	}

	if !embeddableFormats[format] {
		data, err = reencodePNG(data)
		if err != nil {
			slog.Warn("logo re-encode failed, header degrades to company name", "ref", ref, "format", format, "error", err)
			return nil
		}
		format = "png"
	}

	asset := &LogoAsset{
		Data:          data,
		Format:        format,
		NaturalWidth:  w,
		NaturalHeight: h,
	}
	asset.Width, asset.Height = scaleToFit(w, h, opts.LogoMaxWidth, opts.LogoMaxHeight)
	return asset
}

// fetchLogo reads logo bytes from an HTTP(S) URL or a local path.
func fetchLogo(ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		client := &http.Client{Timeout: logoFetchTimeout}
		resp, err := client.Get(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch logo: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch logo: unexpected status %s", resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read logo body: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo file: %w", err)
	}
	return data, nil
}

// probeDimensions determines format and natural pixel size without decoding
// the full image.
func probeDimensions(data []byte) (format string, w, h int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to probe image dimensions: %w", err)
	}
	return format, cfg.Width, cfg.Height, nil
}

// sniffFormat identifies an embeddable format from magic bytes alone.
func sniffFormat(data []byte) string {
	switch {
	case len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case len(data) >= 3 && bytes.Equal(data[:3], []byte("\xff\xd8\xff")):
		return "jpeg"
	case len(data) >= 6 && (bytes.Equal(data[:6], []byte("GIF87a")) || bytes.Equal(data[:6], []byte("GIF89a"))):
		return "gif"
	}
	return ""
}

// reencodePNG fully decodes an image (any registered format) and re-encodes
// it as PNG so fpdf can embed it.
func reencodePNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to re-encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

// scaleToFit maps a natural pixel size into the bounding box (mm),
// preserving aspect ratio and never upscaling. Pixels are interpreted at
// 72 dpi.
func scaleToFit(wPx, hPx int, maxW, maxH float64) (float64, float64) {
	const mmPerPx = 25.4 / 72.0

	w := float64(wPx) * mmPerPx
	h := float64(hPx) * mmPerPx
	if w <= 0 || h <= 0 {
		return 0, 0
	}

	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return w * scale, h * scale
}
