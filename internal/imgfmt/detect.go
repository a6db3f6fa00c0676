// ABOUTME: Image signature table and MIME type detection
// ABOUTME: Checks leading bytes only; filename extensions are never consulted

package imgfmt

import (
	"bytes"
	"errors"
)

// ErrUnknownFormat is returned when the content matches no known image
// signature.
var ErrUnknownFormat = errors.New("unknown image format")

// check inspects the leading bytes of content and returns a MIME type, or ""
// when the signature does not match.
type check func(h []byte) string

// checks run in order; first match wins.
var checks = []check{
	checkJPEG,
	checkPNG,
	checkGIF,
	checkTIFF,
	checkRGB,
	checkPBM,
	checkPGM,
	checkPPM,
	checkRast,
	checkXBM,
	checkBMP,
}

// DetectMIME returns the MIME type of the image content, or ErrUnknownFormat
// when the leading bytes match no recognized signature.
func DetectMIME(content []byte) (string, error) {
	for _, c := range checks {
		if mime := c(content); mime != "" {
			return mime, nil
		}
	}
	return "", ErrUnknownFormat
}

// JPEG in JFIF or Exif containers carries the marker at offset 6.
func checkJPEG(h []byte) string {
	if len(h) >= 10 && (bytes.Equal(h[6:10], []byte("JFIF")) || bytes.Equal(h[6:10], []byte("Exif"))) {
		return "image/jpeg"
	}
	return ""
}

func checkPNG(h []byte) string {
	if bytes.HasPrefix(h, []byte("\x89PNG\r\n\x1a\n")) {
		return "image/png"
	}
	return ""
}

func checkGIF(h []byte) string {
	if bytes.HasPrefix(h, []byte("GIF87a")) || bytes.HasPrefix(h, []byte("GIF89a")) {
		return "image/gif"
	}
	return ""
}

// TIFF byte order marks, either endianness.
func checkTIFF(h []byte) string {
	if bytes.HasPrefix(h, []byte("MM")) || bytes.HasPrefix(h, []byte("II")) {
		return "image/tiff"
	}
	return ""
}

// SGI image library files.
func checkRGB(h []byte) string {
	if bytes.HasPrefix(h, []byte("\x01\xda")) {
		return "image/x-rgb"
	}
	return ""
}

// anymap matches a portable anymap header: "P" + digit + whitespace.
func anymap(h []byte, digits string) bool {
	return len(h) >= 3 && h[0] == 'P' &&
		bytes.ContainsRune([]byte(digits), rune(h[1])) &&
		bytes.ContainsRune([]byte(" \t\n\r"), rune(h[2]))
}

func checkPBM(h []byte) string {
	if anymap(h, "14") {
		return "image/x-portable-bitmap"
	}
	return ""
}

func checkPGM(h []byte) string {
	if anymap(h, "25") {
		return "image/x-portable-graymap"
	}
	return ""
}

func checkPPM(h []byte) string {
	if anymap(h, "36") {
		return "image/x-portable-pixmap"
	}
	return ""
}

func checkRast(h []byte) string {
	if bytes.HasPrefix(h, []byte("\x59\xa6\x6a\x95")) {
		return "image/x-cmu-raster"
	}
	return ""
}

func checkXBM(h []byte) string {
	if bytes.HasPrefix(h, []byte("#define ")) {
		return "image/x-xbitmap"
	}
	return ""
}

func checkBMP(h []byte) string {
	if bytes.HasPrefix(h, []byte("BM")) {
		return "image/bmp"
	}
	return ""
}
