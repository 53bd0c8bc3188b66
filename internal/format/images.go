// Package format decides which container entries count as page images and
// which input containers the decoder can handle, keyed on filename extension.
package format

import (
	"path"
	"strings"
)

// Base set of image extensions every comic reader understands.
var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
}

// Extended set accepted only when the caller opts in; readers vary in their
// support for these.
var extendedImageExts = map[string]bool{
	"webp": true,
	"tif":  true,
	"tiff": true,
	"tga":  true,
	"ico":  true,
	"avif": true,
}

// Container extensions the decoder knows how to open.
var decodableExts = map[string]bool{
	"zip": true,
	"cbz": true,
	"pdf": true,
}

// HasImageExt reports whether the path names an image, judged by extension
// only. With extended set, the wider table of less common formats is also
// accepted.
func HasImageExt(p string, extended bool) bool {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return false
	}
	if imageExts[ext] {
		return true
	}
	return extended && extendedImageExts[ext]
}

// IsSupportedForDecoding reports whether ext (without dot, any case) names a
// container format the decoder handles.
func IsSupportedForDecoding(ext string) bool {
	return decodableExts[strings.ToLower(ext)]
}
