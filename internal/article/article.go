// Package article derives product articles from image filenames.
package article

import (
	"path"
	"strings"
)

// Extract returns the article encoded in an image filename.
//
// The extension (text after the last dot) is dropped, then one trailing
// uppercase "L" or "R" is removed: left and right mirror variants of a part
// share one article. Nothing else is normalized.
//
//	SK50.01.1.jpg  -> SK50.01.1
//	SK50.01.1R.jpg -> SK50.01.1
//	SK22.5l.png    -> SK22.5l
//
// A stem that ends in L or R for other reasons is stripped as well.
func Extract(filename string) string {
	stem := Stem(filename)
	if HasVariantSuffix(filename) {
		return stem[:len(stem)-1]
	}
	return stem
}

// Stem returns the base filename without its extension.
func Stem(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return strings.TrimSuffix(base, Ext(base))
}

// Ext returns the extension of a base filename, including the dot.
// A leading dot does not start an extension (".jpg" has none) and neither
// does a trailing one ("SK.1." has none).
func Ext(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// HasVariantSuffix reports whether the stem of filename ends in "L" or "R".
func HasVariantSuffix(filename string) bool {
	stem := Stem(filename)
	return strings.HasSuffix(stem, "L") || strings.HasSuffix(stem, "R")
}
