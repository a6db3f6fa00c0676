// Package imgfmt detects image formats from binary signatures.
//
// Detection looks only at the leading bytes of the content, never at a
// filename, so a mislabeled file is classified by what it actually contains.
// The recognized formats are the ones the Let's Chat upload path accepts:
// JPEG, PNG, GIF, TIFF, BMP, SGI RGB, the portable anymap family (PBM, PGM,
// PPM), Sun raster, and XBM.
package imgfmt
