// Package xmp provides methods for reading EXIF and XMP metadata in to a flat, read-only graph and for normalizing
// the values (rationals, degree-minute coordinates, compass bearings) stored in that graph.
package xmp
