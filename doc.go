// Package placemark is the root of a set of packages for deriving normalized time, position and bearing records
// ("placemarks") from the EXIF and XMP metadata embedded in image files, and for applying those records to
// Who's On First style GeoJSON media features. See the xmp, placemark and deployment packages for the details.
package placemark
