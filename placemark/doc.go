// Package placemark derives normalized time, position and bearing records from metadata graphs and copies
// them on to other records (maps or GeoJSON Features).
package placemark
