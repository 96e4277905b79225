// Package credits renders the contributor credits document.
//
// Contributors owning strictly more modules than the configured threshold get
// an individual table each, ordered by descending module count and then name.
// Their modules are sorted alphabetically and distributed column-major over a
// fixed column count. Everyone else shares one combined Module/Contributor
// table sorted by module name. Tables are rendered with go-pretty using the
// same rounded style as the CLI output.
package credits
