// Package contributors resolves module authorship into per-contributor
// groups.
//
// Raw contributor strings from the catalog may spell the same person several
// ways. An optional YAML alias file maps a canonical name to its known
// spelling variants; Collect resolves every module's author through it and
// groups module names under the canonical contributor.
package contributors
