// Package transgen merges canonical question specs with recovered overrides
// and renders the generated region of a per-language translation artifact.
//
// The merge is applied independently per question, in catalog order. The
// override text wins when present and non-empty, otherwise the canonical
// template is used. A module name override is emitted only when one was
// recovered. Answer mappings appear only for questions whose spec marks the
// answers translatable; argument mappings only for argument positions flagged
// translatable, distinct literals in first-occurrence order. Override ids with
// no canonical counterpart are dropped, which is how stale entries age out of
// the artifacts.
//
// Rendering emits one map entry per merged record plus a preview comment that
// shows the assembled English question. Every literal passes through strlit,
// so the region is always valid Go and the next run can recover it with the
// overrides package.
//
// # Entry Points
//
// Merge: apply the merge policy, yielding ordered Records.
// Generator.Generate: render the region and splice it into an existing file.
// Generator.Block: render the region lines alone.
// Subst: positional {N} substitution used for preview comments.
package transgen
