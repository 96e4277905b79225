// Package export renders merged translations as go-i18n message catalogs.
//
// One active.<code>.toml file per language, message id keyed to the
// translated question text. Every written file is immediately loaded back
// through a go-i18n bundle; a file the bundle rejects counts as a failed
// export so downstream consumers never pick up an unreadable catalog.
package export
