// Package templates provides the embedded configuration templates copied
// into every scaffolded project.
//
// Templates are embedded at build time using Go's //go:embed directive so
// they are available in all distributions (source builds and binary
// releases). The materialization stage treats a missing template as a silent
// skip, which keeps this list free to shrink without breaking older builds.
//
// To modify a template, edit the file in this directory and rebuild.
package templates

import "embed"

// FS holds the template files copied verbatim into scaffolded projects.
//
//go:embed tsconfig.json vite.config.ts tailwind.config.js postcss.config.js .eslintrc.cjs .prettierrc
var FS embed.FS
