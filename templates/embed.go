// Package templates embeds the built-in per-vendor configuration template
// sets, laid out as <vendor>/<firmware>/<section>.tmpl. New vendors are
// added by dropping a template directory here; no renderer code changes.
package templates

import "embed"

//go:embed cisco dellemc
var FS embed.FS
