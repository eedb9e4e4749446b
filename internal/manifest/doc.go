// Package manifest loads the configuration manifest of a utility-class CSS
// build tool: the glob patterns of files to scan, opaque theme extension
// data, and the plugin list. A loaded Manifest is immutable and is handed to
// the build tool's generation engine as an explicit value.
//
// # Manifest Format
//
// Manifests can be written in YAML, JSON, or TOML:
//
//	contentPatterns:
//	  - ./templates/**/*.html
//	  - ./**/templates/**/*.html
//	theme:
//	  extend: {}
//	plugins: []
//
// `content` is accepted in place of `contentPatterns`. Every key is
// optional and unrecognized keys are ignored.
//
// # Usage
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load("stylecfg.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, pattern := range m.ContentPatterns() {
//	    // Hand the pattern to the scanner
//	}
//
// # Error Handling
//
// Loading is all-or-nothing. Errors match one of:
//   - ErrSourceNotFound: the manifest file does not exist
//   - ErrMalformedConfig: the file cannot be parsed, or a recognized key has
//     the wrong shape (reported as a *FieldError)
//   - ErrUnsupportedExt: unknown file extension (also ErrMalformedConfig)
package manifest
