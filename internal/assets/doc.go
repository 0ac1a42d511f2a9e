// Package assets provides the page, script and stylesheet used by the
// browser host.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when an asset is
// not found there, so a user can override only the stylesheet, say.
//
// # Directory Structure
//
//	{basePath}/
//	├── pages/
//	│   └── {name}.html   # host page with a #commentbox
//	├── scripts/
//	│   └── {name}.js     # page-side glue, installs window.__commentfmt
//	└── styles/
//	    └── {name}.css    # buttons, preview container, theme classes
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
