// Package assets provides the stylesheets embedded in review pages.
//
// Styles come from two sources: the ones compiled into the binary
// (EmbeddedStyles: default, compact) and an optional directory on disk
// (DirStyles) laid out as
//
//	{dir}/
//	└── styles/
//	    └── {name}.css
//
// Resolver tries the directory first and falls back to the embedded styles,
// so a directory can override one style and inherit the rest.
//
// Style names never contain separators or dots, and disk reads go through
// os.Root, which refuses paths and symlinks that leave the directory.
package assets
