// Package svcfmt formats human-written service descriptions for display.
//
// # Quick Start
//
// Format text with default options:
//
//	out := svcfmt.Transform("Open mo-fr 9a-5p\n- bring ID")
//	// • Open Monday through Friday 9:00 AM — 5:00 PM
//	// <br>&emsp;— bring ID
//
// # Formatting Pipeline
//
// Transform runs these stages:
//
//  1. Input normalization (line endings, Unicode NFC)
//  2. Bullet normalization: each line gets a bullet, continuation or break
//     prefix unless it already has one
//  3. Shorthand expansion, in order: weekday ranges ("mo-fr"), clock ranges
//     ("9a-5p"), and age requirements ("age(18)")
//  4. Safe hyperlinking of emails, URLs and 10-digit phone numbers
//
// Text inside existing <a> elements is never rewritten, so links the author
// placed by hand survive byte for byte. Transform never fails: anything a
// stage cannot interpret is left as written.
//
// # Configuration
//
// Use functional options to customize the formatter:
//
//	f, err := svcfmt.NewFormatter(
//	    svcfmt.WithTrustedDomain("yourpeer.nyc"),
//	    svcfmt.WithPreviewSanitizer(true),
//	    svcfmt.WithStyle("compact"),
//	)
//
// Links to the trusted domain open in the same tab; all other web links get
// target="_blank" and rel="noopener noreferrer".
//
// # Preview
//
// Preview is a cheap rendering for live typing feedback. It only splits
// bullets onto their own lines and wraps each line in a <span>; nothing is
// expanded or linked. Author markup passes through unless the sanitizer is on.
//
// # Editing Sessions
//
// Editor wraps one field value with convert/undo and snippet insertion:
//
//	ed, err := svcfmt.NewEditor(f, raw)
//	ed.ApplySnippet("services-include")
//	ed.Convert()
//	ed.Undo() // back to the text before Convert
//
// # Review Pages
//
// Document wraps formatted text in a standalone HTML page with an embedded
// stylesheet, for checking output in a browser.
package svcfmt
