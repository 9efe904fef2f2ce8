// Package html2ans converts article HTML into a flat, ordered list of ANS
// content elements (paragraphs, headers, images, embeds, quotes, ...).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, trafilatura/).
// The dispatch engine that walks an element tree and invokes registered
// element parsers lives in dispatch/.
package html2ans
