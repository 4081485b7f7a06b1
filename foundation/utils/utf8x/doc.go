// Package utf8x converts between single UTF-8 encoded characters and code points.
//
// Package: utf8x
// Title: UTF-8 Code Point Codec
// Description: Ord and Chr are the byte-level codec behind stringx.String.Ord and
//              stringx.Chr. The lead byte's run of high one-bits announces the
//              sequence length; continuation bytes contribute six bits each.
//              Failures are *mdwerror.Error values with the codes
//              UTF8X_MALFORMED_SEQUENCE and UTF8X_INVALID_CODE_POINT.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Usage:
//
//	c, err := utf8x.Ord("€")  // 0x20AC
//	buf, err := utf8x.Chr(c)  // "\xe2\x82\xac\x00"
package utf8x
