// Package tint derives a stable accent color from an identity string.
//
// An identity (project name, path, or a composite) is hashed with MD5 and
// reduced to a scalar k in [0,1) from the first and last digest bytes:
//
//	k = (digest[0]<<8 | digest[15]) / 0xFFFF
//
// The single digest pair ff..ff gives exactly 1, which wraps to 0.
//
// k indexes into the wrap-closed stop list of a palette. With n stops the
// lower stop is floor(k*n), the upper stop is the next one modulo n, and the
// two are mixed by the fractional position inside the segment. Because the
// closed list ends where it starts, the mapping is continuous across k=1.
//
// All functions are pure and safe for concurrent use.
package tint
