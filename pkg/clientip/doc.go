// Package clientip extracts the client IP address from HTTP requests.
//
// Headers are checked in this order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Values that do not parse as an IP, and the unspecified address 0.0.0.0,
// are skipped. Returned addresses are normalized with netip. When nothing
// valid is found, the raw RemoteAddr is returned.
//
// These headers are supplied by the client unless a proxy overwrites them.
// Only rely on them for security decisions when the app runs behind a proxy
// that does.
//
//	key := clientip.GetIP(r)
package clientip
