// Package utils provides small conversion helpers shared by the HTTP and CLI
// surfaces, mainly for loosely typed request payloads (sizes sent as numbers,
// quantities sent as strings).
package utils
