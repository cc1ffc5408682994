//go:build unix && !(solaris && cgo)

package sysid

// Zones are a Solaris construct. Elsewhere every process runs in the
// equivalent of the global zone, so the identity is fixed.

const globalZoneName = "global"

// ZoneID returns the calling process's zone id.
func ZoneID() int32 {
	return 0
}

// Zonename resolves the calling process's zone name.
func Zonename() (string, error) {
	return globalZoneName, nil
}
