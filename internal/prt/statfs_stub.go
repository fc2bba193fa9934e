//go:build !linux

package prt

// FreeBytes is a no-op off Linux; cleanup still deletes files, it just
// cannot report the space freed.
func FreeBytes(path string) (uint64, error) {
	return 0, nil
}
