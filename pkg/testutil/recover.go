package testutil

// Recover calls f, and returns the value passed to panic by f, or nil if f
// does not panic.
func Recover(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}
