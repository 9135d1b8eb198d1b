package entity

// CopyStrings returns an independent copy of src. The result is never nil so
// empty collections serialize as [] rather than null.
func CopyStrings(src []string) []string {
	return append(make([]string, 0, len(src)), src...)
}
