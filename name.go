package vstream

// DirName returns the normalized directory path of a directory stream.
// It reports false for streams of any other kind.
func DirName(s Stream) (string, bool) {
	if s == nil || s.Kind() != KindDir {
		return "", false
	}
	p, ok := s.(interface{ Path() string })
	if !ok {
		return "", false
	}
	return p.Path(), true
}
