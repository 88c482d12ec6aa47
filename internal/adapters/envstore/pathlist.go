package envstore

import "strings"

// ContainsSegment reports whether the separator-delimited list already holds dir.
// Comparison ignores case and trailing path separators, as Windows does.
func ContainsSegment(list, dir, sep string) bool {
	want := trimSegment(dir)
	for _, seg := range strings.Split(list, sep) {
		if seg == "" {
			continue
		}
		if strings.EqualFold(trimSegment(seg), want) {
			return true
		}
	}
	return false
}

// AppendSegment adds dir to the end of list unless it is already there.
func AppendSegment(list, dir, sep string) string {
	if ContainsSegment(list, dir, sep) {
		return list
	}
	list = strings.TrimRight(list, sep)
	if list == "" {
		return dir
	}
	return list + sep + dir
}

func trimSegment(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), `/\`)
}
