package util

// JoinStringsSep is placed between consecutive elements by JoinStrings.
const JoinStringsSep = ", "

// Text is any value that reads as a run of bytes: strings, byte slices and
// types defined over them.
type Text interface {
	~string | ~[]byte
}

// JoinStrings joins elems in order with JoinStringsSep between each pair.
// No elements give "" and a single element is returned unchanged.
//
// Fixed arrays are passed as arr[:]... and slices as s...; the result only
// depends on the elements and their order. elems is never written and the
// returned string does not share memory with it.
func JoinStrings[S Text](elems ...S) string {
	switch len(elems) {
	case 0:
		return ""
	case 1:
		return string(elems[0])
	}

	n := len(JoinStringsSep) * (len(elems) - 1)
	for _, e := range elems {
		n += len(e)
	}

	buf := make([]byte, n)
	i := copy(buf, elems[0])
	for _, e := range elems[1:] {
		i += copy(buf[i:], JoinStringsSep)
		i += copy(buf[i:], e)
	}
	return String(buf)
}
