package object

import "strings"

// ResolveKey normalizes a stored document reference into a bucket-relative key.
//
// Three reference shapes are accepted: a full public or signed object URL
// containing "/object/<visibility>/<bucket>/", a reference prefixed with the
// bucket name itself, and a bare bucket-relative key. Anything else is
// unresolvable and callers must skip the document.
func ResolveKey(bucket, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if bucket == "" || ref == "" {
		return "", false
	}

	// Full object URL: the key is everything after the bucket path segment.
	if idx := objectURLIndex(ref, bucket); idx >= 0 {
		key := stripQuery(ref[idx:])
		if key == "" {
			return "", false
		}
		return key, true
	}

	// Bucket-prefixed path.
	if rest, ok := strings.CutPrefix(ref, bucket+"/"); ok {
		if rest == "" {
			return "", false
		}
		return rest, true
	}

	// Bare relative key: no scheme, no object marker.
	if !strings.Contains(ref, "://") && !strings.Contains(ref, "/object/") {
		return ref, true
	}

	return "", false
}

// objectURLIndex returns the offset just past "/object/<visibility>/<bucket>/"
// in a storage object URL, or -1 when the marker is absent.
func objectURLIndex(ref, bucket string) int {
	for _, visibility := range []string{"public", "sign", "authenticated"} {
		marker := "/object/" + visibility + "/" + bucket + "/"
		if idx := strings.Index(ref, marker); idx >= 0 {
			return idx + len(marker)
		}
	}
	return -1
}

func stripQuery(key string) string {
	if idx := strings.IndexByte(key, '?'); idx >= 0 {
		key = key[:idx]
	}
	return strings.TrimSpace(key)
}
