package extract

import (
	"strings"
	"unicode/utf8"
)

// minRunLen is the minimum length of a printable run worth keeping; shorter
// runs are almost always stream noise.
const minRunLen = 10

// scanUTF8 decodes the bytes as UTF-8 and keeps runs of printable ASCII-range
// characters. Invalid sequences break runs, so heavily binary input yields
// little text.
func scanUTF8(data []byte) string {
	var runs []string
	var run strings.Builder

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		i += size
		if r != utf8.RuneError && printableASCII(r) {
			run.WriteRune(r)
			continue
		}
		flushRun(&runs, &run)
	}
	flushRun(&runs, &run)

	return strings.Join(runs, " ")
}

// scanLatin1 treats every byte as a single Latin-1 character and additionally
// keeps the accented letters of that range. This recovers content from
// streams where a UTF-8 decode drops too much.
func scanLatin1(data []byte) string {
	var runs []string
	var run strings.Builder

	for _, b := range data {
		r := rune(b)
		if printableASCII(r) || printableLatin1(r) {
			run.WriteRune(r)
			continue
		}
		flushRun(&runs, &run)
	}
	flushRun(&runs, &run)

	return strings.Join(runs, " ")
}

func flushRun(runs *[]string, run *strings.Builder) {
	if run.Len() >= minRunLen {
		*runs = append(*runs, run.String())
	}
	run.Reset()
}

// printableASCII reports whether r is in the ASCII range of letters, digits
// and common punctuation. Space counts so runs span words.
func printableASCII(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// printableLatin1 reports whether r is a printable character in the upper
// Latin-1 range (accented letters, ordinary symbols).
func printableLatin1(r rune) bool {
	return r >= 0xa0 && r <= 0xff
}
