// Package lines splits a text blob into lines that share the blob's storage
package lines

import "strings"

// Split returns the lines of text without their terminators. Every line is a
// substring of text, so no line content is copied. A trailing "\n" does not
// produce an empty last line and a "\r" right before a "\n" is dropped.
func Split(text string) []string {
	result := make([]string, 0, strings.Count(text, "\n")+1)

	for len(text) > 0 {
		line := text
		i := strings.IndexByte(text, '\n')
		if i >= 0 {
			// \r снимаем только перед \n, одиночный \r в конце остаётся
			line, text = strings.TrimSuffix(text[:i], "\r"), text[i+1:]
		} else {
			text = ""
		}
		result = append(result, line)
	}

	return result
}
