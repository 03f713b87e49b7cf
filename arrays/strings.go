package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

func demoByteStrings() {
	// A []byte is a mutable buffer. Go strings carry their length, so
	// there is no terminating NUL and no strlen scan.
	greeting := []byte{'H', 'e', 'l', 'l', 'o'}
	fmt.Println(" ", string(greeting))

	str1 := make([]byte, 0, 50)
	str1 = append(str1, "Hello"...)
	str3 := make([]byte, len(str1))
	copy(str3, str1) // strcpy
	str1 = append(str1, ' ')
	str1 = append(str1, "World"...) // strcat, grows as needed

	fmt.Printf("  str1=%q str3=%q len(str1)=%d\n", str1, str3, len(str1))
	fmt.Println("  bytes.Equal(str3, \"Hello\"):", bytes.Equal(str3, []byte("Hello")))
}

// reverseRunes reverses s by code point, so multi-byte characters stay intact.
func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func demoStrings() {
	s1, s2 := "Hello", "World"
	s3 := s1 + " " + s2
	fmt.Println(" ", s3)
	fmt.Println("  len(s3):", len(s3))
	fmt.Println("  substring s3[6:11]:", s3[6:11])

	if pos := strings.Index(s3, "World"); pos >= 0 {
		fmt.Println("  'World' found at position:", pos)
	}

	sentence := "The quick brown fox"
	fmt.Println("  reversed:", reverseRunes(sentence))

	// len counts bytes; utf8.RuneCountInString counts characters.
	word := "añejo"
	fmt.Printf("  %q: %d bytes, %d runes, reversed %q\n",
		word, len(word), utf8.RuneCountInString(word), reverseRunes(word))

	fmt.Println("  Fields:", strings.Fields(sentence))
	fmt.Println("  ToUpper:", strings.ToUpper(sentence))
	fmt.Println("  Replace:", strings.ReplaceAll(sentence, "fox", "gopher"))
}
