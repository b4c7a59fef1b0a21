package cipher_test

import (
	"strings"
	"testing"

	"github.com/hn275/vigenere-cryptanalysis/cipher"
)

// BenchmarkDecryptText measures the text-level transform on a 4 KiB message.
func BenchmarkDecryptText(b *testing.B) {
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 120)
	key := []int{3, 14, 20, 1, 8}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := cipher.DecryptText(text, key); err != nil {
			b.Fatalf("DecryptText failed: %v", err)
		}
	}
}
