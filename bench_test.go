package xmltok

import (
	"io"
	"strings"
	"testing"
)

func benchDocument() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\"?>\n<records>\n")
	for i := 0; i < 1000; i++ {
		b.WriteString("  <record id='x' kind=\"entry\">name &amp; value<flag set='1'/></record>\n")
	}
	b.WriteString("</records>\n")
	return b.String()
}

func BenchmarkScanner(b *testing.B) {
	doc := benchDocument()
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := NewScanner(doc)
		for {
			_, err := sc.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatalf("Next error = %v", err)
			}
		}
	}
}

func BenchmarkScannerDecodeAll(b *testing.B) {
	doc := benchDocument()
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()

	buf := make([]byte, 0, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := NewScanner(doc)
		for {
			ev, err := sc.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatalf("Next error = %v", err)
			}
			if ev.Kind() != KindCharData {
				continue
			}
			if buf, err = ev.Text().AppendTo(buf[:0]); err != nil {
				b.Fatalf("AppendTo error = %v", err)
			}
		}
	}
}
