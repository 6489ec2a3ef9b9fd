//go:build bench

package pipeline

import (
	"strings"
	"testing"
)

// BenchmarkTransform benchmarks the full pipeline.
// Called once per description on every save.
func BenchmarkTransform(b *testing.B) {
	p := New(NewLinker("yourpeer.nyc", nil))

	small := "Open mo-fr 9a-5p\n- bring ID\nCall 2125551234"
	large := strings.Repeat("Showers sa-su 7a-11a for age(18) • Laundry\n- visit example.com or email intake@example.org.\n\n", 200)
	linked := strings.Repeat(`See <a href="https://already-linked.com">already-linked.com</a> mo-fr 9a-5p`+"\n", 200)

	inputs := []struct {
		name  string
		input string
	}{
		{"small", small},
		{"large", large},
		{"existing_anchors", linked},
		{"plain_no_matches", strings.Repeat("Open daily for everyone\n", 200)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = p.Transform(input.input)
			}
		})
	}
}

// BenchmarkSplitSpans benchmarks the anchor/tag/text split used by every stage.
func BenchmarkSplitSpans(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{"plain", strings.Repeat("plain text line\n", 100)},
		{"anchors", strings.Repeat(`x <a href="https://x.org">y</a> z<br>`, 100)},
		{"unclosed_anchor", `<a href="https://x.org">` + strings.Repeat("text ", 500)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = SplitSpans(input.input)
			}
		})
	}
}

// BenchmarkPreview benchmarks the live-typing preview.
// Runs on every keystroke, so it must stay cheap.
func BenchmarkPreview(b *testing.B) {
	input := strings.Repeat("Showers • Laundry • Meals\n", 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Preview(input)
	}
}
