package svcfmt_test

import (
	"fmt"
	"strings"

	"github.com/alnah/go-svcfmt"
)

// Example demonstrates formatting with default options.
func Example() {
	fmt.Println(svcfmt.Transform("Open mo-fr 9a-5p\n- bring ID"))
	// Output:
	// • Open Monday through Friday 9:00 AM — 5:00 PM
	// <br>&emsp;— bring ID
}

// Example_trustedDomain demonstrates same-tab links for a partner domain.
func Example_trustedDomain() {
	f, err := svcfmt.NewFormatter(svcfmt.WithTrustedDomain("yourpeer.nyc"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(f.Transform("Find us at yourpeer.nyc or call 2125551234"))
	// Output: • Find us at <a href="https://yourpeer.nyc">yourpeer.nyc</a> or call <a href="tel:2125551234">(212) 555-1234</a>
}

// Example_preview demonstrates the live-typing preview.
func Example_preview() {
	fmt.Println(svcfmt.Preview("Showers • Laundry"))
	// Output: <span>Showers</span><br><span>• Laundry</span>
}

// Example_editor demonstrates a convert and undo round trip with a snippet.
func Example_editor() {
	ed, err := svcfmt.NewEditor(nil, "Showers mo-fr")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := ed.ApplySnippet("services-include"); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ed.Convert())
	fmt.Println("---")
	fmt.Println(ed.Undo())
	// Output:
	// Services include:
	// • Showers Monday through Friday
	// ---
	// Services include:
	// Showers mo-fr
}

// Example_document demonstrates building a styled review page.
func Example_document() {
	f, err := svcfmt.NewFormatter(svcfmt.WithStyle(".service-description { color: navy; }"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page := f.Document("Open mo-fr", "Drop-in center")
	if strings.Contains(page, "color: navy") && strings.Contains(page, "Monday through Friday") {
		fmt.Println("review page generated")
	}
	// Output: review page generated
}
