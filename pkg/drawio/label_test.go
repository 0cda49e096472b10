package drawio

import "testing"

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain text", "Jane Doe", "Jane Doe"},
		{"surrounding whitespace trimmed", "  Jane Doe  ", "Jane Doe"},
		{"non-breaking space entity", "Jane&nbsp;Doe", "Jane Doe"},
		{"inline markup stripped", `<span style="color: rgb(0, 0, 0);">Jane Doe</span>`, "Jane Doe"},
		{"bold inside div", "<div><b>rico:</b>Person</div>", "rico:Person"},
		{"single line break concatenates", "<div>Jane</div><div><br></div><div>Doe</div>", "JaneDoe"},
		{"adjacent divs concatenate", "<div>Jane</div><div>Doe</div>", "JaneDoe"},
		{"two empty chunks make one paragraph break", "<div>first</div><div><br></div><div><br></div><div>second</div>", "first\n\nsecond"},
		{"three empty chunks still one break", "<div>first</div><div><br></div><div><br></div><div><br></div><div>second</div>", "first\n\nsecond"},
		{"leading empty chunks dropped", "<div><br></div><div><br></div><div>text</div>", "text"},
		{"trailing empty chunks dropped", "<div>text</div><div><br></div><div><br></div>", "text"},
		{"empty label", "", ""},
		{"only breaks", "<div><br></div><div><br></div>", ""},
		{"bare br splits chunks", "Jane<br>Doe", "JaneDoe"},
		{"horizontal rule acts as break", "Jane<hr>Doe", "JaneDoe"},
		{"nested font tags", `<font face="Helvetica"><font style="font-size: 14px;">Oslo</font></font>`, "Oslo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(tt.raw); got != tt.want {
				t.Errorf("ExtractText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
