package arabdict

import (
	"errors"
	"testing"
)

func TestParseWordRoundTrip(t *testing.T) {
	tests := []string{
		"كَتَبَ",
		"يَكْتُبُونَ",
		"عَلَّمَ",
		"أَكَلَ",
		"آكُلُ",
		"مَكْتُوب",
	}
	for _, s := range tests {
		w, err := ParseWord(s)
		if err != nil {
			t.Fatalf("ParseWord(%q): %v", s, err)
		}
		if got := w.String(); got != s {
			t.Errorf("ParseWord(%q).String() = %q, want %q", s, got, s)
		}
	}
}

func TestParseWordMarkOrder(t *testing.T) {
	shaddaFirst := MustParseWord("\u0639\u064e\u0644\u0651\u064e\u0645\u064e")
	vowelFirst := MustParseWord("\u0639\u064e\u0644\u064e\u0651\u0645\u064e")
	if !shaddaFirst.Equal(vowelFirst) {
		t.Errorf("mark order changed the word: %q vs %q", shaddaFirst, vowelFirst)
	}
	if !vowelFirst[1].Shadda || vowelFirst[1].Tashkil != Fatha {
		t.Errorf("second grapheme = %+v, want shadda with fatha", vowelFirst[1])
	}
}

func TestParseWordTatweel(t *testing.T) {
	got := MustParseWord("كَـتَبَ")
	if want := MustParseWord("كَتَبَ"); !got.Equal(want) {
		t.Errorf("tatweel not ignored: %q", got)
	}
}

func TestParseWordMalformed(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"ّكتب",
		"كَُتب",
		"كّّتب",
		"كَتَبَ 1",
	}
	for _, s := range tests {
		if _, err := ParseWord(s); !errors.Is(err, ErrMalformedWord) {
			t.Errorf("ParseWord(%q) error = %v, want ErrMalformedWord", s, err)
		}
	}
}

func TestBuckwalter(t *testing.T) {
	tests := []struct {
		arabic, bw string
	}{
		{"كَتَبَ", "kataba"},
		{"عَلَّمَ", "Eal~ama"},
		{"أَكَلَ", ">akala"},
		{"يَقْرَأُ", "yaqora>u"},
		{"رَمَى", "ramaY"},
		{"مَدْرَسَة", "madorasap"},
		{"شَيْءٌ", "$ayo'N"},
		{"اِسْتَغْفَرُوا", "AisotagofaruwA"},
	}
	for _, tc := range tests {
		if got := MustParseWord(tc.arabic).Buckwalter(); got != tc.bw {
			t.Errorf("Buckwalter(%q) = %q, want %q", tc.arabic, got, tc.bw)
		}
		w, err := ParseBuckwalter(tc.bw)
		if err != nil {
			t.Fatalf("ParseBuckwalter(%q): %v", tc.bw, err)
		}
		if got := w.String(); got != tc.arabic {
			t.Errorf("ParseBuckwalter(%q) = %q, want %q", tc.bw, got, tc.arabic)
		}
	}
}

func TestBuckwalterRoundTrip(t *testing.T) {
	for _, s := range []string{"مُتَعَلِّمُونَ", "يُؤَدِّي", "آخُذْ", "إِسْتِقْبَالٌ", "قَاضٍ", "بْيِتْغَذَّى"} {
		w := MustParseWord(s)
		back, err := ParseBuckwalter(w.Buckwalter())
		if err != nil {
			t.Fatalf("ParseBuckwalter(%q): %v", w.Buckwalter(), err)
		}
		if !back.Equal(w) {
			t.Errorf("round trip of %q gave %q via %q", s, back, w.Buckwalter())
		}
	}
}

func TestSkeleton(t *testing.T) {
	if got := MustParseWord("يَكْتُبُ").Skeleton(); got != "يكتب" {
		t.Errorf("Skeleton = %q, want %q", got, "يكتب")
	}
}
