package arabdict

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVerbalNoun(t *testing.T) {
	tests := []struct {
		root string
		stem int
		want []string
	}{
		{"ك-ت-ب", 2, []string{"تَكْتِيب"}},
		{"ق-ت-ل", 3, []string{"مُقَاتَلَة", "قِتَال"}},
		{"ح-ج-ج", 3, []string{"مُحَاجَّة", "حِجَاج"}},
		{"ك-ر-م", 4, []string{"إِكْرَام"}},
		{"ء-م-ن", 4, []string{"إِيمَان"}},
		{"ق-و-م", 4, []string{"إِقَامَة"}},
		{"ع-ل-م", 5, []string{"تَعَلُّم"}},
		{"س-ء-ل", 6, []string{"تَسَائُل", "تَسَاؤُل"}},
		{"ك-س-ر", 7, []string{"اِنْكِسَار"}},
		{"ص-ب-ر", 8, []string{"اِصْطِبَار"}},
		{"و-ص-ل", 8, []string{"اِتِّصَال"}},
		{"غ-ف-ر", 10, []string{"اِسْتِغْفَار"}},
		{"ز-ل-ز-ل", 1, []string{"زَلْزَلَة"}},
	}
	for _, tc := range tests {
		got, err := verbalNoun(MustRoot(tc.root), tc.stem)
		if err != nil {
			t.Errorf("verbalNoun(%s, %d): %v", tc.root, tc.stem, err)
			continue
		}
		if diff := cmp.Diff(canon(tc.want...), got.Strings()); diff != "" {
			t.Errorf("verbalNoun(%s, %d) mismatch (-want +got):\n%s", tc.root, tc.stem, diff)
		}
	}
}

func TestVerbalNounErrors(t *testing.T) {
	tests := []struct {
		root VerbRoot
		stem int
		want error
	}{
		{VerbRoot{}, 2, ErrInvalidRootRadicals},
		{MustRoot("كتب"), 1, ErrUnsupportedParameterCombination},
		{MustRoot("كتب"), 11, ErrUnsupportedParameterCombination},
		{MustRoot("رمي"), 9, ErrUnsupportedParameterCombination},
		{MustRoot("زلزل"), 3, ErrUnsupportedParameterCombination},
	}
	for _, tc := range tests {
		if _, err := verbalNoun(tc.root, tc.stem); !errors.Is(err, tc.want) {
			t.Errorf("verbalNoun(%s, %d) error = %v, want %v", tc.root, tc.stem, err, tc.want)
		}
	}
}
