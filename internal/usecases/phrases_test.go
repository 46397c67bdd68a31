package usecases

import "testing"

func TestNormalizeLocale(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"fr", LocaleFrench},
		{"rn", LocaleKirundi},
		{"kirundi", LocaleKirundi},
		{"en", LocaleFrench},
		{"xx", LocaleFrench},
		{"", LocaleFrench},
	}
	for _, tc := range cases {
		if got := NormalizeLocale(tc.in); got != tc.want {
			t.Fatalf("NormalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEveryPhraseHasBothLocales(t *testing.T) {
	for key, byLocale := range phrases {
		for _, locale := range []string{LocaleFrench, LocaleKirundi} {
			list, ok := byLocale[locale]
			if !ok || len(list) == 0 || list[0] == "" {
				t.Fatalf("phrase %q missing %s rendering", key, locale)
			}
		}
	}
}

func TestPhraseUnknownLocaleFallsBackToFrench(t *testing.T) {
	if got := phrase(phraseGreeting, "sw"); got != phrases[phraseGreeting][LocaleFrench][0] {
		t.Fatalf("phrase fallback = %q, want French rendering", got)
	}
}
