package poker

import "testing"

func mustParse(t *testing.T, s string) Card {
	t.Helper()
	c, err := ParseCard(s)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", s, err)
	}
	return c
}

func TestCategorizeHoleCardsBuckets(t *testing.T) {
	cases := map[HoleCardCategory][][2]string{
		CategoryPremium: {
			{"As", "Ah"}, {"Kh", "Kd"}, {"Qc", "Qs"}, {"Jh", "Jd"},
			{"As", "Ks"}, {"Ac", "Kh"},
		},
		CategoryStrong: {
			{"Tc", "Th"}, {"As", "Qs"}, {"Ac", "Qh"}, {"As", "Js"}, {"Ad", "Jc"},
		},
		CategoryMedium: {
			{"9c", "9h"}, {"8d", "8s"}, {"7h", "7c"},
			{"Ks", "Qs"}, {"Kh", "Jh"}, {"Qd", "Jd"},
		},
		CategoryWeak: {
			{"6c", "6h"}, {"5d", "5s"}, {"4h", "4c"}, {"3s", "3d"}, {"2c", "2h"},
			{"7h", "6h"}, {"5d", "4d"},
		},
		CategoryTrash: {
			{"7c", "2h"}, {"9d", "3s"}, {"Jh", "4c"},
		},
	}

	for want, pairs := range cases {
		for _, p := range pairs {
			c1, c2 := mustParse(t, p[0]), mustParse(t, p[1])
			if got := CategorizeHoleCards(c1, c2); got != want {
				t.Errorf("CategorizeHoleCards(%s, %s) = %s, want %s", p[0], p[1], got, want)
			}
		}
	}
}

func TestCategorizeHandMatchesCardPair(t *testing.T) {
	h := NewHand(mustParse(t, "As"), mustParse(t, "Ks"))
	if got := CategorizeHand(h); got != CategoryPremium {
		t.Errorf("CategorizeHand(AsKs) = %s, want %s", got, CategoryPremium)
	}
}

func TestCategorizeHandWrongCountIsUnknown(t *testing.T) {
	var h Hand
	h.AddCard(mustParse(t, "As"))
	if got := CategorizeHand(h); got != CategoryUnknown {
		t.Errorf("CategorizeHand(one card) = %s, want %s", got, CategoryUnknown)
	}

	h.AddCard(mustParse(t, "Ks"))
	h.AddCard(mustParse(t, "Qs"))
	if got := CategorizeHand(h); got != CategoryUnknown {
		t.Errorf("CategorizeHand(three cards) = %s, want %s", got, CategoryUnknown)
	}
}

func TestCategorizeHoleCardsFromStrings(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		expected string
	}{
		{"premium AA", []string{"As", "Ah"}, "Premium"},
		{"strong AQ", []string{"As", "Qh"}, "Strong"},
		{"medium 88", []string{"8c", "8h"}, "Medium"},
		{"weak 22", []string{"2c", "2h"}, "Weak"},
		{"trash 72o", []string{"7c", "2h"}, "Trash"},
		{"too many cards", []string{"As", "Ah", "Ac"}, "Unknown"},
		{"too few cards", []string{"As"}, "Unknown"},
		{"bad card format", []string{"XX", "YY"}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeHoleCardsFromStrings(tt.cards); got != tt.expected {
				t.Errorf("CategorizeHoleCardsFromStrings(%v) = %s, want %s", tt.cards, got, tt.expected)
			}
		})
	}
}
