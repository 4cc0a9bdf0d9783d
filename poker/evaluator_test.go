package poker

import "testing"

func mustParseHand(t *testing.T, cards ...string) Hand {
	t.Helper()
	var h Hand
	for _, s := range cards {
		c, err := ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", s, err)
		}
		h.AddCard(c)
	}
	return h
}

func TestEvaluate7CardsCategories(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want Category
	}{
		{"straight flush", mustParseHand(t, "As", "Ks", "Qs", "Js", "Ts", "2h", "3d"), CategoryStraightFlush},
		{"quads", mustParseHand(t, "7s", "7h", "7d", "7c", "2s", "3s", "4s"), CategoryQuads},
		{"full house", mustParseHand(t, "As", "Ah", "Kd", "Kc", "Ks", "2c", "3c"), CategoryFullHouse},
		{"flush", mustParseHand(t, "As", "Qs", "Ts", "8s", "6s", "2h", "3d"), CategoryFlush},
		{"straight", mustParseHand(t, "Ts", "9h", "8d", "7c", "6s", "2h", "4d"), CategoryStraight},
		{"wheel straight", mustParseHand(t, "As", "5h", "4d", "3c", "2s", "7h", "9d"), CategoryStraight},
		{"trips", mustParseHand(t, "As", "Ah", "Ad", "Ks", "Qh", "2d", "3c"), CategoryTrips},
		{"two pair", mustParseHand(t, "As", "Ah", "Kd", "Kc", "Qs", "5h", "6d"), CategoryTwoPair},
		{"one pair", mustParseHand(t, "As", "Ah", "Kd", "Qc", "Js", "5h", "6d"), CategoryPair},
		{"high card", mustParseHand(t, "As", "Kh", "Qd", "Jc", "9s", "5h", "6d"), CategoryHighCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := Evaluate7Cards(tc.hand)
			if got := score.Category(); got != tc.want {
				t.Errorf("category = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCompareHandsQuadsBeatsFlush(t *testing.T) {
	quads := Evaluate7Cards(mustParseHand(t, "7s", "7h", "7d", "7c", "2s", "3s", "4s"))
	flush := Evaluate7Cards(mustParseHand(t, "As", "Qs", "Ts", "8s", "6s", "2h", "3d"))
	if CompareHands(quads, flush) != 1 {
		t.Fatalf("expected quads to beat flush")
	}
}

func TestWheelLosesToSixHighStraight(t *testing.T) {
	wheel := Evaluate7Cards(mustParseHand(t, "As", "5h", "4d", "3c", "2s", "7h", "9d"))
	sixHigh := Evaluate7Cards(mustParseHand(t, "6s", "5h", "4d", "3c", "2h", "9d", "Jc"))
	if CompareHands(sixHigh, wheel) != 1 {
		t.Fatalf("expected six-high straight to beat the wheel")
	}
}

func TestSixHighStraightBeatsWheelWhenBothFit(t *testing.T) {
	// A,2,3,4,5,6 contains the wheel's bits (A2345) and a genuine 6-high
	// straight (23456); the 6-high straight must win the scoring, not the
	// wheel picked up by an early wheel check.
	sixHighContainsWheel := Evaluate7Cards(mustParseHand(t, "As", "2h", "3d", "4c", "5s", "6h", "9d"))
	wheelOnly := Evaluate7Cards(mustParseHand(t, "As", "5h", "4d", "3c", "2s", "9h", "Jd"))
	if CompareHands(sixHighContainsWheel, wheelOnly) != 1 {
		t.Fatalf("expected A2345+6 to score as a 6-high straight, beating a plain wheel")
	}
	if sixHighContainsWheel.Category() != CategoryStraight {
		t.Fatalf("expected a straight category, got %s", sixHighContainsWheel.Category())
	}
}

func TestFullHouseTiebreakPrefersHigherTrips(t *testing.T) {
	aaaKK := Evaluate7Cards(mustParseHand(t, "As", "Ah", "Ad", "Kc", "Ks", "2c", "3c"))
	kkkAA := Evaluate7Cards(mustParseHand(t, "Ks", "Kh", "Kd", "Ac", "As", "2c", "3c"))
	if CompareHands(aaaKK, kkkAA) != 1 {
		t.Fatalf("AAA KK full house should beat KKK AA full house")
	}
}
