package poker

import (
	"math/bits"
	"testing"

	"github.com/lox/pokersolver/internal/fastrng"
)

func TestNewCardRankAndSuit(t *testing.T) {
	t.Parallel()
	cases := []struct {
		rank Rank
		suit Suit
		want string
	}{
		{Ace, Spades, "As"},
		{Two, Clubs, "2c"},
		{King, Diamonds, "Kd"},
		{Ten, Hearts, "Th"},
	}

	for _, tc := range cases {
		c := NewCard(tc.rank, tc.suit)
		if c.Rank() != tc.rank {
			t.Errorf("NewCard(%d, %d).Rank() = %d, want %d", tc.rank, tc.suit, c.Rank(), tc.rank)
		}
		if c.Suit() != tc.suit {
			t.Errorf("NewCard(%d, %d).Suit() = %d, want %d", tc.rank, tc.suit, c.Suit(), tc.suit)
		}
		if c.String() != tc.want {
			t.Errorf("NewCard(%d, %d).String() = %q, want %q", tc.rank, tc.suit, c.String(), tc.want)
		}
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	valid := []struct {
		input string
		want  Card
	}{
		{"As", NewCard(Ace, Spades)},
		{"2h", NewCard(Two, Hearts)},
		{"Kd", NewCard(King, Diamonds)},
		{"Tc", NewCard(Ten, Clubs)},
		{"9s", NewCard(Nine, Spades)},
	}
	for _, tc := range valid {
		got, err := ParseCard(tc.input)
		if err != nil {
			t.Errorf("ParseCard(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	invalid := []string{"Xs", "Ax", "", "A", "Asd"}
	for _, input := range invalid {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("ParseCard(%q) expected an error, got nil", input)
		}
	}
}

func TestAll52CardsRoundTripAndUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool, 52)

	for suit := Suit(0); suit < 4; suit++ {
		for rank := Rank(0); rank < 13; rank++ {
			card := NewCard(rank, suit)
			str := card.String()

			if seen[str] {
				t.Fatalf("duplicate card rendering: %s", str)
			}
			seen[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Fatalf("ParseCard(%s): %v", str, err)
			}
			if parsed != card {
				t.Fatalf("round-trip failed for %s", str)
			}
		}
	}

	if len(seen) != 52 {
		t.Fatalf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestCardsAreDisjointBits(t *testing.T) {
	t.Parallel()
	as, _ := ParseCard("As")
	ah, _ := ParseCard("Ah")
	tc, _ := ParseCard("2c")

	for _, c := range []Card{as, ah, tc} {
		if bits.OnesCount64(uint64(c)) != 1 {
			t.Errorf("card %s should occupy exactly one bit", c)
		}
	}
	if as&ah != 0 || as&tc != 0 || ah&tc != 0 {
		t.Error("distinct cards should never share a bit")
	}
}

func TestHandAddRemoveHasCount(t *testing.T) {
	t.Parallel()
	as, _ := ParseCard("As")
	kh, _ := ParseCard("Kh")
	qd, _ := ParseCard("Qd")

	hand := NewHand(as, kh)
	if !hand.HasCard(as) || !hand.HasCard(kh) {
		t.Fatal("hand should contain both constructor cards")
	}
	if hand.HasCard(qd) {
		t.Fatal("hand should not contain a card it was never given")
	}
	if hand.CountCards() != 2 {
		t.Fatalf("expected 2 cards, got %d", hand.CountCards())
	}

	hand.AddCard(qd)
	if !hand.HasCard(qd) || hand.CountCards() != 3 {
		t.Fatal("AddCard should grow the hand by one card")
	}

	hand.RemoveCard(kh)
	if hand.HasCard(kh) || hand.CountCards() != 2 {
		t.Fatal("RemoveCard should shrink the hand by one card")
	}
}

func TestHandGetCardAndCardsAreConsistent(t *testing.T) {
	t.Parallel()
	as, _ := ParseCard("As")
	kh, _ := ParseCard("Kh")
	qd, _ := ParseCard("Qd")
	hand := NewHand(as, kh, qd)

	got := hand.Cards()
	if len(got) != 3 {
		t.Fatalf("expected 3 cards from Cards(), got %d", len(got))
	}
	for i, c := range got {
		if hand.GetCard(i) != c {
			t.Errorf("GetCard(%d) = %v, want %v", i, hand.GetCard(i), c)
		}
	}
	if hand.GetCard(3) != 0 {
		t.Error("GetCard past the end should return 0")
	}
}

func TestHandExcludeAndUnion(t *testing.T) {
	t.Parallel()
	as, _ := ParseCard("As")
	kh, _ := ParseCard("Kh")
	qd, _ := ParseCard("Qd")

	full := NewHand(as, kh, qd)
	trimmed := full.Exclude(NewHand(kh))
	if trimmed.HasCard(kh) {
		t.Error("Exclude should remove the masked card")
	}
	if !trimmed.HasCard(as) || !trimmed.HasCard(qd) {
		t.Error("Exclude should leave unmasked cards in place")
	}

	rejoined := trimmed.Union(NewHand(kh))
	if rejoined.CountCards() != 3 {
		t.Errorf("Union should restore the excluded card, got %d cards", rejoined.CountCards())
	}
}

func TestGetSuitMaskIsolatesOneSuit(t *testing.T) {
	t.Parallel()
	var spadeCards []Card
	for rank := Rank(0); rank < 13; rank++ {
		spadeCards = append(spadeCards, NewCard(rank, Spades))
	}
	hand := NewHand(spadeCards...)

	if mask := hand.GetSuitMask(Spades); mask != 0x1FFF {
		t.Errorf("expected all 13 spade bits set, got %013b", mask)
	}
	if mask := hand.GetSuitMask(Hearts); mask != 0 {
		t.Errorf("expected hearts mask empty, got %013b", mask)
	}
}

func TestDeckDealAndReset(t *testing.T) {
	t.Parallel()
	deck := NewDeck(fastrng.New(42))

	first := deck.Deal(2)
	second := deck.Deal(3)
	if len(first) != 2 || len(second) != 3 {
		t.Fatalf("expected 2 then 3 cards dealt, got %d then %d", len(first), len(second))
	}
	for _, c1 := range first {
		for _, c2 := range second {
			if c1 == c2 {
				t.Fatalf("dealt %s twice across separate Deal calls", c1)
			}
		}
	}

	remaining := deck.Deal(47)
	if len(remaining) != 47 {
		t.Fatalf("expected 47 remaining cards, got %d", len(remaining))
	}
	if extra := deck.Deal(1); extra != nil {
		t.Fatal("dealing from an empty deck should return nil")
	}

	deck.Reset()
	if got := deck.Deal(2); len(got) != 2 {
		t.Fatal("deck should deal normally again after Reset")
	}
}

func TestNewDeckExcludingBoundsDealsOnEffectiveSize(t *testing.T) {
	t.Parallel()
	as, _ := ParseCard("As")
	kh, _ := ParseCard("Kh")
	dead := NewHand(as, kh)

	deck := NewDeckExcluding(fastrng.New(7), dead)
	if got := deck.CardsRemaining(); got != 50 {
		t.Fatalf("expected 50 cards remaining, got %d", got)
	}

	dealt := deck.Deal(50)
	if len(dealt) != 50 {
		t.Fatalf("expected to deal all 50 survivors, got %d", len(dealt))
	}
	for _, c := range dealt {
		if c == as || c == kh {
			t.Fatalf("dealt an excluded card: %s", c)
		}
	}

	if extra := deck.Deal(1); extra != nil {
		t.Fatal("dealing past the excluded deck's effective size should fail, not return dead-tail sentinels")
	}
	if one := deck.DealOne(); one != 0 {
		t.Fatalf("DealOne past effective size should return 0, got %v", one)
	}
}

func BenchmarkCardCreation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewCard(Ace, Spades)
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}

func BenchmarkHandAddAndCount(b *testing.B) {
	c1 := NewCard(Ace, Spades)
	c2 := NewCard(King, Hearts)
	c3 := NewCard(Queen, Diamonds)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hand := NewHand(c1, c2)
		hand.AddCard(c3)
		_ = hand.CountCards()
	}
}
