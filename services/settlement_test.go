package services

import (
	"testing"

	"bolao/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testPool(stake, initialPrize, share string) *models.Pool {
	return &models.Pool{
		StakeAmount:       dec(stake),
		InitialPrize:      dec(initialPrize),
		PrizeSharePercent: dec(share),
	}
}

func wagerAt(userID uint, home, away int, stake string) models.Wager {
	return models.Wager{
		UserID:           userID,
		GuessedScoreHome: home,
		GuessedScoreAway: away,
		StakeAmount:      dec(stake),
		Status:           models.WagerStatusOpen,
	}
}

func TestResolveSingleWinner(t *testing.T) {
	pool := testPool("20", "0", "0.9")
	wagers := []models.Wager{
		wagerAt(1, 2, 1, "20"),
		wagerAt(2, 0, 0, "20"),
		wagerAt(3, 3, 1, "20"),
	}

	out := resolve(pool, wagers, 2, 1)

	if len(out.Winners) != 1 || len(out.Losers) != 2 {
		t.Fatalf("winners=%d losers=%d, want 1/2", len(out.Winners), len(out.Losers))
	}
	if out.Winners[0].UserID != 1 {
		t.Fatalf("wrong winner: user %d", out.Winners[0].UserID)
	}
	if !out.TotalStaked.Equal(dec("60")) {
		t.Fatalf("totalStaked = %s, want 60", out.TotalStaked)
	}
	if !out.PrizePool.Equal(dec("54")) {
		t.Fatalf("prizePool = %s, want 54", out.PrizePool)
	}
	if !out.PrizePerWinner.Equal(dec("54")) {
		t.Fatalf("prizePerWinner = %s, want 54", out.PrizePerWinner)
	}
}

func TestResolveNoWinners(t *testing.T) {
	pool := testPool("20", "0", "0.9")
	wagers := []models.Wager{
		wagerAt(1, 1, 1, "20"),
		wagerAt(2, 0, 0, "20"),
		wagerAt(3, 3, 1, "20"),
	}

	out := resolve(pool, wagers, 2, 1)

	if len(out.Winners) != 0 {
		t.Fatalf("winners = %d, want 0", len(out.Winners))
	}
	if len(out.Losers) != 3 {
		t.Fatalf("losers = %d, want 3", len(out.Losers))
	}
	if !out.PrizePerWinner.IsZero() {
		t.Fatalf("prizePerWinner = %s, want 0", out.PrizePerWinner)
	}
	// The pot is still computed; it just has nobody to go to.
	if !out.PrizePool.Equal(dec("54")) {
		t.Fatalf("prizePool = %s, want 54", out.PrizePool)
	}
}

func TestResolveZeroWagers(t *testing.T) {
	pool := testPool("20", "0", "0.9")

	out := resolve(pool, nil, 2, 1)

	if len(out.Winners) != 0 || len(out.Losers) != 0 {
		t.Fatalf("unexpected wagers in outcome")
	}
	if !out.TotalStaked.IsZero() {
		t.Fatalf("totalStaked = %s, want 0", out.TotalStaked)
	}
	if !out.PrizePool.IsZero() {
		t.Fatalf("prizePool = %s, want 0", out.PrizePool)
	}
}

// Exact-score rule: one coordinate off is a loss, swapped scores are a loss.
func TestResolveExactScoreOnly(t *testing.T) {
	pool := testPool("10", "0", "1")
	cases := []struct {
		name       string
		home, away int
		wins       bool
	}{
		{"exact", 2, 1, true},
		{"home off by one", 3, 1, false},
		{"away off by one", 2, 2, false},
		{"swapped", 1, 2, false},
		{"both off", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := resolve(pool, []models.Wager{wagerAt(1, tc.home, tc.away, "10")}, 2, 1)
			won := len(out.Winners) == 1
			if won != tc.wins {
				t.Fatalf("guess %d-%d on final 2-1: won=%v, want %v", tc.home, tc.away, won, tc.wins)
			}
		})
	}
}

func TestResolveEqualSplit(t *testing.T) {
	pool := testPool("10", "0", "1")
	wagers := []models.Wager{
		wagerAt(1, 1, 0, "10"),
		wagerAt(2, 1, 0, "10"),
		wagerAt(3, 1, 0, "10"),
		wagerAt(4, 5, 5, "10"),
	}

	out := resolve(pool, wagers, 1, 0)

	if len(out.Winners) != 3 {
		t.Fatalf("winners = %d, want 3", len(out.Winners))
	}
	// 40 / 3 winners, bankers-rounded to the cent.
	if !out.PrizePerWinner.Equal(dec("13.33")) {
		t.Fatalf("prizePerWinner = %s, want 13.33", out.PrizePerWinner)
	}
}

func TestResolveBankersRounding(t *testing.T) {
	// prizePool 0.25 split between two winners: 0.125 rounds half-even to 0.12.
	pool := testPool("0.25", "0", "0.5")
	wagers := []models.Wager{
		wagerAt(1, 0, 0, "0.25"),
		wagerAt(2, 0, 0, "0.25"),
	}

	out := resolve(pool, wagers, 0, 0)

	if !out.PrizePool.Equal(dec("0.25")) {
		t.Fatalf("prizePool = %s, want 0.25", out.PrizePool)
	}
	if !out.PrizePerWinner.Equal(dec("0.12")) {
		t.Fatalf("prizePerWinner = %s, want 0.12", out.PrizePerWinner)
	}
}

func TestResolveInitialPrizeSeedsThePot(t *testing.T) {
	pool := testPool("20", "100", "0.9")
	wagers := []models.Wager{wagerAt(1, 2, 1, "20")}

	out := resolve(pool, wagers, 2, 1)

	// 100 + 20*0.9
	if !out.PrizePool.Equal(dec("118")) {
		t.Fatalf("prizePool = %s, want 118", out.PrizePool)
	}
	if !out.PrizePerWinner.Equal(dec("118")) {
		t.Fatalf("prizePerWinner = %s, want 118", out.PrizePerWinner)
	}
}

// Stakes copied at placement time can differ between wagers after a pool edit;
// the pot sums what was actually staked.
func TestResolveMixedStakes(t *testing.T) {
	pool := testPool("30", "0", "1")
	wagers := []models.Wager{
		wagerAt(1, 2, 1, "20"),
		wagerAt(2, 2, 1, "30"),
	}

	out := resolve(pool, wagers, 2, 1)

	if !out.TotalStaked.Equal(dec("50")) {
		t.Fatalf("totalStaked = %s, want 50", out.TotalStaked)
	}
	if !out.PrizePerWinner.Equal(dec("25")) {
		t.Fatalf("prizePerWinner = %s, want 25", out.PrizePerWinner)
	}
}

func TestSettlePoolRejectsNegativeScore(t *testing.T) {
	_, err := SettlePool(1, 1, -1, 0)
	if err == nil {
		t.Fatal("expected error for negative score")
	}
	if KindOf(err) != KindFailedPrecondition {
		t.Fatalf("kind = %v, want KindFailedPrecondition", KindOf(err))
	}
}
