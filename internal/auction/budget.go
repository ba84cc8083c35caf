package auction

import (
	"sort"

	"github.com/midlaj581/AUCTION-S7/internal/store"
)

// MaxBid computes the most a team may legally bid on the player currently
// under auction without making its minimum squad size unaffordable.
//
// The reserve is the sum of the stillNeed cheapest base prices among the
// remaining available players. When the pool is smaller than stillNeed the
// cheapest found price is repeated to fill the gap (0 with an empty pool).
// That floor is conservative: other teams will also buy from the pool, so
// the real cost of finishing the squad may end up lower. Recomputed on every
// bid attempt against the live pool and the live squad size.
func MaxBid(team store.Team, pool []store.Player, currentPlayerID int, minPlayersPerTeam int) int {
	remaining := team.Remaining()
	stillNeed := minPlayersPerTeam - len(team.Players) - 1
	if stillNeed <= 0 {
		return remaining
	}

	prices := make([]int, 0, len(pool))
	for _, p := range pool {
		if p.Status == store.StatusAvailable && p.ID != currentPlayerID {
			prices = append(prices, p.BasePrice)
		}
	}
	sort.Ints(prices)
	if len(prices) > stillNeed {
		prices = prices[:stillNeed]
	}
	for len(prices) < stillNeed {
		pad := 0
		if len(prices) > 0 {
			pad = prices[len(prices)-1]
		}
		prices = append(prices, pad)
	}

	reserve := 0
	for _, v := range prices {
		reserve += v
	}
	if remaining < reserve {
		return 0
	}
	return remaining - reserve
}
