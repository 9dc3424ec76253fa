/**
 * @description
 * This file partitions a user's raw account list into the two sets the canvas
 * renders: live accounts and the most recently ended ones.
 */
package app

import (
	"sort"

	"github.com/kosarlukascz/intercomproxy/internal/domain"
)

// endedWindow caps how many ended accounts the canvas shows. Support agents
// only ever need the recent history; the full list lives in the admin
// dashboard.
const endedWindow = 5

// Classify splits accounts into live and recently-ended sets. Every account
// lands in exactly one set based on its state; both sets are ordered newest
// first. The ended set is truncated to the endedWindow most recent entries.
// Ties on creation time keep their original relative order.
func Classify(accounts []domain.AccountRecord) (live, endedRecent []domain.AccountRecord) {
	for _, a := range accounts {
		if a.State.IsLive() {
			live = append(live, a)
		} else {
			endedRecent = append(endedRecent, a)
		}
	}

	byNewest := func(s []domain.AccountRecord) func(i, j int) bool {
		return func(i, j int) bool { return s[i].CreatedAt.After(s[j].CreatedAt) }
	}
	sort.SliceStable(live, byNewest(live))
	sort.SliceStable(endedRecent, byNewest(endedRecent))

	if len(endedRecent) > endedWindow {
		endedRecent = endedRecent[:endedWindow]
	}
	return live, endedRecent
}
