package geo

import (
	"cmp"
	"slices"

	"github.com/udisondev/tilewalk/internal/model"
)

// Resolution is the outcome of resolving one step's landing height.
type Resolution struct {
	// MinZ and MaxZ bound the heights reachable from the origin column.
	MinZ, MaxZ int
	Landing    int
}

// ResolveStepZ computes the landing Z of a step heading dir from the origin
// column to the dest column. The dest column is sorted in place and gets a
// sentinel appended.
// Returns false when dest offers no landing.
func ResolveStepZ(origin, dest *Column, dir model.Direction, currentZ int, state StepState) (Resolution, bool) {
	if origin.Len() == 0 || dest.Len() == 0 {
		return Resolution{Landing: MinZ}, false
	}

	minZ, maxZ := standableBand(origin, dir, currentZ)
	landing, ok := landingZ(dest, state, currentZ, minZ, maxZ)
	return Resolution{MinZ: minZ, MaxZ: maxZ, Landing: landing}, ok
}

// standableBand computes [minZ, maxZ] on the column the avatar stands on.
// Stretched terrain under the avatar is interpolated along dir.
func standableBand(origin *Column, dir model.Direction, currentZ int) (minZ, maxZ int) {
	minZ, maxZ = MinZ, currentZ

	for _, e := range origin.entries {
		if land, ok := e.Source.(*model.Land); ok && land.Stretched() && e.AverageZ <= currentZ {
			avg := land.CurrentAverageZ(dir)
			minZ = max(minZ, avg)
			maxZ = max(maxZ, avg)
			continue
		}

		if e.Flags.Has(FlagImpassableOrSurface) && e.AverageZ <= currentZ {
			minZ = max(minZ, e.AverageZ)
		}
		if e.Flags.Has(FlagBridge) && e.AverageZ == currentZ {
			maxZ = max(maxZ, e.Z+e.Height)
			minZ = min(minZ, e.Z)
		}
	}

	return minZ, maxZ + stepClearance
}

// landingZ picks the surface of dest the avatar lands on: a surface or
// bridge inside the band with DefaultBlockHeight of headroom below the next
// blocking entry, closest to z.
func landingZ(dest *Column, state StepState, z, minZ, maxZ int) (int, bool) {
	slices.SortStableFunc(dest.entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Z, b.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.Height, b.Height)
	})
	dest.add(FlagImpassableOrSurface, SentinelZ, SentinelZ, SentinelZ, nil)

	z = max(z, minZ)

	result := MinZ
	currentZ := MinZ
	bestDelta := 1000000

	entries := dest.entries
	for i, e := range entries {
		if state == StepFlying && e.Flags.Has(FlagNoDiagonal) && abs(e.AverageZ-z) <= flyingSnapDistance {
			if e.AverageZ != MinZ {
				result = e.AverageZ
			} else {
				result = currentZ
			}
			break
		}

		if !e.Flags.Has(FlagImpassableOrSurface) {
			continue
		}

		if e.Z-minZ >= DefaultBlockHeight {
			for j := i - 1; j >= 0; j-- {
				below := entries[j]
				if !below.Flags.Has(FlagSurface | FlagBridge) {
					continue
				}
				if below.AverageZ < currentZ || e.Z-below.AverageZ < DefaultBlockHeight {
					continue
				}
				onSurface := below.Flags.Has(FlagSurface) && below.AverageZ <= maxZ
				onBridge := below.Flags.Has(FlagBridge) && below.Z <= maxZ
				if !onSurface && !onBridge {
					continue
				}
				if d := abs(z - below.AverageZ); d < bestDelta {
					bestDelta = d
					result = below.AverageZ
				}
			}
		}

		minZ = max(minZ, e.AverageZ)
		currentZ = max(currentZ, e.AverageZ)
	}

	return result, result != MinZ
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
