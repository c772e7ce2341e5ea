package recall

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot is a copy of the observable session state, used by tests
// and the platform's state inspector.
type Snapshot struct {
	Mode         string
	TriLevel     int
	EndlessLevel int
	EndlessRound uint32

	Cols      int
	Rows      int
	MatchSize int

	Tiles   []Tile
	Flipped []int

	SecondsElapsed uint32
	RunMatches     uint32
	RunMismatches  uint32
	Pressure       PressureState

	Preview   bool
	Locked    bool
	Completed bool
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	grid := s.grid
	return Snapshot{
		Mode:           s.mode.Code(),
		TriLevel:       s.triLevel,
		EndlessLevel:   s.endlessLevel,
		EndlessRound:   s.endlessRound,
		Cols:           grid.Cols,
		Rows:           grid.Rows,
		MatchSize:      grid.MatchSize,
		Tiles:          append([]Tile(nil), s.tiles...),
		Flipped:        append([]int(nil), s.flipped...),
		SecondsElapsed: s.secondsElapsed,
		RunMatches:     s.runMatches,
		RunMismatches:  s.runMismatches,
		Pressure:       s.pressure,
		Preview:        s.preview,
		Locked:         s.lockInput,
		Completed:      s.completed,
	}
}

// Hash returns a stable digest of the snapshot, handy for divergence
// checks between two sessions fed the same inputs.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	h.Write([]byte(snap.Mode))
	writeInt(uint64(snap.TriLevel))
	writeInt(uint64(snap.EndlessLevel))
	writeInt(uint64(snap.EndlessRound))
	writeInt(uint64(snap.Cols))
	writeInt(uint64(snap.Rows))
	writeInt(uint64(snap.MatchSize))
	for _, tile := range snap.Tiles {
		h.Write([]byte(tile.Value))
		writeInt(uint64(tile.Status))
	}
	for _, idx := range snap.Flipped {
		writeInt(uint64(idx))
	}
	writeInt(uint64(snap.SecondsElapsed))
	writeInt(uint64(snap.RunMatches))
	writeInt(uint64(snap.RunMismatches))
	writeInt(uint64(int64(snap.Pressure.MismatchStreak)))
	writeInt(uint64(int64(snap.Pressure.PunishStage)))
	writeInt(uint64(int64(snap.Pressure.LastFirstPick)))
	writeInt(uint64(int64(snap.Pressure.SameFirstStreak)))

	return h.Sum64()
}
