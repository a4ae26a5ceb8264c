package balance

import (
	"bytes"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

type Key struct {
	ChainID uint64
	Token   common.Address
}

func (k Key) Compare(other Key) int {
	if k.ChainID != other.ChainID {
		if k.ChainID < other.ChainID {
			return -1
		}
		return 1
	}
	return bytes.Compare(k.Token.Bytes(), other.Token.Bytes())
}

type Entry struct {
	Key
	Amount *big.Int
}

// Snapshot is an immutable point-in-time view of an account's balances
// ordered by chain ID and then token address. Chains whose balances could
// not be queried are listed as missing.
type Snapshot struct {
	entries []Entry
	index   map[Key]int
	missing []uint64
}

func NewSnapshot(balances map[Key]*big.Int, missing ...uint64) (*Snapshot, error) {
	entries := make([]Entry, 0, len(balances))
	for k, amount := range balances {
		if amount == nil {
			continue
		}
		if amount.Sign() < 0 {
			return nil, fmt.Errorf("negative balance %s for token %s on chain %d", amount, k.Token.Hex(), k.ChainID)
		}

		entries = append(entries, Entry{
			Key:    k,
			Amount: new(big.Int).Set(amount),
		})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return a.Key.Compare(b.Key)
	})

	index := make(map[Key]int, len(entries))
	for i, e := range entries {
		index[e.Key] = i
	}

	m := slices.Clone(missing)
	slices.Sort(m)
	m = slices.Compact(m)

	return &Snapshot{
		entries: entries,
		index:   index,
		missing: m,
	}, nil
}

// Entries returns a copy of all snapshot entries in chain and token order
func (s *Snapshot) Entries() []Entry {
	entries := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = Entry{
			Key:    e.Key,
			Amount: new(big.Int).Set(e.Amount),
		}
	}
	return entries
}

// Amount returns the balance for the key, zero if the key is not in the snapshot
func (s *Snapshot) Amount(key Key) *big.Int {
	i, ok := s.index[key]
	if !ok {
		return big.NewInt(0)
	}
	return new(big.Int).Set(s.entries[i].Amount)
}

func (s *Snapshot) Missing() []uint64 {
	return slices.Clone(s.missing)
}

func (s *Snapshot) Complete() bool {
	return len(s.missing) == 0
}

func (s *Snapshot) Len() int {
	return len(s.entries)
}
