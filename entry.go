package ofximport

import (
	"sort"
	"time"

	"github.com/rockstardevs/decimal"
)

// FlagOkay marks a completed transaction in the output ledger.
const FlagOkay = "*"

// Meta records the provenance of an extracted entry: the source file and a
// per file monotonic ordinal. The ordinal is distinct from the entry date
// and keeps output deterministic when multiple entries share a date.
type Meta struct {
	Filename string
	Ordinal  int
}

// Amount is a number of units of a single currency. The number keeps the
// exact precision of its source representation.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

// Posting is one leg of a transaction.
type Posting struct {
	Account string
	Units   Amount
}

// Entry is a single directive extracted from a statement file.
type Entry interface {
	EntryDate() time.Time
	EntryMeta() Meta
}

// Transaction is an extracted ledger transaction.
//
// Statements downloaded from an institution describe only their own side of
// each transaction, so extracted transactions intentionally carry a single
// posting; the offsetting leg is left for categorization downstream.
type Transaction struct {
	Meta      Meta
	Date      time.Time
	Flag      string
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Postings  []Posting
}

func (t *Transaction) EntryDate() time.Time { return t.Date }
func (t *Transaction) EntryMeta() Meta      { return t.Meta }

// BalanceAssertion asserts that the account balance equals the given amount
// as of the start of the given date.
type BalanceAssertion struct {
	Meta    Meta
	Date    time.Time
	Account string
	Amount  Amount
}

func (b *BalanceAssertion) EntryDate() time.Time { return b.Date }
func (b *BalanceAssertion) EntryMeta() Meta      { return b.Meta }

// SortEntries sorts the given entries in place by the canonical ledger
// ordering, date first with the file ordinal as a stable tiebreak.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].EntryDate(), entries[j].EntryDate()
		if di.Equal(dj) {
			return entries[i].EntryMeta().Ordinal < entries[j].EntryMeta().Ordinal
		}
		return di.Before(dj)
	})
}
