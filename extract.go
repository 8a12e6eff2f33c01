package ofximport

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/golang/glog"
)

// BalanceType selects how balance assertions are synthesized from a
// statement's ledger balance.
type BalanceType int

const (
	// BalanceNone never inserts a balance assertion.
	BalanceNone BalanceType = iota
	// BalanceDeclared inserts an assertion at the statement's declared
	// as-of date.
	BalanceDeclared
	// BalanceLast inserts an assertion at the date of the statement's last
	// extracted transaction, falling back to the declared date when the
	// statement has no transactions.
	BalanceLast
)

// RecordError describes a single malformed transaction record.
type RecordError struct {
	Filename string
	Ordinal  int
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %d: %s", e.Filename, e.Ordinal, e.Err)
}

// ExtractError aggregates the malformed records encountered while
// extracting a single file. Sibling records remain valid and are still
// returned alongside the error.
type ExtractError struct {
	Filename string
	Records  []*RecordError
}

func (e *ExtractError) Error() string {
	messages := make([]string, 0, len(e.Records))
	for _, r := range e.Records {
		messages = append(messages, r.Error())
	}
	return fmt.Sprintf("error - %d malformed record(s): %s", len(e.Records), strings.Join(messages, "; "))
}

// Extract converts every statement section in the given document tree into
// a sorted sequence of ledger entries.
//
// Statements whose account id does not match acctIDPattern contribute
// nothing. The pattern is matched against the start of the account id, so
// callers wanting an anchored match should compile it with a ^ prefix (see
// NewImporter). Each extracted entry is stamped with the given filename and
// a monotonically increasing ordinal shared across all statements of this
// call.
//
// A transaction node missing a required field is skipped and reported; the
// remaining records of its statement are still extracted and the valid
// entries are returned together with an *ExtractError.
func Extract(root *Node, filename string, acctIDPattern *regexp.Regexp, account, flag string, balanceType BalanceType) ([]Entry, error) {
	var (
		entries = make([]Entry, 0)
		failed  []*RecordError
		counter int
	)
	next := func() int {
		ordinal := counter
		counter++
		return ordinal
	}

	for _, statement := range FindStatements(root) {
		loc := acctIDPattern.FindStringIndex(statement.AccountID)
		if loc == nil || loc[0] != 0 {
			glog.V(2).Infof("skipping statement for account %q, no match for %s", statement.AccountID, acctIDPattern)
			continue
		}

		stmtEntries := make([]Entry, 0, len(statement.Transactions))
		for _, node := range statement.Transactions {
			ordinal := next()
			txn, err := buildTransaction(node, flag, account, statement.Currency)
			if err != nil {
				glog.Warningf("%s: record %d: %s", filename, ordinal, err)
				failed = append(failed, &RecordError{Filename: filename, Ordinal: ordinal, Err: err})
				continue
			}
			txn.Meta = Meta{Filename: filename, Ordinal: ordinal}
			stmtEntries = append(stmtEntries, txn)
		}
		SortEntries(stmtEntries)

		if statement.Balance != nil && balanceType != BalanceNone {
			date := statement.Balance.AsOf
			if balanceType == BalanceLast && len(stmtEntries) > 0 {
				date = stmtEntries[len(stmtEntries)-1].EntryDate()
			}
			// Balance assertions apply at the start of day; the observed
			// amount reflects the end of the prior day, so shift forward
			// by one day.
			date = date.AddDate(0, 0, 1)
			entries = append(entries, &BalanceAssertion{
				Meta:    Meta{Filename: filename, Ordinal: next()},
				Date:    date,
				Account: account,
				Amount:  Amount{Number: statement.Balance.Amount, Currency: statement.Currency},
			})
		}

		entries = append(entries, stmtEntries...)
	}

	SortEntries(entries)
	if len(failed) > 0 {
		return entries, &ExtractError{Filename: filename, Records: failed}
	}
	return entries, nil
}
