package ofximport

import (
	"errors"
	"strings"
)

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDENT      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

// narrationSeparator joins the text fields that make up a narration.
const narrationSeparator = " / "

// buildTransaction converts a single STMTTRN node into a ledger transaction
// with one posting on the given account.
//
// The narration is synthesized from the name, memo and transaction type
// fields. Memos that duplicate the name are dropped, as are the generic
// DEBIT/CREDIT types which add no information.
func buildTransaction(stmttrn *Node, flag, account, currency string) (*Transaction, error) {
	posted, err := stmttrn.ChildTime("DTPOSTED")
	if err != nil {
		return nil, err
	}
	if posted == nil {
		return nil, errors.New("error - transaction is missing DTPOSTED")
	}

	// There is no distinct payee field in this format.
	name := stmttrn.ChildUnescaped("NAME")
	memo := stmttrn.ChildUnescaped("MEMO")
	if name != nil && memo != nil && *memo == *name {
		memo = nil
	}
	trntype := stmttrn.ChildUnescaped("TRNTYPE")
	if trntype != nil {
		switch TransactionType(*trntype) {
		case DEBIT, CREDIT:
			trntype = nil
		}
	}

	var parts []string
	for _, part := range []*string{name, memo, trntype} {
		if part != nil && *part != "" {
			parts = append(parts, *part)
		}
	}

	number, err := stmttrn.ChildDecimal("TRNAMT")
	if err != nil {
		return nil, err
	}
	if number == nil {
		return nil, errors.New("error - transaction is missing TRNAMT")
	}

	return &Transaction{
		Date:      DateOnly(*posted),
		Flag:      flag,
		Narration: strings.Join(parts, narrationSeparator),
		Postings: []Posting{{
			Account: account,
			Units:   Amount{Number: *number, Currency: currency},
		}},
	}, nil
}
