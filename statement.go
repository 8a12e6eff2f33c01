package ofximport

import (
	"regexp"
	"time"

	"github.com/golang/glog"
	"github.com/rockstardevs/decimal"
)

var (
	// Matches both plain bank (STMTRS) and credit card (CCSTMTRS)
	// statement wrappers.
	statementPattern = regexp.MustCompile(`.*STMTRS$`)
	// Matches transaction lists with an optional bank or credit card prefix.
	tranListPattern = regexp.MustCompile(`^(BANK|CC)?TRANLIST$`)
)

// Balance is an institution reported account balance as of a specific date.
type Balance struct {
	AsOf   time.Time
	Amount decimal.Decimal
}

// Statement is one logical statement section within a document: the
// transactions and balance snapshot for one account/currency pair.
type Statement struct {
	AccountID    string
	Currency     string
	Transactions []*Node
	Balance      *Balance
}

// FindStatements discovers every statement section in the given document
// tree.
//
// For each statement wrapper, one Statement is returned per currency
// definition found. By convention institutions declare the currency once
// per statement, so this degenerates to one Statement per wrapper in the
// common case. Missing or malformed sub nodes degrade to empty values
// rather than failing, so a single bad section never aborts the others.
func FindStatements(root *Node) []Statement {
	var statements []Statement
	for _, stmtrs := range root.FindAll(statementPattern) {
		accountID := ""
		if value := stmtrs.ChildText("ACCTID"); value != nil {
			accountID = *value
		}

		// There is a single ledger balance per statement, shared by all of
		// its transaction lists.
		var balance *Balance
		if ledgerBal := stmtrs.Find("LEDGERBAL"); ledgerBal != nil {
			asOf, asOfErr := ledgerBal.ChildTime("DTASOF")
			amount, amountErr := ledgerBal.ChildDecimal("BALAMT")
			if asOfErr != nil || amountErr != nil || asOf == nil || amount == nil {
				glog.Warningf("account %q: ignoring incomplete ledger balance", accountID)
			} else {
				balance = &Balance{AsOf: DateOnly(*asOf), Amount: *amount}
			}
		}

		var txns []*Node
		for _, tranList := range stmtrs.FindAll(tranListPattern) {
			txns = append(txns, tranList.FindAllNamed("STMTTRN")...)
		}

		for _, currencyNode := range stmtrs.FindAllNamed("CURDEF") {
			currency := ""
			if value := currencyNode.TextContent(); value != nil {
				currency = *value
			}
			statements = append(statements, Statement{
				AccountID:    accountID,
				Currency:     currency,
				Transactions: txns,
				Balance:      balance,
			})
		}
	}
	return statements
}
