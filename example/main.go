package main

import (
	"bytes"
	"fmt"
	"log"
	"regexp"

	"github.com/rockstardevs/ofximport"
)

func main() {
	data := []byte(`
        <OFX>
        <SIGNONMSGSRSV1><SONRS>
            <STATUS><CODE>0<SEVERITY>INFO</STATUS>
            <DTSERVER>20190923042445<LANGUAGE>ENG
            <FI><ORG>Test Bank</ORG><FID>123</FID></FI>
        </SONRS></SIGNONMSGSRSV1>
		<BANKMSGSRSV1><STMTTRNRS>
			<TRNUID>0
			<STATUS><CODE>0<SEVERITY>INFO</STATUS>
			<STMTRS>
				<CURDEF>USD
				<BANKACCTFROM><BANKID>456<ACCTID>789<ACCTTYPE>CREDITLINE</BANKACCTFROM>
				<BANKTRANLIST>
					<DTSTART>20190101120000.000[0:GMT]<DTEND>20190131120000.000[0:GMT]
					<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20190119090000<TRNAMT>-20.96<FITID>20190119090001<NAME>Sample Expense</STMTTRN>
					<STMTTRN><TRNTYPE>CHECK<DTPOSTED>20190122090000<TRNAMT>-115.26<FITID>20190122090002<NAME>Another Expense<MEMO>Check 1024</STMTTRN>
				</BANKTRANLIST>
				<LEDGERBAL>
					<BALAMT>315.50<DTASOF>20190131120000.000[0:GMT]
				</LEDGERBAL>
			</STMTRS>
		</STMTTRNRS></BANKMSGSRSV1>
		</OFX>
	`)
	reader := bytes.NewReader(data)

	root, err := ofximport.NewTreeFromOFX(reader, ofximport.NewCleaner())
	if err != nil {
		log.Fatalf("error parsing data file - %s", err)
	}

	entries, err := ofximport.Extract(root, "example.ofx", regexp.MustCompile(`789`),
		"Liabilities:CreditCard", ofximport.FlagOkay, ofximport.BalanceDeclared)
	if err != nil {
		log.Fatalf("error extracting entries - %s", err)
	}
	for _, entry := range entries {
		switch e := entry.(type) {
		case *ofximport.Transaction:
			posting := e.Postings[0]
			fmt.Printf("%s %s %q %s %s %s\n", e.Date.Format("2006-01-02"), e.Flag,
				e.Narration, posting.Account, posting.Units.Number, posting.Units.Currency)
		case *ofximport.BalanceAssertion:
			fmt.Printf("%s balance %s %s %s\n", e.Date.Format("2006-01-02"),
				e.Account, e.Amount.Number, e.Amount.Currency)
		}
	}
}
