package ofximport

import "sync"

var aggregatesMap map[string]struct{}
var initAggegatesMap sync.Once

// GetAggregates returns the singleton aggregates map instance.
// Aggregates are the OFX container tags which may hold nested tags, as
// opposed to elements which hold a single scalar value. Both the bank and
// the credit card message sets are covered.
func GetAggregates() map[string]struct{} {
	initAggegatesMap.Do(func() {
		var aggregates = []string{
			"OFX",
			"SIGNONMSGSRSV1", "SONRS", "STATUS", "FI",
			"BANKMSGSRSV1", "STMTTRNRS", "STMTRS", "BANKACCTFROM",
			"CREDITCARDMSGSRSV1", "CCSTMTTRNRS", "CCSTMTRS", "CCACCTFROM",
			"BANKTRANLIST", "CCTRANLIST", "STMTTRN", "LEDGERBAL", "AVAILBAL",
			"CURRENCY", "ORIGCURRENCY",
		}
		aggregatesMap = make(map[string]struct{}, len(aggregates))
		for _, a := range aggregates {
			aggregatesMap[a] = struct{}{}
		}
	})
	return aggregatesMap
}

// IsAggregate returns true if the given tag is a know aggregate tag.
func IsAggregate(tag string) bool {
	_, found := GetAggregates()[tag]
	return found
}
