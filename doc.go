/*
Package ofximport extracts ledger entries from OFX/QFX/QBO statement files.

ofximport parses bank and credit card statements, including OFX data files
which deviate from the OFX spec by omitting starting or ending tags, and
converts them into transaction and balance assertion records suitable for
ingestion into a plain text double entry ledger.

*/
package ofximport
