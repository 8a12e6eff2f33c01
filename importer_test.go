package ofximport_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofximport"
)

var _ = Describe("ofximport", func() {
	Describe("NewImporter()", func() {
		It("should reject an invalid account id pattern", func() {
			importer, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `(`})
			Expect(importer).To(BeNil())
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("OFXImporter", func() {
		var (
			dir      string
			path     string
			importer *ofximport.OFXImporter
		)

		BeforeEach(func() {
			var err error
			dir, err = ioutil.TempDir("", "ofximport")
			Expect(err).To(BeNil())
			path = filepath.Join(dir, "statement.qfx")
			Expect(ioutil.WriteFile(path, []byte(bankOFX), 0o644)).To(Succeed())

			importer, err = ofximport.NewImporter(ofximport.Config{
				AcctIDPattern: `1234`,
				Account:       "Assets:Checking",
				Basename:      "checking",
				BalanceType:   ofximport.BalanceDeclared,
			})
			Expect(err).To(BeNil())
		})
		AfterEach(func() {
			os.RemoveAll(dir)
		})

		Describe("Identify()", func() {
			It("should identify a matching OFX file", func() {
				Expect(importer.Identify(path)).To(BeTrue())
			})
			It("should not trust the extension alone", func() {
				other := filepath.Join(dir, "other.qfx")
				Expect(ioutil.WriteFile(other, []byte("not a statement"), 0o644)).To(Succeed())
				Expect(importer.Identify(other)).To(BeFalse())
			})
			It("should reject unknown content types", func() {
				csv := filepath.Join(dir, "statement.csv")
				Expect(ioutil.WriteFile(csv, []byte(bankOFX), 0o644)).To(Succeed())
				Expect(importer.Identify(csv)).To(BeFalse())
			})
			It("should reject files for other accounts", func() {
				other, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `9999`, Account: "Assets:Other"})
				Expect(err).To(BeNil())
				Expect(other.Identify(path)).To(BeFalse())
			})
			It("should reject unreadable files", func() {
				Expect(importer.Identify(filepath.Join(dir, "missing.qfx"))).To(BeFalse())
			})
		})

		Describe("Account()", func() {
			It("should return the configured account", func() {
				Expect(importer.Account(path)).To(Equal("Assets:Checking"))
			})
		})

		Describe("Date()", func() {
			It("should return the latest declared balance date", func() {
				date, err := importer.Date(path)
				Expect(err).To(BeNil())
				Expect(*date).To(Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))
			})
			It("should return nil when the file declares no balance", func() {
				bare := filepath.Join(dir, "bare.ofx")
				data := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS>` +
					`<CURDEF>USD<BANKACCTFROM><BANKID>1<ACCTID>1234</BANKACCTFROM>` +
					`</STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`
				Expect(ioutil.WriteFile(bare, []byte(data), 0o644)).To(Succeed())
				date, err := importer.Date(bare)
				Expect(err).To(BeNil())
				Expect(date).To(BeNil())
			})
		})

		Describe("Filename()", func() {
			It("should combine the basename with the original extension", func() {
				Expect(importer.Filename(path)).To(Equal("checking.qfx"))
			})
			It("should return an empty name when no basename is configured", func() {
				plain, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `1234`, Account: "Assets:Checking"})
				Expect(err).To(BeNil())
				Expect(plain.Filename(path)).To(Equal(""))
			})
		})

		Describe("Extract()", func() {
			It("should extract sorted entries from the file", func() {
				entries, err := importer.Extract(path, nil)
				Expect(err).To(BeNil())
				Expect(entries).To(HaveLen(4))
				for _, entry := range entries {
					Expect(entry.EntryMeta().Filename).To(Equal(path))
				}
				assertion, ok := entries[3].(*ofximport.BalanceAssertion)
				Expect(ok).To(BeTrue())
				Expect(assertion.Date).To(Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
			})
			It("should propagate parse failures", func() {
				bad := filepath.Join(dir, "bad.ofx")
				Expect(ioutil.WriteFile(bad, []byte("no markup here"), 0o644)).To(Succeed())
				entries, err := importer.Extract(bad, nil)
				Expect(entries).To(BeNil())
				Expect(err).To(MatchError("error - invalid file, OFX tag not found"))
			})
		})
	})

	Describe("Registry", func() {
		var registry *ofximport.Registry

		BeforeEach(func() {
			registry = ofximport.NewRegistry()
		})

		It("should return registered importers by name", func() {
			importer, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `1234`, Account: "Assets:Checking"})
			Expect(err).To(BeNil())
			registry.Register("chase", importer)
			Expect(registry.Get("chase")).To(Equal(importer))
			Expect(registry.Get("CHASE")).To(Equal(importer))
			Expect(registry.Get("unknown")).To(BeNil())
		})
		It("should panic on duplicate names", func() {
			importer, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `1234`, Account: "Assets:Checking"})
			Expect(err).To(BeNil())
			registry.Register("chase", importer)
			Expect(func() { registry.Register("Chase", importer) }).To(Panic())
		})
		It("should route files to the importer that claims them", func() {
			dir, err := ioutil.TempDir("", "ofximport")
			Expect(err).To(BeNil())
			defer os.RemoveAll(dir)
			path := filepath.Join(dir, "statement.ofx")
			Expect(ioutil.WriteFile(path, []byte(bankOFX), 0o644)).To(Succeed())

			checking, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `1234`, Account: "Assets:Checking"})
			Expect(err).To(BeNil())
			savings, err := ofximport.NewImporter(ofximport.Config{AcctIDPattern: `9999`, Account: "Assets:Savings"})
			Expect(err).To(BeNil())
			registry.Register("savings", savings)
			registry.Register("checking", checking)

			Expect(registry.Identify(path)).To(Equal(checking))
			Expect(registry.Identify(filepath.Join(dir, "missing.ofx"))).To(BeNil())
		})
	})
})
