package ofximport

import (
	"fmt"
	"io/ioutil"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/golang/glog"
)

// Content types recognized for identification.
const (
	ContentTypeOFX = "application/x-ofx"
	ContentTypeQBO = "application/vnd.intu.qbo"
	ContentTypeQFX = "application/vnd.intu.qfx"
)

func init() {
	for ext, contentType := range map[string]string{
		".ofx": ContentTypeOFX,
		".qbo": ContentTypeQBO,
		".qfx": ContentTypeQFX,
	} {
		if err := mime.AddExtensionType(ext, contentType); err != nil {
			panic(err)
		}
	}
}

// Importer is the contract every statement importer satisfies so a host
// import tool can identify, date, rename and extract files uniformly. The
// host tool itself (file discovery, archival, dedup against existing
// entries) is not part of this library.
type Importer interface {
	// Identify reports whether the given file belongs to this importer.
	Identify(filename string) bool
	// Account returns the ledger account this importer posts to.
	Account(filename string) string
	// Date returns the file's statement date, used for archival naming.
	Date(filename string) (*time.Time, error)
	// Filename returns the canonical name for the file, or "" to keep the
	// original name.
	Filename(filename string) string
	// Extract converts the file into ledger entries. Entries already in
	// the ledger are passed in so importers may use them for context.
	Extract(filename string, existing []Entry) ([]Entry, error)
}

// Config is the per institution configuration for an OFX importer instance.
type Config struct {
	// AcctIDPattern is a regexp matched against the start of each ACCTID
	// value in the file.
	AcctIDPattern string
	// Account is the ledger account receiving the postings.
	Account string
	// Basename optionally renames archived files.
	Basename string
	// BalanceType selects the balance assertion insertion policy.
	BalanceType BalanceType
}

// OFXImporter imports OFX/QFX/QBO statement files.
type OFXImporter struct {
	config  Config
	pattern *regexp.Regexp
}

var _ Importer = &OFXImporter{}

// acctIDTagPattern matches ACCTID values without a full parse, for cheap
// identification.
var acctIDTagPattern = regexp.MustCompile(`<ACCTID>([^<]*)`)

// NewImporter returns an importer for the given configuration.
func NewImporter(config Config) (*OFXImporter, error) {
	pattern, err := regexp.Compile(config.AcctIDPattern)
	if err != nil {
		return nil, fmt.Errorf("error - invalid account id pattern %q: %w", config.AcctIDPattern, err)
	}
	return &OFXImporter{config: config, pattern: pattern}, nil
}

// Identify reports whether the given file is an OFX file for a matching
// account. The content type must be one of the recognized OFX types and at
// least one ACCTID value in the contents must match the configured pattern;
// the extension alone is never trusted.
func (i *OFXImporter) Identify(filename string) bool {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	switch contentType {
	case ContentTypeOFX, ContentTypeQBO, ContentTypeQFX:
	default:
		return false
	}
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		glog.Warningf("identify %s: %s", filename, err)
		return false
	}
	for _, match := range acctIDTagPattern.FindAllSubmatch(data, -1) {
		if i.matchesAccountID(string(match[1])) {
			return true
		}
	}
	return false
}

// Account returns the account against which transactions are posted.
func (i *OFXImporter) Account(filename string) string {
	return i.config.Account
}

// Date returns the latest ledger balance date declared in the file, or nil
// when the file declares none.
func (i *OFXImporter) Date(filename string) (*time.Time, error) {
	root, err := i.parseFile(filename)
	if err != nil {
		return nil, err
	}
	var max *time.Time
	for _, ledgerBal := range root.FindAllNamed("LEDGERBAL") {
		asOf, err := ledgerBal.ChildTime("DTASOF")
		if err != nil || asOf == nil {
			continue
		}
		date := DateOnly(*asOf)
		if max == nil || date.After(*max) {
			max = &date
		}
	}
	return max, nil
}

// Filename returns the configured basename with the file's original
// extension, or "" when no basename is configured.
func (i *OFXImporter) Filename(filename string) string {
	if i.config.Basename == "" {
		return ""
	}
	return i.config.Basename + filepath.Ext(filename)
}

// Extract converts the given file into sorted ledger entries. The existing
// entries are unused; deduplication is the host tool's concern.
func (i *OFXImporter) Extract(filename string, existing []Entry) ([]Entry, error) {
	root, err := i.parseFile(filename)
	if err != nil {
		return nil, err
	}
	return Extract(root, filename, i.pattern, i.config.Account, FlagOkay, i.config.BalanceType)
}

func (i *OFXImporter) parseFile(filename string) (*Node, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return NewTreeFromOFX(file, NewCleaner())
}

// matchesAccountID reports whether the configured pattern matches the start
// of the given account id, per the importer's prefix match convention.
func (i *OFXImporter) matchesAccountID(accountID string) bool {
	loc := i.pattern.FindStringIndex(accountID)
	return loc != nil && loc[0] == 0
}

// Registry holds named importers so a host tool can route files to the
// adapter that claims them.
type Registry struct {
	names     []string
	importers map[string]Importer
}

// NewRegistry creates an empty importer registry.
func NewRegistry() *Registry {
	return &Registry{importers: make(map[string]Importer)}
}

// Register adds an importer under the given name. Panics on duplicates.
func (r *Registry) Register(name string, importer Importer) {
	key := strings.ToLower(name)
	if _, ok := r.importers[key]; ok {
		panic("duplicate importer name: " + key)
	}
	r.names = append(r.names, key)
	r.importers[key] = importer
}

// Get returns the importer registered under name, or nil.
func (r *Registry) Get(name string) Importer {
	return r.importers[strings.ToLower(name)]
}

// Identify returns the first registered importer that identifies the given
// file, or nil when no importer claims it.
func (r *Registry) Identify(filename string) Importer {
	for _, name := range r.names {
		if importer := r.importers[name]; importer.Identify(filename) {
			return importer
		}
	}
	return nil
}
