package op

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// UnsupportedRevisionError indicates a lookup for a revision that has no
// registered opcode table. Matching is exact; there is no fallback to a
// neighboring revision.
type UnsupportedRevisionError struct {
	Revision Revision
}

func (e *UnsupportedRevisionError) Error() string {
	return fmt.Sprintf("unsupported bytecode revision %s", e.Revision)
}

// tables is populated once by the init functions in the per-runtime table
// files and is read-only afterwards.
var tables = map[Revision]*Table{}

func register(t *Table) {
	if _, ok := tables[t.Revision]; ok {
		panic(fmt.Sprintf("op: duplicate table for revision %s", t.Revision))
	}
	tables[t.Revision] = t
}

// LookupTable returns the opcode table for the given revision, or an
// UnsupportedRevisionError when the revision is unknown.
func LookupTable(rev Revision) (*Table, error) {
	t, ok := tables[rev]
	if !ok {
		return nil, &UnsupportedRevisionError{Revision: rev}
	}
	return t, nil
}

// Revisions returns all supported revisions in ascending order.
func Revisions() []Revision {
	revs := make([]Revision, 0, len(tables))
	for rev := range tables {
		revs = append(revs, rev)
	}
	sort.Slice(revs, func(i, j int) bool { return revs[i].Less(revs[j]) })
	return revs
}

// ValidateTables runs Validate across every registered table and aggregates
// the failures. Used by tests and by the CLI's --validate-tables flag.
func ValidateTables() error {
	var result error
	for _, rev := range Revisions() {
		if err := tables[rev].Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
