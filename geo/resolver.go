package geo

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"
	"unicode"

	"github.com/Ciztek/pwe/schema"
)

var (
	ErrNoCoordinateFound = fmt.Errorf("no coordinate found")
)

// Resolver - interface for turning a place name into a coordinate
type Resolver interface {
	Resolve(place string) (schema.Coordinate, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// TableResolver answers exact-name lookups out of one coordinate table.
type TableResolver struct {
	table map[string]schema.Coordinate
}

func NewTableResolver(table map[string]schema.Coordinate) *TableResolver {
	return &TableResolver{
		table: table,
	}
}

func (r *TableResolver) Resolve(place string) (schema.Coordinate, error) {
	coordinate, ok := r.table[place]
	if !ok {
		return schema.Coordinate{}, ErrNoCoordinateFound
	}
	return coordinate, nil
}

// AliasResolver rewrites a known alias to its canonical name and hands
// that name to the next resolver. Aliases never own coordinates.
type AliasResolver struct {
	aliases map[string]string
	next    Resolver
}

func NewAliasResolver(aliases map[string]string, next Resolver) *AliasResolver {
	return &AliasResolver{
		aliases: aliases,
		next:    next,
	}
}

func (r *AliasResolver) Resolve(place string) (schema.Coordinate, error) {
	canonical, ok := r.aliases[place]
	if !ok {
		return schema.Coordinate{}, ErrNoCoordinateFound
	}
	return r.next.Resolve(canonical)
}

// NormalizedResolver matches names with punctuation, spacing and case
// differences. Its index is built once, keys in sorted order so a
// normalization collision always resolves the same way.
type NormalizedResolver struct {
	index map[string]schema.Coordinate
}

func NewNormalizedResolver(primary, fallback map[string]schema.Coordinate, aliases map[string]string) *NormalizedResolver {
	index := make(map[string]schema.Coordinate)
	add := func(name string, coordinate schema.Coordinate) {
		n := Normalize(name)
		if n == "" {
			return
		}
		if _, ok := index[n]; !ok {
			index[n] = coordinate
		}
	}

	for _, name := range sortedTableKeys(primary) {
		add(name, primary[name])
	}
	for _, name := range sortedTableKeys(fallback) {
		add(name, fallback[name])
	}

	exact := NewChainResolver(NewTableResolver(primary), NewTableResolver(fallback))
	for _, alias := range sortedAliasKeys(aliases) {
		coordinate, err := exact.Resolve(aliases[alias])
		if nil != err {
			continue
		}
		add(alias, coordinate)
	}

	return &NormalizedResolver{
		index: index,
	}
}

func (r *NormalizedResolver) Resolve(place string) (schema.Coordinate, error) {
	coordinate, ok := r.index[Normalize(place)]
	if !ok {
		return schema.Coordinate{}, ErrNoCoordinateFound
	}
	return coordinate, nil
}

// ChainResolver tries each resolver in order and returns the first hit.
type ChainResolver struct {
	resolvers []Resolver
}

func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{
		resolvers: resolvers,
	}
}

func (r *ChainResolver) Resolve(place string) (schema.Coordinate, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		coordinate, err := resolver.Resolve(place)
		if err != nil {
			errors = append(errors, err)
		} else {
			return coordinate, nil
		}
	}

	return schema.Coordinate{}, NewMultipleResolverErrors(errors)
}

// Default - the lookup order a place name goes through: exact match in
// the primary table, exact match in the compiled-in table, alias
// rewrite, then normalized matching
func Default(primary map[string]schema.Coordinate) Resolver {
	exact := NewChainResolver(
		NewTableResolver(primary),
		NewTableResolver(countryCentroids),
	)

	return NewChainResolver(
		exact,
		NewAliasResolver(placeAliases, exact),
		NewNormalizedResolver(primary, countryCentroids, placeAliases),
	)
}

// Normalize strips everything but letters and digits and lowercases the
// rest, so "United-States" and "united states" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// LoadTable - read a place to coordinate table from a JSON file
func LoadTable(path string) (map[string]schema.Coordinate, error) {
	d, err := ioutil.ReadFile(path)
	if nil != err {
		return nil, err
	}

	var table map[string]schema.Coordinate
	if err := json.Unmarshal(d, &table); nil != err {
		return nil, err
	}

	return table, nil
}

func sortedTableKeys(table map[string]schema.Coordinate) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAliasKeys(aliases map[string]string) []string {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
