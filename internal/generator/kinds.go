package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names a value producer.
type Kind string

const (
	KindBoolean   Kind = "boolean"
	KindCharacter Kind = "character"
	KindString    Kind = "string"
	KindSyllable  Kind = "syllable"
	KindWord      Kind = "word"
	KindSentence  Kind = "sentence"
	KindParagraph Kind = "paragraph"
	KindAge       Kind = "age"
	KindDate      Kind = "date"
	KindBirthday  Kind = "birthday"
	KindFirst     Kind = "first"
	KindLast      Kind = "last"
	KindName      Kind = "name"
	KindEmail     Kind = "email"
	KindPhone     Kind = "phone"
	KindStreet    Kind = "street"
	KindCity      Kind = "city"
	KindState     Kind = "state"
	KindPath      Kind = "path"
	KindFilepath  Kind = "filepath"
	KindDomain    Kind = "domain"
	KindIP        Kind = "ip"
	KindHexHash   Kind = "hex_hash"
	KindColor     Kind = "color"
	KindGUID      Kind = "guid"
	KindPickOne   Kind = "pick_one"
	KindPickMany  Kind = "pick_many"
)

type producer func(g *Generator, opts Options) (any, error)

var producers = map[Kind]producer{
	KindBoolean:   genBoolean,
	KindCharacter: genCharacter,
	KindString:    genString,
	KindSyllable:  func(g *Generator, _ Options) (any, error) { return g.syllable(), nil },
	KindWord:      genWord,
	KindSentence:  genSentence,
	KindParagraph: genParagraph,
	KindAge:       genAge,
	KindDate:      genDate,
	KindBirthday:  genBirthday,
	KindFirst:     func(g *Generator, _ Options) (any, error) { return g.faker.FirstName(), nil },
	KindLast:      func(g *Generator, _ Options) (any, error) { return g.faker.LastName(), nil },
	KindName:      genName,
	KindEmail:     genEmail,
	KindPhone:     genPhone,
	KindStreet:    func(g *Generator, _ Options) (any, error) { return g.faker.Street(), nil },
	KindCity:      func(g *Generator, _ Options) (any, error) { return g.faker.City(), nil },
	KindState:     genState,
	KindPath:      func(g *Generator, _ Options) (any, error) { return g.path(), nil },
	KindFilepath:  genFilepath,
	KindDomain:    genDomain,
	KindIP:        func(g *Generator, _ Options) (any, error) { return g.faker.IPv4Address(), nil },
	KindHexHash:   genHexHash,
	KindColor:     genColor,
	KindGUID:      genGUID,
	KindPickOne:   genPickOne,
	KindPickMany:  genPickMany,
}

// IsValid reports whether a producer is registered for k.
func (k Kind) IsValid() bool {
	_, ok := producers[k]
	return ok
}

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	symbols      = "!@#$%^&*()[]"
	consonants   = "bcdfghjklmnprstvwz"
	vowels       = "aeiou"
	hexDigits    = "0123456789abcdef"
)

// age ranges in years, upper bound inclusive
var ageRanges = map[string][2]int{
	"child":  {0, 12},
	"teen":   {13, 19},
	"adult":  {18, 65},
	"senior": {65, 100},
	"all":    {0, 100},
}

func genBoolean(g *Generator, opts Options) (any, error) {
	likelihood, err := opts.Int("likelihood", 50)
	if err != nil {
		return nil, err
	}
	if likelihood < 0 || likelihood > 100 {
		return nil, fmt.Errorf("%w: likelihood must be within [0, 100]", ErrInvalidOption)
	}
	return g.faker.Number(1, 100) <= likelihood, nil
}

func genCharacter(g *Generator, opts Options) (any, error) {
	pool, err := characterPool(opts)
	if err != nil {
		return nil, err
	}
	return g.pick(pool), nil
}

func genString(g *Generator, opts Options) (any, error) {
	pool, err := characterPool(opts)
	if err != nil {
		return nil, err
	}
	length, err := opts.Int("length", g.faker.Number(5, 20))
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: length must not be negative", ErrInvalidOption)
	}

	var b strings.Builder
	for range length {
		b.WriteString(g.pick(pool))
	}
	return b.String(), nil
}

func genWord(g *Generator, opts Options) (any, error) {
	syllables, err := opts.Int("syllables", 0)
	if err != nil {
		return nil, err
	}
	length, err := opts.Int("length", 0)
	if err != nil {
		return nil, err
	}

	switch {
	case syllables > 0:
		var b strings.Builder
		for range syllables {
			b.WriteString(g.syllable())
		}
		return b.String(), nil
	case length > 0:
		var b strings.Builder
		for b.Len() < length {
			b.WriteString(g.syllable())
		}
		return b.String()[:length], nil
	default:
		return g.faker.Word(), nil
	}
}

func genSentence(g *Generator, opts Options) (any, error) {
	words, err := opts.Int("words", g.faker.Number(12, 18))
	if err != nil {
		return nil, err
	}
	return g.faker.Sentence(words), nil
}

func genParagraph(g *Generator, opts Options) (any, error) {
	sentences, err := opts.Int("sentences", g.faker.Number(3, 7))
	if err != nil {
		return nil, err
	}
	return g.faker.Paragraph(1, sentences, g.faker.Number(12, 18), " "), nil
}

func genAge(g *Generator, opts Options) (any, error) {
	bounds, err := ageRange(opts)
	if err != nil {
		return nil, err
	}
	return g.faker.Number(bounds[0], bounds[1]), nil
}

func genDate(g *Generator, opts Options) (any, error) {
	year, err := opts.Int("year", 0)
	if err != nil {
		return nil, err
	}
	asString, err := opts.Bool("string", false)
	if err != nil {
		return nil, err
	}

	var date time.Time
	if year > 0 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		date = g.faker.DateRange(start, start.AddDate(1, 0, 0).Add(-time.Minute)).UTC()
	} else {
		date = g.faker.Date().UTC()
	}

	if asString {
		return date.Format("1/2/2006"), nil
	}
	return date, nil
}

func genBirthday(g *Generator, opts Options) (any, error) {
	bounds, err := ageRange(opts)
	if err != nil {
		return nil, err
	}

	now := g.now().UTC()
	latest := now.AddDate(-bounds[0], 0, 0)
	earliest := now.AddDate(-bounds[1]-1, 0, 1)
	return g.faker.DateRange(earliest, latest).UTC(), nil
}

func genName(g *Generator, opts Options) (any, error) {
	middle, err := opts.Bool("middle", false)
	if err != nil {
		return nil, err
	}
	if middle {
		return g.faker.FirstName() + " " + g.faker.FirstName() + " " + g.faker.LastName(), nil
	}
	return g.faker.Name(), nil
}

func genEmail(g *Generator, opts Options) (any, error) {
	domain, err := opts.String("domain", "")
	if err != nil {
		return nil, err
	}
	if domain == "" {
		return g.faker.Email(), nil
	}
	return strings.ToLower(g.faker.Username()) + "@" + domain, nil
}

func genPhone(g *Generator, opts Options) (any, error) {
	formatted, err := opts.Bool("formatted", true)
	if err != nil {
		return nil, err
	}
	if formatted {
		return g.faker.PhoneFormatted(), nil
	}
	return g.faker.Phone(), nil
}

func genState(g *Generator, opts Options) (any, error) {
	full, err := opts.Bool("full", false)
	if err != nil {
		return nil, err
	}
	if full {
		return g.faker.State(), nil
	}
	return g.faker.StateAbr(), nil
}

func genFilepath(g *Generator, opts Options) (any, error) {
	ext, err := opts.String("extension", "")
	if err != nil {
		return nil, err
	}
	if ext == "" {
		ext = g.faker.FileExtension()
	}
	return g.path() + strings.ToLower(g.faker.Word()) + "." + strings.TrimPrefix(ext, "."), nil
}

func genDomain(g *Generator, opts Options) (any, error) {
	tld, err := opts.String("tld", "")
	if err != nil {
		return nil, err
	}
	if tld == "" {
		return g.faker.DomainName(), nil
	}
	return strings.ToLower(g.faker.Word()) + "." + strings.TrimPrefix(tld, "."), nil
}

func genHexHash(g *Generator, opts Options) (any, error) {
	length, err := opts.Int("length", 40)
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: length must be positive", ErrInvalidOption)
	}

	var b strings.Builder
	for range length {
		b.WriteString(g.pick(hexDigits))
	}
	return b.String(), nil
}

func genColor(g *Generator, opts Options) (any, error) {
	format, err := opts.String("format", "hex")
	if err != nil {
		return nil, err
	}

	switch format {
	case "hex":
		return strings.ToLower(g.faker.HexColor()), nil
	case "shorthex":
		return "#" + g.pick(hexDigits) + g.pick(hexDigits) + g.pick(hexDigits), nil
	case "rgb":
		rgb := g.faker.RGBColor()
		return fmt.Sprintf("rgb(%d,%d,%d)", rgb[0], rgb[1], rgb[2]), nil
	case "name":
		return g.faker.Color(), nil
	default:
		return nil, fmt.Errorf("%w: unknown color format %q", ErrInvalidOption, format)
	}
}

func genGUID(g *Generator, _ Options) (any, error) {
	id, err := uuid.NewRandomFromReader(g.faker.Rand)
	if err != nil {
		return nil, err
	}
	return id.String(), nil
}

func genPickOne(g *Generator, opts Options) (any, error) {
	values, err := opts.List("values")
	if err != nil {
		return nil, err
	}
	return g.PickOne(values)
}

func genPickMany(g *Generator, opts Options) (any, error) {
	values, err := opts.List("values")
	if err != nil {
		return nil, err
	}
	minimum, err := opts.Int("minimum", 0)
	if err != nil {
		return nil, err
	}
	maximum, err := opts.Int("maximum", 0)
	if err != nil {
		return nil, err
	}
	return g.PickMany(values, minimum, maximum)
}

// syllable alternates consonants and vowels over two or three letters.
func (g *Generator) syllable() string {
	length := g.faker.Number(2, 3)

	var b strings.Builder
	var prev string
	for i := range length {
		switch {
		case i == 0:
			prev = g.pick(consonants + vowels)
		case strings.Contains(consonants, prev):
			prev = g.pick(vowels)
		default:
			prev = g.pick(consonants)
		}
		b.WriteString(prev)
	}
	return b.String()
}

// path returns an absolute directory path ending in "/".
func (g *Generator) path() string {
	segments := g.faker.Number(1, 4)

	var b strings.Builder
	b.WriteString("/")
	for range segments {
		b.WriteString(strings.ToLower(g.faker.Word()))
		b.WriteString("/")
	}
	return b.String()
}

func (g *Generator) pick(pool string) string {
	runes := []rune(pool)
	return string(runes[g.faker.Rand.Intn(len(runes))])
}

func characterPool(opts Options) (string, error) {
	pool, err := opts.String("pool", "")
	if err != nil {
		return "", err
	}
	if pool != "" {
		return pool, nil
	}

	alpha, err := opts.Bool("alpha", false)
	if err != nil {
		return "", err
	}
	casing, err := opts.String("casing", "")
	if err != nil {
		return "", err
	}

	var letters string
	switch casing {
	case "":
		letters = lowerLetters + upperLetters
	case "lower":
		letters = lowerLetters
	case "upper":
		letters = upperLetters
	default:
		return "", fmt.Errorf("%w: unknown casing %q", ErrInvalidOption, casing)
	}

	if alpha {
		return letters, nil
	}
	return letters + digits + symbols, nil
}

func ageRange(opts Options) ([2]int, error) {
	kind, err := opts.String("type", "adult")
	if err != nil {
		return [2]int{}, err
	}
	bounds, ok := ageRanges[kind]
	if !ok {
		return [2]int{}, fmt.Errorf("%w: unknown age type %q", ErrInvalidOption, kind)
	}
	return bounds, nil
}
