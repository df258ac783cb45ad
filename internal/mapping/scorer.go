// Package mapping suggests assignment of feed tags to canonical product fields using string heuristics.
package mapping

import (
	"sort"
	"strings"

	"github.com/MichalMitros/feed-importer/internal/textnorm"
)

// Config holds scoring thresholds.
type Config struct {
	// MinScore is the lowest score of a suggested pair.
	MinScore float64
	// ExactScore is score of exact match with field key or synonym.
	ExactScore float64
	// KeyContainmentScore is score of containment of field key.
	KeyContainmentScore float64
	// SynonymContainmentScore is score of containment of field synonym.
	SynonymContainmentScore float64
	// MinContainmentLength is the shortest string considered for containment.
	MinContainmentLength int
	// HighJaccard and MidJaccard are jaccard similarity breakpoints.
	HighJaccard float64
	MidJaccard  float64
	// HighJaccardWeight scales similarity above HighJaccard, LowJaccardWeight scales similarity below MidJaccard.
	HighJaccardWeight float64
	LowJaccardWeight  float64
	// NumericBonus is added to numeric fields when sample value is a number or is empty.
	NumericBonus float64
	// ImageBonus is added to image fields when sample value is an URL.
	ImageBonus float64
}

// DefaultConfig returns default scoring thresholds.
func DefaultConfig() Config {
	return Config{
		MinScore:                0.35,
		ExactScore:              1.0,
		KeyContainmentScore:     0.92,
		SynonymContainmentScore: 0.88,
		MinContainmentLength:    2,
		HighJaccard:             0.7,
		MidJaccard:              0.5,
		HighJaccardWeight:       0.2,
		LowJaccardWeight:        0.8,
		NumericBonus:            0.12,
		ImageBonus:              0.10,
	}
}

// Suggestion is a field to tag assignment.
type Suggestion struct {
	Field      string  `json:"productField"`
	Tag        string  `json:"xmlTag"`
	Confidence float64 `json:"confidence"`
}

// Option is custom configuration of Scorer.
type Option func(s *Scorer)

// Scorer scores tags against canonical fields and assigns them 1:1.
type Scorer struct {
	fields []normalizedField
	cfg    Config
}

type normalizedField struct {
	Field
	key      string
	synonyms []string
}

// NewScorer returns new Scorer matching tags against provided fields.
func NewScorer(fields []Field, ops ...Option) *Scorer {
	s := &Scorer{
		fields: make([]normalizedField, 0, len(fields)),
		cfg:    DefaultConfig(),
	}

	for _, field := range fields {
		nf := normalizedField{
			Field: field,
			key:   normalize(field.Key),
		}
		for _, synonym := range field.Synonyms {
			nf.synonyms = append(nf.synonyms, normalize(synonym))
		}
		s.fields = append(s.fields, nf)
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

type candidate struct {
	field      int
	tag        int
	similarity float64
	score      float64
}

// Suggest returns assignment of tags to fields ordered by descending confidence.
// Each field and each tag appears at most once.
func (s *Scorer) Suggest(tags []string, samples map[string]string) []Suggestion {
	tags = dedupe(tags)

	candidates := make([]candidate, 0, len(tags)*len(s.fields))
	for fieldIx := range s.fields {
		for tagIx, tag := range tags {
			similarity := s.similarity(tag, &s.fields[fieldIx])
			score := s.adjust(similarity, samples[tag], &s.fields[fieldIx])
			if score < s.cfg.MinScore {
				continue
			}
			candidates = append(candidates, candidate{
				field:      fieldIx,
				tag:        tagIx,
				similarity: similarity,
				score:      score,
			})
		}
	}

	// equal scores prefer better name similarity, then field order, then tag order.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].similarity > candidates[j].similarity
	})

	claimedFields := make(map[int]struct{}, len(s.fields))
	claimedTags := make(map[int]struct{}, len(tags))
	suggestions := make([]Suggestion, 0, min(len(s.fields), len(tags)))

	for _, c := range candidates {
		if _, ok := claimedFields[c.field]; ok {
			continue
		}
		if _, ok := claimedTags[c.tag]; ok {
			continue
		}
		claimedFields[c.field] = struct{}{}
		claimedTags[c.tag] = struct{}{}

		suggestions = append(suggestions, Suggestion{
			Field:      s.fields[c.field].Key,
			Tag:        tags[c.tag],
			Confidence: c.score,
		})
	}

	return suggestions
}

// Score returns confidence of matching tag with provided sample value to field with provided key.
// It returns 0 for unknown field.
func (s *Scorer) Score(tag, sample, fieldKey string) float64 {
	for ix := range s.fields {
		if s.fields[ix].Key == fieldKey {
			return s.adjust(s.similarity(tag, &s.fields[ix]), sample, &s.fields[ix])
		}
	}

	return 0
}

// similarity compares field with both the whole tag path and its last segment.
func (s *Scorer) similarity(tag string, field *normalizedField) float64 {
	best := 0.0
	for _, name := range tagNames(tag) {
		if name == "" {
			continue
		}
		best = max(best, s.nameSimilarity(name, field))
	}

	return best
}

func (s *Scorer) nameSimilarity(name string, field *normalizedField) float64 {
	if name == field.key {
		return s.cfg.ExactScore
	}
	for _, synonym := range field.synonyms {
		if name == synonym {
			return s.cfg.ExactScore
		}
	}

	if s.contains(name, field.key) {
		return s.cfg.KeyContainmentScore
	}
	for _, synonym := range field.synonyms {
		if s.contains(name, synonym) {
			return s.cfg.SynonymContainmentScore
		}
	}

	best := jaccard(name, field.key)
	for _, synonym := range field.synonyms {
		best = max(best, jaccard(name, synonym))
	}

	switch {
	case best >= s.cfg.HighJaccard:
		return s.cfg.HighJaccard + best*s.cfg.HighJaccardWeight
	case best >= s.cfg.MidJaccard:
		return s.cfg.MidJaccard + (best - s.cfg.MidJaccard)
	default:
		return best * s.cfg.LowJaccardWeight
	}
}

// contains reports whether one of strings contains the other one, shorter having at least minimal length.
func (s *Scorer) contains(a, b string) bool {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len([]rune(shorter)) < s.cfg.MinContainmentLength {
		return false
	}

	return strings.Contains(longer, shorter)
}

func (s *Scorer) adjust(similarity float64, sample string, field *normalizedField) float64 {
	score := similarity
	if field.Numeric && (strings.TrimSpace(sample) == "" || textnorm.IsNumeric(sample)) {
		score += s.cfg.NumericBonus
	}
	if field.Image && looksLikeURL(sample) {
		score += s.cfg.ImageBonus
	}

	return min(max(score, 0), 1)
}

// WithConfig sets custom scoring thresholds.
func WithConfig(cfg Config) Option {
	return func(s *Scorer) {
		s.cfg = cfg
	}
}

func normalize(s string) string {
	return textnorm.StripSeparators(textnorm.Fold(s))
}

func tagNames(tag string) []string {
	names := []string{normalize(tag)}
	if ix := strings.LastIndex(tag, "."); ix >= 0 {
		names = append(names, normalize(tag[ix+1:]))
	}

	return names
}

// jaccard returns jaccard similarity of sets of characters of a and b.
func jaccard(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			intersection++
		}
	}

	return float64(intersection) / float64(len(setA)+len(setB)-intersection)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}

	return set
}

func looksLikeURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "//") ||
		strings.HasPrefix(s, "data:")
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok || tag == "" {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}

	return unique
}
