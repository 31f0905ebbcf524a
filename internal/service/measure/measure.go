// Package measure handles measurement-set presentation and the application of
// reusable patterns onto orders.
package measure

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"atelier/internal/storage"

	"github.com/tiendc/go-deepcopy"
)

type PatternStorage interface {
	GetPattern(ctx context.Context, id string) (*storage.Pattern, error)
	UpdateOrderMeasurements(ctx context.Context, orderID string, m storage.Measurements) error
}

type PatternService struct {
	storage PatternStorage
}

func NewPatternService(storage PatternStorage) *PatternService {
	return &PatternService{storage: storage}
}

// ApplyPattern copies the pattern's measurement set onto the order, replacing
// whatever was there — standard fields and custom entries alike. An unknown
// pattern id leaves the order untouched.
func (s *PatternService) ApplyPattern(ctx context.Context, orderID, patternID string) (*storage.Measurements, error) {
	const op = "service.measure.ApplyPattern"

	pattern, err := s.storage.GetPattern(ctx, patternID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var applied storage.Measurements
	if err := deepcopy.Copy(&applied, pattern.Measurements); err != nil {
		return nil, fmt.Errorf("%s: copy measurements: %w", op, err)
	}
	if applied.Custom == nil {
		applied.Custom = []storage.CustomMeasurement{}
	}

	if err := s.storage.UpdateOrderMeasurements(ctx, orderID, applied); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &applied, nil
}

// IsEmpty reports whether the set has neither populated standard fields nor
// custom entries, which the detail page renders as an explicit empty state.
func IsEmpty(m storage.Measurements) bool {
	std := m.Standard
	hasStandard := std.TourDePoitrine != "" || std.TourDeTaille != "" || std.TourDeHanches != "" ||
		std.LongueurBras != "" || std.LongueurJambe != "" || std.CarrureDos != ""
	return !hasStandard && len(m.Custom) == 0
}

// FormatLabel humanizes a camelCase measurement key into its display label,
// abbreviating the usual prefixes: "tourDePoitrine" → "T. Poitrine",
// "longueurBras" → "L. Bras", "carrureDos" → "C. Dos".
func FormatLabel(key string) string {
	words := splitCamelCase(key)
	if len(words) == 0 {
		return key
	}

	switch {
	case len(words) >= 3 && strings.EqualFold(words[0], "tour") && strings.EqualFold(words[1], "de"):
		return "T. " + capitalizeWords(words[2:])
	case len(words) >= 2 && strings.EqualFold(words[0], "longueur"):
		return "L. " + capitalizeWords(words[1:])
	case len(words) >= 2 && strings.EqualFold(words[0], "carrure"):
		return "C. " + capitalizeWords(words[1:])
	default:
		return capitalizeWords(words)
	}
}

func splitCamelCase(s string) []string {
	var words []string
	var current strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

func capitalizeWords(words []string) string {
	capped := make([]string, len(words))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		capped[i] = string(runes)
	}
	return strings.Join(capped, " ")
}
