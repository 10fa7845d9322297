package severity

import (
	"strings"

	"github.com/shenikar/geo_incident_consensus/internal/models"
)

// Classifier определяет уровень тяжести по тексту и категории.
// Реализация может быть заменена без изменения движка консолидации.
type Classifier interface {
	Classify(description string, category models.Category) models.Severity
}

// Tier группа ключевых слов одного уровня
type Tier struct {
	Level    models.Severity
	Keywords []string
}

// KeywordClassifier проверяет уровни по порядку; выигрывает первый совпавший
type KeywordClassifier struct {
	tiers    []Tier
	defaults map[models.Category]models.Severity
}

// DefaultTiers таблица ключевых слов от critical к medium
var DefaultTiers = []Tier{
	{Level: models.SeverityCritical, Keywords: []string{
		"fire", "explosion", "gun", "shot", "stab", "bleeding", "unconscious",
		"not breathing", "heart attack", "stroke", "trapped", "collapsed building", "gas leak",
	}},
	{Level: models.SeveritySerious, Keywords: []string{
		"accident", "crash", "hit", "broken bone", "severe pain", "bleeding",
		"fall", "assault", "fight", "robbery",
	}},
	{Level: models.SeverityMedium, Keywords: []string{
		"minor accident", "small fire", "injury", "pain", "argument", "disturbance", "suspicious",
	}},
}

// DefaultCategorySeverity уровень по категории, если ни одно слово не совпало
var DefaultCategorySeverity = map[models.Category]models.Severity{
	models.CategoryMedical:  models.SeveritySerious,
	models.CategoryFire:     models.SeverityCritical,
	models.CategoryCrime:    models.SeveritySerious,
	models.CategoryAccident: models.SeverityMedium,
	models.CategoryOther:    models.SeverityMinor,
}

func NewKeywordClassifier(tiers []Tier, defaults map[models.Category]models.Severity) *KeywordClassifier {
	normalized := make([]Tier, 0, len(tiers))
	for _, t := range tiers {
		kw := make([]string, 0, len(t.Keywords))
		for _, k := range t.Keywords {
			kw = append(kw, strings.ToLower(k))
		}
		normalized = append(normalized, Tier{Level: t.Level, Keywords: kw})
	}
	return &KeywordClassifier{tiers: normalized, defaults: defaults}
}

// NewDefault классификатор со встроенными таблицами
func NewDefault() *KeywordClassifier {
	return NewKeywordClassifier(DefaultTiers, DefaultCategorySeverity)
}

func (c *KeywordClassifier) Classify(description string, category models.Category) models.Severity {
	text := strings.ToLower(description)
	for _, tier := range c.tiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(text, kw) {
				return tier.Level
			}
		}
	}
	if s, ok := c.defaults[category]; ok {
		return s
	}
	return models.SeverityMinor
}

// Max возвращает более тяжёлый из двух уровней
func Max(a, b models.Severity) models.Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
