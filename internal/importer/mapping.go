package importer

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
)

// Format names a CSV layout.
type Format string

// Supported CSV layouts
const (
	FormatStandard Format = "standard"
	FormatBechtle  Format = "bechtle"
)

// ErrUnknownFormat is returned for a format other than standard or bechtle.
var ErrUnknownFormat = errors.New("unknown import format")

// ErrTitleRequired is returned for a row without a usable title.
var ErrTitleRequired = errors.New("title is required")

// ErrTitleTooLong is returned for a title wider than the title column.
var ErrTitleTooLong = fmt.Errorf("title longer than %d characters", models.MaxTitleLength)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatStandard, FormatBechtle:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// StandardHeader is the column layout of the standard format.
var StandardHeader = []string{
	"title", "description", "businessArea", "maturityLevel", "problemStatement",
	"solutionDescription", "expectedBenefit", "implementationEffort", "riskAssessment", "priority",
}

var (
	validMaturity = []string{models.MaturityDraft, models.MaturityPilot, models.MaturityProduction}
	validPriority = []string{"HIGH", "MEDIUM", "LOW"}
)

// RowToUseCase maps one CSV row, keyed by header, to a use case.
func RowToUseCase(format Format, row map[string]string) (models.UseCaseDB, error) {
	switch format {
	case FormatStandard:
		return standardRow(row)
	case FormatBechtle:
		return bechtleRow(row)
	}
	return models.UseCaseDB{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func standardRow(row map[string]string) (models.UseCaseDB, error) {
	title := field(row, "title")
	if err := checkTitle(title); err != nil {
		return models.UseCaseDB{}, err
	}

	maturity := field(row, "maturityLevel")
	if maturity == "" {
		maturity = models.MaturityDraft
	} else if !slices.Contains(validMaturity, maturity) {
		return models.UseCaseDB{}, fmt.Errorf("invalid maturity level %q, expected one of %s",
			maturity, strings.Join(validMaturity, ", "))
	}

	priority := field(row, "priority")
	if priority == "" {
		priority = "MEDIUM"
	} else if !slices.Contains(validPriority, priority) {
		return models.UseCaseDB{}, fmt.Errorf("invalid priority %q, expected one of %s",
			priority, strings.Join(validPriority, ", "))
	}

	return models.UseCaseDB{
		Title:               title,
		Description:         field(row, "description"),
		BusinessArea:        field(row, "businessArea"),
		MaturityLevel:       maturity,
		ProblemStatement:    optional(row, "problemStatement"),
		SolutionDescription: optional(row, "solutionDescription"),
		BusinessValue:       optional(row, "expectedBenefit"),
		EffortEstimation:    optional(row, "implementationEffort"),
		RiskAssessment:      optional(row, "riskAssessment"),
		Priority:            &priority,
	}, nil
}

var (
	parenthesised = regexp.MustCompile(`\(.*\)`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

func bechtleRow(row map[string]string) (models.UseCaseDB, error) {
	title := field(row, "Offizieller Titel")
	if title == "" {
		title = field(row, "Titel")
		// a numeric Titel is a SharePoint item id, not a name
		if digitsOnly.MatchString(title) {
			title = ""
		}
	}
	if err := checkTitle(title); err != nil {
		return models.UseCaseDB{}, err
	}

	complexity := field(row, "Komplexität")
	priority := roiToPriority(field(row, "ROI-Potenzial"))

	return models.UseCaseDB{
		Title:               title,
		Description:         field(row, "Kurzbeschreibung"),
		BusinessArea:        businessArea(field(row, "Branche")),
		MaturityLevel:       complexityToMaturity(complexity),
		ProblemStatement:    optional(row, "Ausgangssituation"),
		SolutionDescription: optional(row, "KI-Lösung"),
		BusinessValue:       optional(row, "Kundennutzen"),
		EffortEstimation:    optional(row, "Komplexität"),
		RiskAssessment:      optional(row, "Abhängigkeiten"),
		Priority:            &priority,
	}, nil
}

// complexityToMaturity treats simple use cases as the most mature ones.
func complexityToMaturity(complexity string) string {
	c := strings.ToLower(complexity)
	switch {
	case strings.Contains(c, "niedrig"), strings.Contains(c, "gering"):
		return models.MaturityProduction
	case strings.Contains(c, "mittel"):
		return models.MaturityPilot
	}
	return models.MaturityDraft
}

func roiToPriority(roi string) string {
	r := strings.ToLower(roi)
	switch {
	case strings.Contains(r, "hoch"):
		return "HIGH"
	case strings.Contains(r, "mittel"):
		return "MEDIUM"
	case strings.Contains(r, "niedrig"), strings.Contains(r, "gering"):
		return "LOW"
	}
	return "MEDIUM"
}

func businessArea(branche string) string {
	cleaned := strings.TrimSpace(parenthesised.ReplaceAllString(branche, ""))
	if cleaned == "" {
		return "Allgemein"
	}
	return cleaned
}

// isSchemaRow reports whether a record is the SharePoint list schema preceding the data.
func isSchemaRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	return strings.Contains(record[0], "ListSchema") || strings.Contains(record[0], "{")
}

func checkTitle(title string) error {
	switch {
	case title == "":
		return ErrTitleRequired
	case utf8.RuneCountInString(title) > models.MaxTitleLength:
		return ErrTitleTooLong
	}
	return nil
}

func field(row map[string]string, key string) string {
	return strings.TrimSpace(row[key])
}

func optional(row map[string]string, key string) *string {
	v := field(row, key)
	if v == "" {
		return nil
	}
	return &v
}
