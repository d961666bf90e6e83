package migrate

import (
	"github.com/dlclark/regexp2"
	"gorm.io/gorm"

	"github.com/Edu-space-IDC/restaurante-sub000/internal/domain"
	"github.com/Edu-space-IDC/restaurante-sub000/internal/repository/dao"
)

func steps() []Step {
	return []Step{
		{Version: 2, Name: "normalize grade categories", Apply: normalizeGradeCategories},
		{Version: 3, Name: "backfill grade schedules", Apply: backfillGradeSchedules},
		{Version: 3, Name: "backfill meal record dates", Apply: backfillMealDates},
	}
}

// Category values written by retired versions of the app, keyed to their
// replacements.
var legacyCategories = map[string]string{
	"especiales":   domain.CategoryTecnica,
	"tecnica":      domain.CategoryTecnica,
	"transicion":   domain.CategoryPreescolar,
	"bachillerato": domain.CategorySecundaria,
}

// Name-pattern rules reclassify grades whose stored category is unusable.
// They only ever run during this migration; Grade.Category is the single
// source of truth everywhere else.
var namePatterns = []struct {
	re       *regexp2.Regexp
	category string
}{
	{regexp2.MustCompile(`(?i)(jard[ií]n|transici[oó]n|p[aá]rvulos|preescolar)`, 0), domain.CategoryPreescolar},
	{regexp2.MustCompile(`(?i)(t[eé]cnic|especial|modalidad)`, 0), domain.CategoryTecnica},
	{regexp2.MustCompile(`(?i)\b(10|11|d[eé]cimo|und[eé]cimo|once)\b`, 0), domain.CategoryMedia},
	{regexp2.MustCompile(`(?i)\b(6|7|8|9|sexto|s[eé]ptimo|octavo|noveno)\b`, 0), domain.CategorySecundaria},
	{regexp2.MustCompile(`(?i)\b(1|2|3|4|5|primero|segundo|tercero|cuarto|quinto)\b`, 0), domain.CategoryPrimaria},
}

// classifyCategory is the pure transform behind the v2 step. Valid
// categories pass through unchanged, which is what makes the step
// idempotent.
func classifyCategory(category, name string) string {
	if replacement, ok := legacyCategories[category]; ok {
		return replacement
	}
	if domain.ValidCategory(category) {
		return category
	}

	for _, p := range namePatterns {
		if matched, _ := p.re.MatchString(name); matched {
			return p.category
		}
	}

	return domain.CategoryPrimaria
}

func normalizeGradeCategories(tx *gorm.DB) error {
	var grades []dao.Grade
	if err := tx.Find(&grades).Error; err != nil {
		return err
	}

	for _, g := range grades {
		category := classifyCategory(g.Category, g.Name)
		if category == g.Category {
			continue
		}

		err := tx.Model(&dao.Grade{}).Where("id = ?", g.ID).Update("category", category).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Default meal window written into grades that predate scheduling.
const (
	defaultScheduleStart = "12:00"
	defaultScheduleEnd   = "12:30"
)

func backfillGradeSchedules(tx *gorm.DB) error {
	err := tx.Model(&dao.Grade{}).
		Where("schedule_start IS NULL OR schedule_start = ''").
		Update("schedule_start", defaultScheduleStart).Error
	if err != nil {
		return err
	}

	return tx.Model(&dao.Grade{}).
		Where("schedule_end IS NULL OR schedule_end = ''").
		Update("schedule_end", defaultScheduleEnd).Error
}

// Early versions derived the calendar day on demand; persist it so the
// conflict guard and the stats queries can key on it.
func backfillMealDates(tx *gorm.DB) error {
	var records []dao.MealRecord
	if err := tx.Where("date IS NULL OR date = ''").Find(&records).Error; err != nil {
		return err
	}

	for _, r := range records {
		date := r.RegisteredAt.Local().Format(domain.DateLayout)

		err := tx.Model(&dao.MealRecord{}).Where("id = ?", r.ID).Update("date", date).Error
		if err != nil {
			return err
		}
	}

	return nil
}
