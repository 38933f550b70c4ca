package i18n

import (
	"fmt"

	"github.com/mamadbah2/khamar/internal/analytics"
	"github.com/mamadbah2/khamar/internal/domain/models"
)

var bengaliMonths = [12]string{
	"জানুয়ারী", "ফেব্রুয়ারী", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

var bengaliDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// LongMonth renders p as "January 2024" in the translator's language.
func LongMonth(tr Translator, p models.Period) string {
	if tr.Language() != models.LanguageBengali {
		return analytics.LongMonthLabel(p)
	}
	return fmt.Sprintf("%s %s", bengaliMonths[p.Month-1], bengaliNumber(fmt.Sprintf("%04d", p.Year)))
}

// ShortMonth renders p as "Jan 24" in the translator's language.
func ShortMonth(tr Translator, p models.Period) string {
	if tr.Language() != models.LanguageBengali {
		return analytics.ShortMonthLabel(p)
	}
	return fmt.Sprintf("%s %s", bengaliMonths[p.Month-1], bengaliNumber(fmt.Sprintf("%02d", p.Year%100)))
}

func bengaliNumber(ascii string) string {
	out := make([]rune, 0, len(ascii))
	for _, r := range ascii {
		if r >= '0' && r <= '9' {
			out = append(out, bengaliDigits[r-'0'])
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
