package narrative

import (
	"fmt"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

func languageName(lang models.Language) string {
	if lang == models.LanguageBengali {
		return "Bengali"
	}
	return "English"
}

// DailyRecordPrompt asks for a short review of one day of farm data.
func DailyRecordPrompt(record models.DailyRecord, lang models.Language) string {
	medicine := record.MedicineName
	if medicine == "" {
		medicine = "None"
	}

	return fmt.Sprintf(`Analyze the following poultry farm daily record and provide a brief summary of key insights or observations, potential issues, or positive aspects. Focus on production efficiency, cost management, and flock health. Respond in %s.

Daily Record for %s:
- Crates Produced: %d
- Egg Price per Piece: $%g
- Feed Bags Used: %d
- Feed Total Cost: $%g
- Medicine Used: %s
- Medicine Cost: $%g
- Total Chickens: %d
- Laying Chickens: %d
- Non-Laying Chickens: %d

Provide analysis in a concise, paragraph format.`,
		languageName(lang), record.Date,
		record.CratesProduced, record.EggPricePerPiece,
		record.FeedBagsUsed, record.FeedTotalCost,
		medicine, record.MedicineCost,
		record.TotalChickens, record.LayingChickens, record.NonLayingChickens)
}

// AnomalyPrompt asks for causes and recommendations for a detected deviation.
func AnomalyPrompt(description string, lang models.Language) string {
	return fmt.Sprintf("An anomaly has been detected in the poultry farm data: %s. Provide a detailed explanation of what this might indicate, potential causes, and actionable recommendations for the farm owner. Be comprehensive and respond in %s.",
		description, languageName(lang))
}

// MarketPrompt asks for current egg and feed prices, backed by web search.
func MarketPrompt(period models.Period, lang models.Language) string {
	return fmt.Sprintf("Based on the month %s, what are the average market prices for eggs (per piece) and common poultry feed (per bag) in the current market? Also, provide some general market trends or news for poultry products if available. Use Google Search to find up-to-date information. Summarize the findings concisely and mention the sources. Respond in %s.",
		period.Key(), languageName(lang))
}
