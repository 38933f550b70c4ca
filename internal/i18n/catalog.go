package i18n

import "github.com/mamadbah2/khamar/internal/domain/models"

var catalog = map[models.Language]map[Key]string{
	models.LanguageEnglish: {
		NoRecentData:        "No recent data for anomaly detection.",
		NoAnomaly:           "No significant anomaly detected.",
		EggProductionAnom:   "Egg production anomaly",
		FeedCostAnom:        "Feed cost anomaly",
		MedicineCostAnom:    "Medicine cost anomaly",
		NoDataForMonth:      "No data available for",
		CannotBeNegative:    "Cannot be negative.",
		FieldRequired:       "This field is required.",
		InvalidDate:         "Date must be in YYYY-MM-DD format.",
		FlockExceedsTotal:   "Laying and non-laying chickens cannot exceed total chickens.",
		CorrectFormErrors:   "Please correct the errors in the form.",
		RecordSaved:         "Daily record saved successfully!",
		RecordUpdated:       "Daily record updated successfully!",
		SaveFailed:          "Failed to save record",
		UpdateFailed:        "Failed to update record",
		DeleteFailed:        "Failed to delete record.",
		LoadRecordsFailed:   "Could not load daily records. Please check your connection or try again.",
		AnalysisFailed:      "Failed to get AI analysis.",
		AnomalyFailed:       "Failed to get anomaly analysis.",
		MarketFailed:        "Failed to get market insights",
		InvalidCredentials:  "Invalid credentials",
		ColMonth:            "Month",
		ColEggProduction:    "Total Egg Production (pcs)",
		ColEggRevenue:       "Total Egg Revenue (USD)",
		ColFeedExpenses:     "Total Feed Expenses (USD)",
		ColMedicineExpenses: "Total Medicine Expenses (USD)",
		ColTotalExpenses:    "Total Expenses (USD)",
		ColProfitOrLoss:     "Profit/Loss (USD)",
		MonthlyReportTitle:  "Monthly farm report",
		AnomalyAlertTitle:   "Anomaly detected",
	},
	models.LanguageBengali: {
		NoRecentData:        "অস্বাভাবিকতা শনাক্তকরণের জন্য সাম্প্রতিক কোনো তথ্য নেই।",
		NoAnomaly:           "উল্লেখযোগ্য কোনো অস্বাভাবিকতা পাওয়া যায়নি।",
		EggProductionAnom:   "ডিম উৎপাদনে অস্বাভাবিকতা",
		FeedCostAnom:        "খাদ্য খরচে অস্বাভাবিকতা",
		MedicineCostAnom:    "ওষুধ খরচে অস্বাভাবিকতা",
		NoDataForMonth:      "কোনো তথ্য নেই",
		CannotBeNegative:    "ঋণাত্মক হতে পারে না।",
		FieldRequired:       "এই ঘরটি পূরণ করা আবশ্যক।",
		InvalidDate:         "তারিখ YYYY-MM-DD আকারে দিন।",
		FlockExceedsTotal:   "ডিম পাড়া ও না পাড়া মুরগির সংখ্যা মোট মুরগির চেয়ে বেশি হতে পারে না।",
		CorrectFormErrors:   "অনুগ্রহ করে ফর্মের ভুলগুলো সংশোধন করুন।",
		RecordSaved:         "দৈনিক রেকর্ড সফলভাবে সংরক্ষিত হয়েছে!",
		RecordUpdated:       "দৈনিক রেকর্ড সফলভাবে হালনাগাদ হয়েছে!",
		SaveFailed:          "রেকর্ড সংরক্ষণ ব্যর্থ হয়েছে",
		UpdateFailed:        "রেকর্ড হালনাগাদ ব্যর্থ হয়েছে",
		DeleteFailed:        "রেকর্ড মুছে ফেলা ব্যর্থ হয়েছে।",
		LoadRecordsFailed:   "দৈনিক রেকর্ড লোড করা যায়নি। সংযোগ পরীক্ষা করে আবার চেষ্টা করুন।",
		AnalysisFailed:      "এআই বিশ্লেষণ পাওয়া যায়নি।",
		AnomalyFailed:       "অস্বাভাবিকতার বিশ্লেষণ পাওয়া যায়নি।",
		MarketFailed:        "বাজারের তথ্য পাওয়া যায়নি",
		InvalidCredentials:  "ভুল ব্যবহারকারীর নাম বা পাসওয়ার্ড",
		ColMonth:            "মাস",
		ColEggProduction:    "মোট ডিম উৎপাদন (পিস)",
		ColEggRevenue:       "মোট ডিম বিক্রয় আয় (USD)",
		ColFeedExpenses:     "মোট খাদ্য খরচ (USD)",
		ColMedicineExpenses: "মোট ওষুধ খরচ (USD)",
		ColTotalExpenses:    "মোট খরচ (USD)",
		ColProfitOrLoss:     "লাভ/ক্ষতি (USD)",
		MonthlyReportTitle:  "মাসিক খামার প্রতিবেদন",
		AnomalyAlertTitle:   "অস্বাভাবিকতা শনাক্ত হয়েছে",
	},
}
