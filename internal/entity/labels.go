package entity

// The intake form submits short codes; the sheet stores display labels so the
// sales team reads them as-is. The vocabulary is closed and rarely changes,
// hence plain maps instead of anything extensible. Unrecognized codes pass
// through unchanged: the lookup is a convenience, not a schema.

var ServiceLabels = map[string]string{
	"web-design":  "Web Design & Development",
	"ecommerce":   "E-commerce Development",
	"seo":         "SEO & Content Strategy",
	"branding":    "Branding & Identity",
	"maintenance": "Site Maintenance & Support",
}

var BudgetLabels = map[string]string{
	"under-1k": "Under $1,000",
	"1k-5k":    "$1,000 - $5,000",
	"5k-10k":   "$5,000 - $10,000",
	"10k-plus": "$10,000+",
	"not-sure": "Not sure yet",
}

var ReferralLabels = map[string]string{
	"google":   "Google Search",
	"social":   "Social Media",
	"referral": "Word of Mouth",
	"ad":       "Online Ad",
	"other":    "Other",
}

// ResolveLabel maps a form code to its display label, falling back to the
// input when the code is unknown.
func ResolveLabel(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}
