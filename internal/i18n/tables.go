package i18n

import "strings"

const (
	// FallbackFlagCode is returned for countries without a known ISO 3166 code.
	FallbackFlagCode = "xx"
	// FallbackFlag is rendered in place of a national flag for unknown countries.
	FallbackFlag = "🏁"
)

// countries maps the country names used by the results API to their Czech names.
var countries = map[string]string{
	"Argentina":     "Argentina",
	"Australia":     "Austrálie",
	"Austria":       "Rakousko",
	"Azerbaijan":    "Ázerbájdžán",
	"Bahrain":       "Bahrajn",
	"Belgium":       "Belgie",
	"Brazil":        "Brazílie",
	"Canada":        "Kanada",
	"China":         "Čína",
	"Denmark":       "Dánsko",
	"Finland":       "Finsko",
	"France":        "Francie",
	"Germany":       "Německo",
	"Hungary":       "Maďarsko",
	"India":         "Indie",
	"Italy":         "Itálie",
	"Japan":         "Japonsko",
	"Korea":         "Jižní Korea",
	"Malaysia":      "Malajsie",
	"Mexico":        "Mexiko",
	"Monaco":        "Monako",
	"Netherlands":   "Nizozemsko",
	"New Zealand":   "Nový Zéland",
	"Poland":        "Polsko",
	"Portugal":      "Portugalsko",
	"Qatar":         "Katar",
	"Russia":        "Rusko",
	"Saudi Arabia":  "Saúdská Arábie",
	"Singapore":     "Singapur",
	"South Africa":  "Jihoafrická republika",
	"Spain":         "Španělsko",
	"Sweden":        "Švédsko",
	"Switzerland":   "Švýcarsko",
	"Thailand":      "Thajsko",
	"Turkey":        "Turecko",
	"UAE":           "Spojené arabské emiráty",
	"UK":            "Velká Británie",
	"United States": "Spojené státy",
	"USA":           "Spojené státy",
	"Vietnam":       "Vietnam",
}

// flagCodes maps the country names used by the results API to ISO 3166-1 alpha-2 codes.
var flagCodes = map[string]string{
	"Argentina":     "ar",
	"Australia":     "au",
	"Austria":       "at",
	"Azerbaijan":    "az",
	"Bahrain":       "bh",
	"Belgium":       "be",
	"Brazil":        "br",
	"Canada":        "ca",
	"China":         "cn",
	"Denmark":       "dk",
	"Finland":       "fi",
	"France":        "fr",
	"Germany":       "de",
	"Hungary":       "hu",
	"India":         "in",
	"Italy":         "it",
	"Japan":         "jp",
	"Korea":         "kr",
	"Malaysia":      "my",
	"Mexico":        "mx",
	"Monaco":        "mc",
	"Netherlands":   "nl",
	"New Zealand":   "nz",
	"Poland":        "pl",
	"Portugal":      "pt",
	"Qatar":         "qa",
	"Russia":        "ru",
	"Saudi Arabia":  "sa",
	"Singapore":     "sg",
	"South Africa":  "za",
	"Spain":         "es",
	"Sweden":        "se",
	"Switzerland":   "ch",
	"Thailand":      "th",
	"Turkey":        "tr",
	"UAE":           "ae",
	"UK":            "gb",
	"United States": "us",
	"USA":           "us",
	"Vietnam":       "vn",
}

// nationalities maps driver and constructor nationalities to the country they represent.
var nationalities = map[string]string{
	"American":      "USA",
	"Argentine":     "Argentina",
	"Argentinian":   "Argentina",
	"Australian":    "Australia",
	"Austrian":      "Austria",
	"Belgian":       "Belgium",
	"Brazilian":     "Brazil",
	"British":       "UK",
	"Canadian":      "Canada",
	"Chinese":       "China",
	"Danish":        "Denmark",
	"Dutch":         "Netherlands",
	"Finnish":       "Finland",
	"French":        "France",
	"German":        "Germany",
	"Italian":       "Italy",
	"Japanese":      "Japan",
	"Mexican":       "Mexico",
	"Monegasque":    "Monaco",
	"New Zealander": "New Zealand",
	"Polish":        "Poland",
	"Russian":       "Russia",
	"Spanish":       "Spain",
	"Swedish":       "Sweden",
	"Swiss":         "Switzerland",
	"Thai":          "Thailand",
}

// CountryName returns the Czech name of a country. Unknown countries are returned unchanged.
func CountryName(country string) string {
	if cs, ok := countries[country]; ok {
		return cs
	}
	return country
}

// NationalityCountry returns the country a nationality belongs to. Unknown nationalities are
// returned unchanged.
func NationalityCountry(nationality string) string {
	if c, ok := nationalities[nationality]; ok {
		return c
	}
	return nationality
}

// FlagCode returns the lowercase ISO 3166-1 alpha-2 code of a country or FallbackFlagCode.
func FlagCode(country string) string {
	if code, ok := flagCodes[country]; ok {
		return code
	}
	return FallbackFlagCode
}

// Flag returns the emoji flag of a country or FallbackFlag.
func Flag(country string) string {
	code := FlagCode(country)
	if code == FallbackFlagCode {
		return FallbackFlag
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		// regional indicator symbols start at U+1F1E6 for 'A'
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}
