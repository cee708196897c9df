// Package geo maps ISO 3166-1 alpha-2 country codes onto the seven
// continents. The lookup is total: anything it cannot place, including the
// "UNK" sentinel the pipeline writes for missing countries, resolves to
// Unknown.
package geo

import "strings"

const (
	Africa       = "Africa"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	SouthAmerica = "South America"
	Oceania      = "Oceania"
	Antarctica   = "Antarctica"
	Unknown      = "Unknown"
)

// Continent resolves an alpha-2 country code to a continent name. Case and
// surrounding whitespace are ignored. Never fails; unresolvable input maps
// to Unknown.
func Continent(countryCode string) string {
	if continent, ok := continentByCountry[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return continent
	}
	return Unknown
}

var continentByCountry = map[string]string{
	// Europe
	"AD": Europe, "AL": Europe, "AT": Europe, "AX": Europe, "BA": Europe,
	"BE": Europe, "BG": Europe, "BY": Europe, "CH": Europe, "CY": Europe,
	"CZ": Europe, "DE": Europe, "DK": Europe, "EE": Europe, "ES": Europe,
	"FI": Europe, "FO": Europe, "FR": Europe, "GB": Europe, "GG": Europe,
	"GI": Europe, "GR": Europe, "HR": Europe, "HU": Europe, "IE": Europe,
	"IM": Europe, "IS": Europe, "IT": Europe, "JE": Europe, "LI": Europe,
	"LT": Europe, "LU": Europe, "LV": Europe, "MC": Europe, "MD": Europe,
	"ME": Europe, "MK": Europe, "MT": Europe, "NL": Europe, "NO": Europe,
	"PL": Europe, "PT": Europe, "RO": Europe, "RS": Europe, "RU": Europe,
	"SE": Europe, "SI": Europe, "SJ": Europe, "SK": Europe, "SM": Europe,
	"UA": Europe, "VA": Europe,

	// Asia
	"AE": Asia, "AF": Asia, "AM": Asia, "AZ": Asia, "BD": Asia,
	"BH": Asia, "BN": Asia, "BT": Asia, "CC": Asia, "CN": Asia,
	"CX": Asia, "GE": Asia, "HK": Asia, "ID": Asia, "IL": Asia,
	"IN": Asia, "IO": Asia, "IQ": Asia, "IR": Asia, "JO": Asia,
	"JP": Asia, "KG": Asia, "KH": Asia, "KP": Asia, "KR": Asia,
	"KW": Asia, "KZ": Asia, "LA": Asia, "LB": Asia, "LK": Asia,
	"MM": Asia, "MN": Asia, "MO": Asia, "MV": Asia, "MY": Asia,
	"NP": Asia, "OM": Asia, "PH": Asia, "PK": Asia, "PS": Asia,
	"QA": Asia, "SA": Asia, "SG": Asia, "SY": Asia, "TH": Asia,
	"TJ": Asia, "TL": Asia, "TM": Asia, "TR": Asia, "TW": Asia,
	"UZ": Asia, "VN": Asia, "YE": Asia,

	// Africa
	"AO": Africa, "BF": Africa, "BI": Africa, "BJ": Africa, "BW": Africa,
	"CD": Africa, "CF": Africa, "CG": Africa, "CI": Africa, "CM": Africa,
	"CV": Africa, "DJ": Africa, "DZ": Africa, "EG": Africa, "EH": Africa,
	"ER": Africa, "ET": Africa, "GA": Africa, "GH": Africa, "GM": Africa,
	"GN": Africa, "GQ": Africa, "GW": Africa, "KE": Africa, "KM": Africa,
	"LR": Africa, "LS": Africa, "LY": Africa, "MA": Africa, "MG": Africa,
	"ML": Africa, "MR": Africa, "MU": Africa, "MW": Africa, "MZ": Africa,
	"NA": Africa, "NE": Africa, "NG": Africa, "RE": Africa, "RW": Africa,
	"SC": Africa, "SD": Africa, "SH": Africa, "SL": Africa, "SN": Africa,
	"SO": Africa, "SS": Africa, "ST": Africa, "SZ": Africa, "TD": Africa,
	"TG": Africa, "TN": Africa, "TZ": Africa, "UG": Africa, "YT": Africa,
	"ZA": Africa, "ZM": Africa, "ZW": Africa,

	// North America
	"AG": NorthAmerica, "AI": NorthAmerica, "AW": NorthAmerica, "BB": NorthAmerica,
	"BL": NorthAmerica, "BM": NorthAmerica, "BS": NorthAmerica, "BZ": NorthAmerica,
	"CA": NorthAmerica, "CR": NorthAmerica, "CU": NorthAmerica, "CW": NorthAmerica,
	"DM": NorthAmerica, "DO": NorthAmerica, "GD": NorthAmerica, "GL": NorthAmerica,
	"GP": NorthAmerica, "GT": NorthAmerica, "HN": NorthAmerica, "HT": NorthAmerica,
	"JM": NorthAmerica, "KN": NorthAmerica, "KY": NorthAmerica, "LC": NorthAmerica,
	"MF": NorthAmerica, "MQ": NorthAmerica, "MS": NorthAmerica, "MX": NorthAmerica,
	"NI": NorthAmerica, "PA": NorthAmerica, "PM": NorthAmerica, "PR": NorthAmerica,
	"SV": NorthAmerica, "SX": NorthAmerica, "TC": NorthAmerica, "TT": NorthAmerica,
	"US": NorthAmerica, "VC": NorthAmerica, "VG": NorthAmerica, "VI": NorthAmerica,

	// South America
	"AR": SouthAmerica, "BO": SouthAmerica, "BR": SouthAmerica, "CL": SouthAmerica,
	"CO": SouthAmerica, "EC": SouthAmerica, "FK": SouthAmerica, "GF": SouthAmerica,
	"GY": SouthAmerica, "PE": SouthAmerica, "PY": SouthAmerica, "SR": SouthAmerica,
	"UY": SouthAmerica, "VE": SouthAmerica,

	// Oceania
	"AS": Oceania, "AU": Oceania, "CK": Oceania, "FJ": Oceania, "FM": Oceania,
	"GU": Oceania, "KI": Oceania, "MH": Oceania, "MP": Oceania, "NC": Oceania,
	"NF": Oceania, "NR": Oceania, "NU": Oceania, "NZ": Oceania, "PF": Oceania,
	"PG": Oceania, "PN": Oceania, "PW": Oceania, "SB": Oceania, "TK": Oceania,
	"TO": Oceania, "TV": Oceania, "UM": Oceania, "VU": Oceania, "WF": Oceania,
	"WS": Oceania,

	// Antarctica
	"AQ": Antarctica, "BV": Antarctica, "GS": Antarctica, "HM": Antarctica,
	"TF": Antarctica,
}
