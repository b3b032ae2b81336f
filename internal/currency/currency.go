// Package currency is a static reference table mapping currency codes to
// display symbols and names, plus a formatter for rendering amounts.
// Lookups never fail: unknown codes fall back to a generic "$" symbol and
// an "Unknown" name.
package currency

import "sort"

// Info describes how a currency is displayed.
type Info struct {
	Symbol string
	Name   string
}

const (
	fallbackSymbol = "$"
	fallbackName   = "Unknown"
)

var currencies = map[string]Info{
	"INR": {"₹", "Indian Rupee"},
	"USD": {"$", "US Dollar"},
	"EUR": {"€", "Euro"},
	"GBP": {"£", "British Pound"},
	"JPY": {"¥", "Japanese Yen"},
	"AUD": {"A$", "Australian Dollar"},
	"CAD": {"C$", "Canadian Dollar"},
	"CHF": {"Fr", "Swiss Franc"},
	"CNY": {"¥", "Chinese Yuan"},
	"KRW": {"₩", "South Korean Won"},
	"SGD": {"S$", "Singapore Dollar"},
	"HKD": {"HK$", "Hong Kong Dollar"},
	"MXN": {"MX$", "Mexican Peso"},
	"BRL": {"R$", "Brazilian Real"},
	"RUB": {"₽", "Russian Ruble"},
	"SAR": {"ر.س", "Saudi Riyal"},
	"AED": {"د.إ", "UAE Dirham"},
	"ZAR": {"R", "South African Rand"},
	"THB": {"฿", "Thai Baht"},
	"IDR": {"Rp", "Indonesian Rupiah"},
	"MYR": {"RM", "Malaysian Ringgit"},
	"PHP": {"₱", "Philippine Peso"},
	"VND": {"₫", "Vietnamese Dong"},
	"BDT": {"৳", "Bangladeshi Taka"},
	"PKR": {"₨", "Pakistani Rupee"},
	"LKR": {"Rs", "Sri Lankan Rupee"},
	"NPR": {"Rs", "Nepalese Rupee"},
	"EGP": {"£", "Egyptian Pound"},
	"NGN": {"₦", "Nigerian Naira"},
	"KES": {"Sh", "Kenyan Shilling"},
	"GHS": {"₵", "Ghanaian Cedi"},
	"TRY": {"₺", "Turkish Lira"},
	"ILS": {"₪", "Israeli Shekel"},
	"NOK": {"kr", "Norwegian Krone"},
	"SEK": {"kr", "Swedish Krona"},
	"DKK": {"kr", "Danish Krone"},
	"CZK": {"Kč", "Czech Koruna"},
	"PLN": {"zł", "Polish Zloty"},
	"HUF": {"Ft", "Hungarian Forint"},
	"RON": {"L", "Romanian Leu"},
	"BGN": {"лв", "Bulgarian Lev"},
	"HRK": {"kn", "Croatian Kuna"},
	"ISK": {"kr", "Icelandic Krona"},
	"NZD": {"NZ$", "New Zealand Dollar"},
	"CLP": {"CLP$", "Chilean Peso"},
	"COP": {"COL$", "Colombian Peso"},
	"ARS": {"AR$", "Argentine Peso"},
	"PEN": {"S/", "Peruvian Sol"},
	"UYU": {"UY$", "Uruguayan Peso"},
	"BOB": {"Bs", "Bolivian Boliviano"},
	"ETB": {"Br", "Ethiopian Birr"},
	"MAD": {"د.م.", "Moroccan Dirham"},
	"TND": {"د.ت", "Tunisian Dinar"},
	"DZD": {"د.ج", "Algerian Dinar"},
	"LYD": {"د.ل", "Libyan Dinar"},
	"JOD": {"د.ا", "Jordanian Dinar"},
	"KWD": {"د.ك", "Kuwaiti Dinar"},
	"QAR": {"ر.ق", "Qatari Riyal"},
	"BHD": {"ب.د", "Bahraini Dinar"},
	"OMR": {"ر.ع.", "Omani Rial"},
	"LBP": {"ل.ل", "Lebanese Pound"},
	"IQD": {"ع.د", "Iraqi Dinar"},
	"IRR": {"﷼", "Iranian Rial"},
	"AFN": {"؋", "Afghan Afghani"},
	"UZS": {"лв", "Uzbekistani Som"},
	"KZT": {"₸", "Kazakhstani Tenge"},
	"KGS": {"лв", "Kyrgyzstani Som"},
	"TJS": {"ЅМ", "Tajikistani Somoni"},
	"TMT": {"T", "Turkmenistani Manat"},
	"AZN": {"₼", "Azerbaijani Manat"},
	"GEL": {"₾", "Georgian Lari"},
	"AMD": {"֏", "Armenian Dram"},
	"BWP": {"P", "Botswanan Pula"},
	"NAD": {"N$", "Namibian Dollar"},
	"SZL": {"E", "Swazi Lilangeni"},
	"LSL": {"L", "Lesotho Loti"},
	"MWK": {"MK", "Malawian Kwacha"},
	"ZMW": {"ZK", "Zambian Kwacha"},
	"ZWL": {"Z$", "Zimbabwean Dollar"},
	"MZN": {"MT", "Mozambican Metical"},
	"AOA": {"Kz", "Angolan Kwanza"},
	"XAF": {"CFA", "Central African CFA Franc"},
	"XOF": {"CFA", "West African CFA Franc"},
	"BTC": {"₿", "Bitcoin"},
	"ETH": {"Ξ", "Ethereum"},
}

// Symbol returns the display symbol for a code, or "$" if unknown.
func Symbol(code string) string {
	if info, ok := currencies[code]; ok {
		return info.Symbol
	}

	return fallbackSymbol
}

// Name returns the display name for a code, or "Unknown".
func Name(code string) string {
	if info, ok := currencies[code]; ok {
		return info.Name
	}

	return fallbackName
}

// DisplayText renders "<symbol> <name> (<code>)" for pickers.
func DisplayText(code string) string {
	return Symbol(code) + " " + Name(code) + " (" + code + ")"
}

// Codes returns all known currency codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}
