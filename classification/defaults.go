package classification

// Markets.
const (
	Developed = "Developed"
	Emerging  = "Emerging"
	Frontier  = "Frontier"
)

// Regions.
const (
	NorthAmerica = "North America"
	LatinAmerica = "Latin America"
	Europe       = "Europe"
	MiddleEast   = "Middle East"
	Africa       = "Africa"
	Asia         = "Asia"
	Pacific      = "Pacific"
)

// countries lists the built-in countries. The first name is the usual one,
// the others are aliases found in fund factsheets.
var countries = []struct {
	Country
	names []string
}{
	{Country{NorthAmerica, Developed}, []string{"United States", "USA", "US", "United States of America"}},
	{Country{NorthAmerica, Developed}, []string{"Canada"}},

	{Country{LatinAmerica, Emerging}, []string{"Brazil"}},
	{Country{LatinAmerica, Emerging}, []string{"Mexico"}},
	{Country{LatinAmerica, Emerging}, []string{"Chile"}},
	{Country{LatinAmerica, Emerging}, []string{"Colombia"}},
	{Country{LatinAmerica, Emerging}, []string{"Peru"}},
	{Country{LatinAmerica, Frontier}, []string{"Argentina"}},

	{Country{Europe, Developed}, []string{"United Kingdom", "UK", "Great Britain"}},
	{Country{Europe, Developed}, []string{"Ireland"}},
	{Country{Europe, Developed}, []string{"France"}},
	{Country{Europe, Developed}, []string{"Germany"}},
	{Country{Europe, Developed}, []string{"Netherlands", "The Netherlands"}},
	{Country{Europe, Developed}, []string{"Belgium"}},
	{Country{Europe, Developed}, []string{"Luxembourg"}},
	{Country{Europe, Developed}, []string{"Switzerland"}},
	{Country{Europe, Developed}, []string{"Austria"}},
	{Country{Europe, Developed}, []string{"Italy"}},
	{Country{Europe, Developed}, []string{"Spain"}},
	{Country{Europe, Developed}, []string{"Portugal"}},
	{Country{Europe, Developed}, []string{"Denmark"}},
	{Country{Europe, Developed}, []string{"Sweden"}},
	{Country{Europe, Developed}, []string{"Norway"}},
	{Country{Europe, Developed}, []string{"Finland"}},
	{Country{Europe, Emerging}, []string{"Poland"}},
	{Country{Europe, Emerging}, []string{"Czech Republic", "Czechia"}},
	{Country{Europe, Emerging}, []string{"Hungary"}},
	{Country{Europe, Emerging}, []string{"Greece"}},
	{Country{Europe, Emerging}, []string{"Turkey", "Türkiye"}},
	{Country{Europe, Frontier}, []string{"Romania"}},
	{Country{Europe, Frontier}, []string{"Estonia"}},
	{Country{Europe, Frontier}, []string{"Lithuania"}},
	{Country{Europe, Frontier}, []string{"Slovenia"}},
	{Country{Europe, Frontier}, []string{"Croatia"}},

	{Country{MiddleEast, Developed}, []string{"Israel"}},
	{Country{MiddleEast, Emerging}, []string{"Saudi Arabia"}},
	{Country{MiddleEast, Emerging}, []string{"United Arab Emirates", "UAE"}},
	{Country{MiddleEast, Emerging}, []string{"Qatar"}},
	{Country{MiddleEast, Emerging}, []string{"Kuwait"}},
	{Country{MiddleEast, Frontier}, []string{"Bahrain"}},
	{Country{MiddleEast, Frontier}, []string{"Oman"}},
	{Country{MiddleEast, Frontier}, []string{"Jordan"}},

	{Country{Africa, Emerging}, []string{"South Africa"}},
	{Country{Africa, Emerging}, []string{"Egypt"}},
	{Country{Africa, Frontier}, []string{"Morocco"}},
	{Country{Africa, Frontier}, []string{"Nigeria"}},
	{Country{Africa, Frontier}, []string{"Kenya"}},
	{Country{Africa, Frontier}, []string{"Mauritius"}},

	{Country{Asia, Developed}, []string{"Japan"}},
	{Country{Asia, Developed}, []string{"Hong Kong"}},
	{Country{Asia, Developed}, []string{"Singapore"}},
	{Country{Asia, Emerging}, []string{"China"}},
	{Country{Asia, Emerging}, []string{"India"}},
	{Country{Asia, Emerging}, []string{"Taiwan"}},
	{Country{Asia, Emerging}, []string{"South Korea", "Korea", "Republic of Korea"}},
	{Country{Asia, Emerging}, []string{"Indonesia"}},
	{Country{Asia, Emerging}, []string{"Thailand"}},
	{Country{Asia, Emerging}, []string{"Malaysia"}},
	{Country{Asia, Emerging}, []string{"Philippines"}},
	{Country{Asia, Frontier}, []string{"Vietnam", "Viet Nam"}},
	{Country{Asia, Frontier}, []string{"Bangladesh"}},
	{Country{Asia, Frontier}, []string{"Sri Lanka"}},
	{Country{Asia, Frontier}, []string{"Pakistan"}},
	{Country{Asia, Frontier}, []string{"Kazakhstan"}},

	{Country{Pacific, Developed}, []string{"Australia"}},
	{Country{Pacific, Developed}, []string{"New Zealand"}},
}

// sectors lists the built-in canonical sectors (GICS) and their synonyms.
var sectors = []struct {
	canonical string
	synonyms  []string
}{
	{"Information Technology", []string{"Technology", "Tech", "IT"}},
	{"Financials", []string{"Financial", "Financial Services", "Finance"}},
	{"Health Care", []string{"Healthcare", "Health"}},
	{"Consumer Discretionary", []string{"Consumer Cyclical", "Consumer Cyclicals"}},
	{"Consumer Staples", []string{"Consumer Defensive", "Consumer Non-Cyclicals"}},
	{"Communication Services", []string{"Communication", "Communications", "Telecommunication Services", "Telecommunications"}},
	{"Industrials", []string{"Industrial"}},
	{"Materials", []string{"Basic Materials"}},
	{"Energy", nil},
	{"Utilities", nil},
	{"Real Estate", []string{"REIT", "Real-Estate"}},
	{"Cash", []string{"Cash and/or Derivatives", "Cash and Derivatives"}},
	{"Other", nil},
}

// Default returns a new table filled with the built-in countries and sectors.
func Default() *Table {
	t := New()
	for _, c := range countries {
		t.SetCountry(c.Country, c.names...)
	}
	for _, s := range sectors {
		t.AddSector(s.canonical, s.synonyms...)
	}
	return t
}
