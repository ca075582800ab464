package universe

// defaultSymbols is the built-in fallback universe: S&P 100 components plus
// other liquid large caps across sectors.
var defaultSymbols = []string{
	// Technology
	"AAPL", "MSFT", "GOOGL", "GOOG", "AMZN", "META", "NVDA", "TSLA", "AVGO", "ORCL",
	"ADBE", "CRM", "CSCO", "ACN", "AMD", "IBM", "INTC", "QCOM", "TXN", "INTU",
	"NOW", "PANW", "AMAT", "ADI", "MU", "LRCX", "KLAC", "SNPS", "CDNS", "MCHP",

	// Healthcare
	"UNH", "JNJ", "LLY", "ABBV", "MRK", "TMO", "ABT", "DHR", "PFE", "BMY",
	"AMGN", "MDT", "GILD", "ISRG", "VRTX", "CVS", "CI", "ELV", "ZTS", "REGN",

	// Financial services
	"BRK.B", "JPM", "V", "MA", "BAC", "WFC", "GS", "MS", "AXP", "BLK",
	"SPGI", "C", "CB", "SCHW", "MMC", "PGR", "AON", "TFC", "USB", "PNC",

	// Consumer cyclical
	"HD", "MCD", "NKE", "SBUX", "LOW", "TJX", "BKNG", "CMG",
	"F", "GM", "MAR", "ABNB", "HLT", "DHI", "LEN", "NVR", "PHM", "DRI",

	// Consumer defensive
	"WMT", "PG", "KO", "PEP", "COST", "MDLZ", "PM", "MO", "CL", "KMB",
	"GIS", "HSY", "K", "SYY", "KHC", "MNST", "CLX", "CHD", "TSN", "CAG",

	// Energy
	"XOM", "CVX", "COP", "SLB", "EOG", "MPC", "PSX", "VLO", "OXY", "HES",
	"WMB", "KMI", "HAL", "BKR", "FANG", "DVN", "EQT", "CTRA",

	// Industrials
	"BA", "HON", "UNP", "RTX", "UPS", "CAT", "LMT", "GE", "DE", "GD",
	"NOC", "MMM", "ETN", "ITW", "EMR", "CSX", "NSC", "WM", "FDX", "CARR",

	// Communication services
	"NFLX", "DIS", "CMCSA", "T", "VZ", "TMUS", "CHTR", "EA",
	"TTWO", "WBD", "PARA", "OMC", "IPG", "LYV", "NWSA", "FOX", "FOXA",

	// Real estate
	"AMT", "PLD", "CCI", "EQIX", "PSA", "SPG", "O", "WELL", "DLR", "AVB",
	"EQR", "VICI", "VTR", "ARE", "INVH", "MAA", "ESS", "UDR", "EXR", "CPT",

	// Utilities
	"NEE", "DUK", "SO", "D", "AEP", "SRE", "EXC", "XEL", "ED", "PEG",
	"WEC", "ES", "DTE", "FE", "ETR", "AWK", "PPL", "EIX", "AEE", "CMS",

	// Materials
	"LIN", "APD", "SHW", "ECL", "DD", "NEM", "FCX", "NUE", "DOW", "CTVA",
	"VMC", "MLM", "ALB", "PPG", "EMN", "IFF", "CE", "FMC", "MOS", "CF",
}

// symbolNames maps tickers to company names for report display.
var symbolNames = map[string]string{
	"AAPL": "Apple Inc", "MSFT": "Microsoft", "GOOGL": "Alphabet A", "GOOG": "Alphabet C",
	"AMZN": "Amazon", "META": "Meta Platforms", "NVDA": "NVIDIA", "TSLA": "Tesla",
	"AVGO": "Broadcom", "ORCL": "Oracle", "ADBE": "Adobe", "CRM": "Salesforce",
	"CSCO": "Cisco", "ACN": "Accenture", "AMD": "AMD", "IBM": "IBM",
	"INTC": "Intel", "QCOM": "Qualcomm", "TXN": "Texas Instruments", "INTU": "Intuit",

	"UNH": "UnitedHealth", "JNJ": "Johnson & Johnson", "LLY": "Eli Lilly", "ABBV": "AbbVie",
	"MRK": "Merck", "TMO": "Thermo Fisher", "ABT": "Abbott Labs", "DHR": "Danaher",
	"PFE": "Pfizer", "BMY": "Bristol Myers", "AMGN": "Amgen", "MDT": "Medtronic",

	"BRK.B": "Berkshire Hathaway", "JPM": "JPMorgan Chase", "V": "Visa", "MA": "Mastercard",
	"BAC": "Bank of America", "WFC": "Wells Fargo", "GS": "Goldman Sachs", "MS": "Morgan Stanley",
	"AXP": "American Express", "BLK": "BlackRock", "SPGI": "S&P Global", "C": "Citigroup",

	"HD": "Home Depot", "MCD": "McDonald's", "NKE": "Nike", "SBUX": "Starbucks",
	"LOW": "Lowe's", "TJX": "TJX Companies", "BKNG": "Booking Holdings", "CMG": "Chipotle",
	"F": "Ford", "GM": "General Motors", "MAR": "Marriott", "ABNB": "Airbnb",

	"WMT": "Walmart", "PG": "Procter & Gamble", "KO": "Coca-Cola", "PEP": "PepsiCo",
	"COST": "Costco", "MDLZ": "Mondelez", "PM": "Philip Morris", "MO": "Altria",

	"XOM": "Exxon Mobil", "CVX": "Chevron", "COP": "ConocoPhillips", "SLB": "Schlumberger",
	"EOG": "EOG Resources", "MPC": "Marathon Petroleum", "PSX": "Phillips 66", "VLO": "Valero",

	"BA": "Boeing", "HON": "Honeywell", "UNP": "Union Pacific", "RTX": "Raytheon",
	"UPS": "UPS", "CAT": "Caterpillar", "LMT": "Lockheed Martin", "GE": "General Electric",
	"DE": "Deere & Co", "GD": "General Dynamics", "NOC": "Northrop Grumman", "MMM": "3M",

	"NFLX": "Netflix", "DIS": "Disney", "CMCSA": "Comcast", "T": "AT&T",
	"VZ": "Verizon", "TMUS": "T-Mobile", "CHTR": "Charter Comm", "EA": "Electronic Arts",

	"AMT": "American Tower", "PLD": "Prologis", "CCI": "Crown Castle", "EQIX": "Equinix",
	"PSA": "Public Storage", "SPG": "Simon Property", "O": "Realty Income", "WELL": "Welltower",

	"NEE": "NextEra Energy", "DUK": "Duke Energy", "SO": "Southern Co", "D": "Dominion",
	"AEP": "American Electric", "SRE": "Sempra Energy", "EXC": "Exelon", "XEL": "Xcel Energy",

	"LIN": "Linde", "APD": "Air Products", "SHW": "Sherwin-Williams", "ECL": "Ecolab",
	"DD": "DuPont", "NEM": "Newmont", "FCX": "Freeport-McMoRan", "NUE": "Nucor",
}
