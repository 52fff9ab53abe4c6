package monetary

// genericSymbol is the currency sign used when a currency has no symbol of its own.
const genericSymbol = "¤"

// iso4217 lists the active ISO 4217 currencies, the funds and special codes,
// plus a few historical codes still found in archived data.
// Columns: code, numeric code, minor unit digits, English name, symbol.
var iso4217 = []Currency{
	{"AED", "784", 2, "United Arab Emirates dirham", "د.إ"},
	{"AFN", "971", 2, "Afghan afghani", "؋"},
	{"ALL", "008", 2, "Albanian lek", "L"},
	{"AMD", "051", 2, "Armenian dram", "֏"},
	{"ANG", "532", 2, "Netherlands Antillean guilder", "ƒ"},
	{"AOA", "973", 2, "Angolan kwanza", "Kz"},
	{"ARS", "032", 2, "Argentine peso", "$"},
	{"AUD", "036", 2, "Australian dollar", "$"},
	{"AWG", "533", 2, "Aruban florin", "ƒ"},
	{"AZN", "944", 2, "Azerbaijani manat", "₼"},
	{"BAM", "977", 2, "Bosnia and Herzegovina convertible mark", "KM"},
	{"BBD", "052", 2, "Barbados dollar", "$"},
	{"BDT", "050", 2, "Bangladeshi taka", "৳"},
	{"BGN", "975", 2, "Bulgarian lev", "лв."},
	{"BHD", "048", 3, "Bahraini dinar", "BD"},
	{"BIF", "108", 0, "Burundian franc", "FBu"},
	{"BMD", "060", 2, "Bermudian dollar", "$"},
	{"BND", "096", 2, "Brunei dollar", "$"},
	{"BOB", "068", 2, "Boliviano", "Bs."},
	{"BOV", "984", 2, "Bolivian Mvdol", genericSymbol},
	{"BRL", "986", 2, "Brazilian real", "R$"},
	{"BSD", "044", 2, "Bahamian dollar", "$"},
	{"BTN", "064", 2, "Bhutanese ngultrum", "Nu."},
	{"BWP", "072", 2, "Botswana pula", "P"},
	{"BYN", "933", 2, "Belarusian ruble", "Br"},
	{"BZD", "084", 2, "Belize dollar", "BZ$"},
	{"CAD", "124", 2, "Canadian dollar", "$"},
	{"CDF", "976", 2, "Congolese franc", "FC"},
	{"CHE", "947", 2, "WIR euro", genericSymbol},
	{"CHF", "756", 2, "Swiss franc", "CHF"},
	{"CHW", "948", 2, "WIR franc", genericSymbol},
	{"CLF", "990", 4, "Unidad de Fomento", "UF"},
	{"CLP", "152", 0, "Chilean peso", "$"},
	{"CNY", "156", 2, "Renminbi", "¥"},
	{"COP", "170", 2, "Colombian peso", "$"},
	{"COU", "970", 2, "Unidad de Valor Real", genericSymbol},
	{"CRC", "188", 2, "Costa Rican colon", "₡"},
	{"CUC", "931", 2, "Cuban convertible peso", "CUC$"},
	{"CUP", "192", 2, "Cuban peso", "$"},
	{"CVE", "132", 2, "Cape Verdean escudo", "$"},
	{"CZK", "203", 2, "Czech koruna", "Kč"},
	{"DJF", "262", 0, "Djiboutian franc", "Fdj"},
	{"DKK", "208", 2, "Danish krone", "kr."},
	{"DOP", "214", 2, "Dominican peso", "RD$"},
	{"DZD", "012", 2, "Algerian dinar", "DA"},
	{"EGP", "818", 2, "Egyptian pound", "E£"},
	{"ERN", "232", 2, "Eritrean nakfa", "Nfk"},
	{"ETB", "230", 2, "Ethiopian birr", "Br"},
	{"EUR", "978", 2, "Euro", "€"},
	{"FJD", "242", 2, "Fiji dollar", "$"},
	{"FKP", "238", 2, "Falkland Islands pound", "£"},
	{"GBP", "826", 2, "Pound sterling", "£"},
	{"GEL", "981", 2, "Georgian lari", "₾"},
	{"GHS", "936", 2, "Ghanaian cedi", "GH₵"},
	{"GIP", "292", 2, "Gibraltar pound", "£"},
	{"GMD", "270", 2, "Gambian dalasi", "D"},
	{"GNF", "324", 0, "Guinean franc", "FG"},
	{"GTQ", "320", 2, "Guatemalan quetzal", "Q"},
	{"GYD", "328", 2, "Guyanese dollar", "$"},
	{"HKD", "344", 2, "Hong Kong dollar", "HK$"},
	{"HNL", "340", 2, "Honduran lempira", "L"},
	{"HTG", "332", 2, "Haitian gourde", "G"},
	{"HUF", "348", 2, "Hungarian forint", "Ft"},
	{"IDR", "360", 2, "Indonesian rupiah", "Rp"},
	{"ILS", "376", 2, "Israeli new shekel", "₪"},
	{"INR", "356", 2, "Indian rupee", "₹"},
	{"IQD", "368", 3, "Iraqi dinar", "ع.د"},
	{"IRR", "364", 2, "Iranian rial", "﷼"},
	{"ISK", "352", 0, "Icelandic króna", "kr"},
	{"JMD", "388", 2, "Jamaican dollar", "J$"},
	{"JOD", "400", 3, "Jordanian dinar", "JD"},
	{"JPY", "392", 0, "Japanese yen", "¥"},
	{"KES", "404", 2, "Kenyan shilling", "KSh"},
	{"KGS", "417", 2, "Kyrgyzstani som", "сом"},
	{"KHR", "116", 2, "Cambodian riel", "៛"},
	{"KMF", "174", 0, "Comoro franc", "CF"},
	{"KPW", "408", 2, "North Korean won", "₩"},
	{"KRW", "410", 0, "South Korean won", "₩"},
	{"KWD", "414", 3, "Kuwaiti dinar", "KD"},
	{"KYD", "136", 2, "Cayman Islands dollar", "$"},
	{"KZT", "398", 2, "Kazakhstani tenge", "₸"},
	{"LAK", "418", 2, "Lao kip", "₭"},
	{"LBP", "422", 2, "Lebanese pound", "ل.ل"},
	{"LKR", "144", 2, "Sri Lankan rupee", "Rs"},
	{"LRD", "430", 2, "Liberian dollar", "$"},
	{"LSL", "426", 2, "Lesotho loti", "L"},
	{"LYD", "434", 3, "Libyan dinar", "LD"},
	{"MAD", "504", 2, "Moroccan dirham", "MAD"},
	{"MDL", "498", 2, "Moldovan leu", "L"},
	{"MGA", "969", 2, "Malagasy ariary", "Ar"},
	{"MKD", "807", 2, "Macedonian denar", "ден"},
	{"MMK", "104", 2, "Myanmar kyat", "K"},
	{"MNT", "496", 2, "Mongolian tögrög", "₮"},
	{"MOP", "446", 2, "Macanese pataca", "MOP$"},
	{"MRU", "929", 2, "Mauritanian ouguiya", "UM"},
	{"MUR", "480", 2, "Mauritian rupee", "₨"},
	{"MVR", "462", 2, "Maldivian rufiyaa", "Rf"},
	{"MWK", "454", 2, "Malawian kwacha", "MK"},
	{"MXN", "484", 2, "Mexican peso", "$"},
	{"MXV", "979", 2, "Mexican Unidad de Inversion", genericSymbol},
	{"MYR", "458", 2, "Malaysian ringgit", "RM"},
	{"MZN", "943", 2, "Mozambican metical", "MTn"},
	{"NAD", "516", 2, "Namibian dollar", "$"},
	{"NGN", "566", 2, "Nigerian naira", "₦"},
	{"NIO", "558", 2, "Nicaraguan córdoba", "C$"},
	{"NOK", "578", 2, "Norwegian krone", "kr"},
	{"NPR", "524", 2, "Nepalese rupee", "₨"},
	{"NZD", "554", 2, "New Zealand dollar", "$"},
	{"OMR", "512", 3, "Omani rial", "﷼"},
	{"PAB", "590", 2, "Panamanian balboa", "B/."},
	{"PEN", "604", 2, "Peruvian sol", "S/"},
	{"PGK", "598", 2, "Papua New Guinean kina", "K"},
	{"PHP", "608", 2, "Philippine peso", "₱"},
	{"PKR", "586", 2, "Pakistani rupee", "₨"},
	{"PLN", "985", 2, "Polish złoty", "zł"},
	{"PYG", "600", 0, "Paraguayan guaraní", "₲"},
	{"QAR", "634", 2, "Qatari riyal", "﷼"},
	{"RON", "946", 2, "Romanian leu", "lei"},
	{"RSD", "941", 2, "Serbian dinar", "дин."},
	{"RUB", "643", 2, "Russian ruble", "₽"},
	{"RWF", "646", 0, "Rwandan franc", "RF"},
	{"SAR", "682", 2, "Saudi riyal", "﷼"},
	{"SBD", "090", 2, "Solomon Islands dollar", "$"},
	{"SCR", "690", 2, "Seychelles rupee", "₨"},
	{"SDG", "938", 2, "Sudanese pound", "£"},
	{"SEK", "752", 2, "Swedish krona", "kr"},
	{"SGD", "702", 2, "Singapore dollar", "$"},
	{"SHP", "654", 2, "Saint Helena pound", "£"},
	{"SLE", "925", 2, "Sierra Leonean leone", "Le"},
	{"SOS", "706", 2, "Somali shilling", "S"},
	{"SRD", "968", 2, "Surinamese dollar", "$"},
	{"SSP", "728", 2, "South Sudanese pound", "£"},
	{"STN", "930", 2, "São Tomé and Príncipe dobra", "Db"},
	{"SVC", "222", 2, "Salvadoran colón", "₡"},
	{"SYP", "760", 2, "Syrian pound", "£"},
	{"SZL", "748", 2, "Swazi lilangeni", "E"},
	{"THB", "764", 2, "Thai baht", "฿"},
	{"TJS", "972", 2, "Tajikistani somoni", "SM"},
	{"TMT", "934", 2, "Turkmenistan manat", "T"},
	{"TND", "788", 3, "Tunisian dinar", "DT"},
	{"TOP", "776", 2, "Tongan paʻanga", "T$"},
	{"TRY", "949", 2, "Turkish lira", "₺"},
	{"TTD", "780", 2, "Trinidad and Tobago dollar", "TT$"},
	{"TWD", "901", 2, "New Taiwan dollar", "NT$"},
	{"TZS", "834", 2, "Tanzanian shilling", "TSh"},
	{"UAH", "980", 2, "Ukrainian hryvnia", "₴"},
	{"UGX", "800", 0, "Ugandan shilling", "USh"},
	{"USD", "840", 2, "United States dollar", "$"},
	{"USN", "997", 2, "United States dollar (next day)", "$"},
	{"UYI", "940", 0, "Uruguay Peso en Unidades Indexadas", genericSymbol},
	{"UYU", "858", 2, "Uruguayan peso", "$U"},
	{"UYW", "927", 4, "Unidad previsional", genericSymbol},
	{"UZS", "860", 2, "Uzbekistan sum", "сўм"},
	{"VED", "926", 2, "Venezuelan digital bolívar", "Bs.D"},
	{"VES", "928", 2, "Venezuelan sovereign bolívar", "Bs.S"},
	{"VND", "704", 0, "Vietnamese đồng", "₫"},
	{"VUV", "548", 0, "Vanuatu vatu", "VT"},
	{"WST", "882", 2, "Samoan tala", "WS$"},
	{"XAF", "950", 0, "CFA franc BEAC", "FCFA"},
	{"XAG", "961", NoMinorUnit, "Silver (one troy ounce)", genericSymbol},
	{"XAU", "959", NoMinorUnit, "Gold (one troy ounce)", genericSymbol},
	{"XBA", "955", NoMinorUnit, "European Composite Unit", genericSymbol},
	{"XBB", "956", NoMinorUnit, "European Monetary Unit", genericSymbol},
	{"XBC", "957", NoMinorUnit, "European Unit of Account 9", genericSymbol},
	{"XBD", "958", NoMinorUnit, "European Unit of Account 17", genericSymbol},
	{"XCD", "951", 2, "East Caribbean dollar", "$"},
	{"XDR", "960", NoMinorUnit, "Special drawing rights", "SDR"},
	{"XOF", "952", 0, "CFA franc BCEAO", "CFA"},
	{"XPD", "964", NoMinorUnit, "Palladium (one troy ounce)", genericSymbol},
	{"XPF", "953", 0, "CFP franc", "F"},
	{"XPT", "962", NoMinorUnit, "Platinum (one troy ounce)", genericSymbol},
	{"XSU", "994", NoMinorUnit, "SUCRE", genericSymbol},
	{"XTS", "963", NoMinorUnit, "Code reserved for testing", genericSymbol},
	{"XUA", "965", NoMinorUnit, "ADB Unit of Account", genericSymbol},
	{"XXX", "999", NoMinorUnit, "No currency", genericSymbol},
	{"YER", "886", 2, "Yemeni rial", "﷼"},
	{"ZAR", "710", 2, "South African rand", "R"},
	{"ZMW", "967", 2, "Zambian kwacha", "ZK"},
	{"ZWG", "924", 2, "Zimbabwe Gold", "ZiG"},

	// historical codes, withdrawn from ISO 4217 but still found in old records.
	{"EEK", "233", 2, "Estonian kroon", "kr"},
	{"HRK", "191", 2, "Croatian kuna", "kn"},
	{"LTL", "440", 2, "Lithuanian litas", "Lt"},
	{"LVL", "428", 2, "Latvian lats", "Ls"},
	{"MRO", "478", 2, "Mauritanian ouguiya (1973-2018)", "UM"},
	{"NLG", "528", 2, "Dutch guilder", "ƒ"},
	{"SLL", "694", 2, "Sierra Leonean leone (old)", "Le"},
	{"VEF", "937", 2, "Venezuelan bolívar fuerte", "Bs."},
	{"ZWL", "932", 2, "Zimbabwean dollar", "$"},
}
