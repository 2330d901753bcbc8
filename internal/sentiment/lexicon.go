package sentiment

// devanagariLexicon holds common Hindi and Marathi comment vocabulary on
// VADER's valence scale (-4..4). Spelling variants with and without nukta
// collapse to the same key after NFC.
var devanagariLexicon = lexiconMap([]lexiconEntry{
	// positive
	{"अच्छा", 1.9},
	{"अच्छी", 1.9},
	{"अच्छे", 1.9},
	{"बढ़िया", 2.3},
	{"बढिया", 2.3},
	{"शानदार", 2.8},
	{"बेहतरीन", 2.9},
	{"लाजवाब", 2.7},
	{"कमाल", 2.5},
	{"जबरदस्त", 2.6},
	{"ज़बरदस्त", 2.6},
	{"सुंदर", 2.2},
	{"खूबसूरत", 2.4},
	{"प्यार", 2.6},
	{"प्यारा", 2.2},
	{"मज़ा", 1.8},
	{"मजा", 1.8},
	{"मस्त", 2.0},
	{"उत्तम", 2.5},
	{"धन्यवाद", 1.9},
	{"शुक्रिया", 1.9},
	{"खुश", 2.2},
	{"खुशी", 2.3},
	{"सही", 1.2},
	{"वाह", 2.1},
	{"छान", 2.0},
	{"आवडले", 2.0},
	{"आवडला", 2.0},
	{"सुरेख", 2.2},
	{"अप्रतिम", 2.8},

	// negative
	{"बुरा", -2.0},
	{"बुरी", -2.0},
	{"बुरे", -2.0},
	{"बेकार", -2.4},
	{"घटिया", -2.7},
	{"खराब", -2.1},
	{"ख़राब", -2.1},
	{"गंदा", -2.2},
	{"नफरत", -3.0},
	{"नफ़रत", -3.0},
	{"दुख", -2.0},
	{"दुःख", -2.0},
	{"उदास", -1.9},
	{"गुस्सा", -2.1},
	{"बकवास", -2.6},
	{"झूठ", -1.8},
	{"बोरिंग", -1.6},
	{"निराश", -2.2},
	{"फालतू", -2.0},
	{"शर्मनाक", -2.5},
	{"वाईट", -2.0},
	{"भिकार", -2.6},
	{"कंटाळवाणा", -1.7},
})

type lexiconEntry struct {
	word    string
	valence float64
}

func lexiconMap(entries []lexiconEntry) map[string]float64 {
	m := make(map[string]float64, len(entries))
	for _, e := range entries {
		m[e.word] = e.valence
	}
	return m
}
