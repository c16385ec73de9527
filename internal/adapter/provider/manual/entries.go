package manual

// builtin holds idiomatic and poetic vocabulary that general dictionaries
// miss, keyed by both Devanagari and Roman spellings.
var builtin = map[string]Entry{
	// core emotional vocabulary
	"दिल": {Meaning: "heart, mind, soul", PartOfSpeech: "noun"},
	"प्रेम": {Meaning: "love, affection", PartOfSpeech: "noun"},
	"आँख": {Meaning: "eye", PartOfSpeech: "noun"},
	"रात": {Meaning: "night", PartOfSpeech: "noun"},
	"सुबह": {Meaning: "morning", PartOfSpeech: "noun"},
	"ख़्वाब": {Meaning: "dream", PartOfSpeech: "noun"},
	"याद": {Meaning: "memory, remembrance", PartOfSpeech: "noun"},
	"दर्द": {Meaning: "pain, ache", PartOfSpeech: "noun"},
	"ख़ुशी": {Meaning: "happiness, joy", PartOfSpeech: "noun"},
	"ग़म": {Meaning: "sorrow, grief", PartOfSpeech: "noun"},

	// words from the published poems
	"दुनियां": {Meaning: "world, universe", PartOfSpeech: "noun"},
	"बातें": {Meaning: "talks, conversations, things", PartOfSpeech: "noun"},
	"सपने": {Meaning: "dreams", PartOfSpeech: "noun"},
	"रातें": {Meaning: "nights", PartOfSpeech: "noun"},
	"गुज़री": {Meaning: "passed, went by", PartOfSpeech: "verb"},
	"गुज़रे": {Meaning: "passed, went by", PartOfSpeech: "verb"},
	"दिन": {Meaning: "day", PartOfSpeech: "noun"},
	"पल": {Meaning: "moment, instant", PartOfSpeech: "noun"},
	"खुशियों": {Meaning: "happiness, joys", PartOfSpeech: "noun"},
	"कलियाँ": {Meaning: "buds, young flowers", PartOfSpeech: "noun"},
	"फूल": {Meaning: "flower", PartOfSpeech: "noun"},
	"कांटे": {Meaning: "thorns", PartOfSpeech: "noun"},
	"जीवन": {Meaning: "life", PartOfSpeech: "noun"},
	"पथ": {Meaning: "path, way", PartOfSpeech: "noun"},
	"यादें": {Meaning: "memories", PartOfSpeech: "noun"},
	"हार": {Meaning: "garland, necklace; defeat", PartOfSpeech: "noun"},
	"हालातों": {Meaning: "conditions, circumstances", PartOfSpeech: "noun"},
	"पलकें": {Meaning: "eyelids", PartOfSpeech: "noun"},
	"बूंदें": {Meaning: "drops (of rain)", PartOfSpeech: "noun"},
	"बरसातें": {Meaning: "rainy seasons", PartOfSpeech: "noun"},
	"घर": {Meaning: "home, house", PartOfSpeech: "noun"},
	"माँ": {Meaning: "mother", PartOfSpeech: "noun"},
	"बहन": {Meaning: "sister", PartOfSpeech: "noun"},
	"आवाज़": {Meaning: "voice, sound", PartOfSpeech: "noun"},
	"नींद": {Meaning: "sleep", PartOfSpeech: "noun"},
	"मेरी": {Meaning: "my, mine (feminine)", PartOfSpeech: "pronoun"},
	"मेरा": {Meaning: "my, mine (masculine)", PartOfSpeech: "pronoun"},
	"तेरी": {Meaning: "your, yours (feminine)", PartOfSpeech: "pronoun"},
	"तेरा": {Meaning: "your, yours (masculine)", PartOfSpeech: "pronoun"},
	"कैसा": {Meaning: "how, what kind of", PartOfSpeech: "adverb"},
	"कैसी": {Meaning: "how, what kind of (feminine)", PartOfSpeech: "adverb"},
	"रहा": {Meaning: "was, remained", PartOfSpeech: "verb"},
	"आज": {Meaning: "today", PartOfSpeech: "adverb"},
	"ढल": {Meaning: "slope, decline", PartOfSpeech: "verb"},
	"जाएगी": {Meaning: "will go (feminine)", PartOfSpeech: "verb"},
	"सौ": {Meaning: "hundred", PartOfSpeech: "number"},
	"कुछ": {Meaning: "some, something", PartOfSpeech: "pronoun"},
	"और": {Meaning: "and, more", PartOfSpeech: "conjunction"},
	"भी": {Meaning: "also, too", PartOfSpeech: "particle"},
	"में": {Meaning: "in, within", PartOfSpeech: "postposition"},
	"पर": {Meaning: "on, at, but", PartOfSpeech: "postposition"},
	"से": {Meaning: "from, with, by", PartOfSpeech: "postposition"},
	"को": {Meaning: "to, for (object marker)", PartOfSpeech: "postposition"},
	"का": {Meaning: "of, belonging to (masculine)", PartOfSpeech: "postposition"},
	"की": {Meaning: "of, belonging to (feminine)", PartOfSpeech: "postposition"},
	"के": {Meaning: "of, belonging to (oblique)", PartOfSpeech: "postposition"},
	"हैं": {Meaning: "are, is (plural)", PartOfSpeech: "verb"},
	"है": {Meaning: "is, are", PartOfSpeech: "verb"},
	"था": {Meaning: "was (masculine)", PartOfSpeech: "verb"},
	"थी": {Meaning: "was (feminine)", PartOfSpeech: "verb"},
	"थे": {Meaning: "were (plural)", PartOfSpeech: "verb"},
	"हम": {Meaning: "we, us", PartOfSpeech: "pronoun"},
	"तुम": {Meaning: "you", PartOfSpeech: "pronoun"},
	"वो": {Meaning: "that, he/she/it", PartOfSpeech: "pronoun"},
	"यह": {Meaning: "this", PartOfSpeech: "pronoun"},
	"ये": {Meaning: "these", PartOfSpeech: "pronoun"},
	"जो": {Meaning: "who, which, that", PartOfSpeech: "pronoun"},
	"बात": {Meaning: "matter, thing, talk", PartOfSpeech: "noun"},
	"क्या": {Meaning: "what", PartOfSpeech: "pronoun"},
	"कौन": {Meaning: "who", PartOfSpeech: "pronoun"},
	"कहाँ": {Meaning: "where", PartOfSpeech: "adverb"},
	"कब": {Meaning: "when", PartOfSpeech: "adverb"},
	"क्यों": {Meaning: "why", PartOfSpeech: "adverb"},
	"अब": {Meaning: "now", PartOfSpeech: "adverb"},
	"तो": {Meaning: "then, so", PartOfSpeech: "particle"},
	"फिर": {Meaning: "again, then", PartOfSpeech: "adverb"},
	"जगाए": {Meaning: "wake up, awaken", PartOfSpeech: "verb"},
	"ना": {Meaning: "no, not", PartOfSpeech: "particle"},
	"नहीं": {Meaning: "no, not", PartOfSpeech: "particle"},
	"कोई": {Meaning: "someone, anyone, any", PartOfSpeech: "pronoun"},


	// romanized spellings
	"ishq": {Meaning: "passionate love, divine love", PartOfSpeech: "noun"},
	"mohabbat": {Meaning: "love, affection", PartOfSpeech: "noun"},
	"dil": {Meaning: "heart, mind, soul", PartOfSpeech: "noun"},
	"raat": {Meaning: "night", PartOfSpeech: "noun"},
	"subah": {Meaning: "morning", PartOfSpeech: "noun"},
	"khwab": {Meaning: "dream", PartOfSpeech: "noun"},
	"yaad": {Meaning: "memory, remembrance", PartOfSpeech: "noun"},
	"dard": {Meaning: "pain, ache", PartOfSpeech: "noun"},
	"khushi": {Meaning: "happiness, joy", PartOfSpeech: "noun"},
	"gham": {Meaning: "sorrow, grief", PartOfSpeech: "noun"},
	"duniyaan": {Meaning: "world, universe", PartOfSpeech: "noun"},
	"baaten": {Meaning: "talks, conversations, things", PartOfSpeech: "noun"},
	"sapane": {Meaning: "dreams", PartOfSpeech: "noun"},
	"raaten": {Meaning: "nights", PartOfSpeech: "noun"},
	"ghar": {Meaning: "home, house", PartOfSpeech: "noun"},
	"maa": {Meaning: "mother", PartOfSpeech: "noun"},
	"behan": {Meaning: "sister", PartOfSpeech: "noun"},
	"aawaz": {Meaning: "voice, sound", PartOfSpeech: "noun"},
	"neend": {Meaning: "sleep", PartOfSpeech: "noun"},
	"meri": {Meaning: "my, mine (feminine)", PartOfSpeech: "pronoun"},
	"mera": {Meaning: "my, mine (masculine)", PartOfSpeech: "pronoun"},
	"teri": {Meaning: "your, yours (feminine)", PartOfSpeech: "pronoun"},
	"tera": {Meaning: "your, yours (masculine)", PartOfSpeech: "pronoun"},
	"kaisa": {Meaning: "how, what kind of", PartOfSpeech: "adverb"},
	"kaisi": {Meaning: "how, what kind of (feminine)", PartOfSpeech: "adverb"},
	"din": {Meaning: "day", PartOfSpeech: "noun"},
	"aaj": {Meaning: "today", PartOfSpeech: "adverb"},
	"sau": {Meaning: "hundred", PartOfSpeech: "number"},
	"kuch": {Meaning: "some, something", PartOfSpeech: "pronoun"},
	"aur": {Meaning: "and, more", PartOfSpeech: "conjunction"},
	"bhi": {Meaning: "also, too", PartOfSpeech: "particle"},
	"men": {Meaning: "in, within", PartOfSpeech: "postposition"},
	"par": {Meaning: "on, at, but", PartOfSpeech: "postposition"},
	"se": {Meaning: "from, with, by", PartOfSpeech: "postposition"},
	"ko": {Meaning: "to, for (object marker)", PartOfSpeech: "postposition"},
	"ka": {Meaning: "of, belonging to (masculine)", PartOfSpeech: "postposition"},
	"ki": {Meaning: "of, belonging to (feminine)", PartOfSpeech: "postposition"},
	"ke": {Meaning: "of, belonging to (oblique)", PartOfSpeech: "postposition"},
	"hain": {Meaning: "are, is (plural)", PartOfSpeech: "verb"},
	"hai": {Meaning: "is, are", PartOfSpeech: "verb"},
	"tha": {Meaning: "was (masculine)", PartOfSpeech: "verb"},
	"thi": {Meaning: "was (feminine)", PartOfSpeech: "verb"},
	"the": {Meaning: "were (plural)", PartOfSpeech: "verb"},
	"ham": {Meaning: "we, us", PartOfSpeech: "pronoun"},
	"tum": {Meaning: "you", PartOfSpeech: "pronoun"},
	"vo": {Meaning: "that, he/she/it", PartOfSpeech: "pronoun"},
	"yah": {Meaning: "this", PartOfSpeech: "pronoun"},
	"ye": {Meaning: "these", PartOfSpeech: "pronoun"},
	"jo": {Meaning: "who, which, that", PartOfSpeech: "pronoun"},
	"baat": {Meaning: "matter, thing, talk", PartOfSpeech: "noun"},
	"kya": {Meaning: "what", PartOfSpeech: "pronoun"},
	"kaun": {Meaning: "who", PartOfSpeech: "pronoun"},
	"kahan": {Meaning: "where", PartOfSpeech: "adverb"},
	"kab": {Meaning: "when", PartOfSpeech: "adverb"},
	"kyon": {Meaning: "why", PartOfSpeech: "adverb"},
	"ab": {Meaning: "now", PartOfSpeech: "adverb"},
	"to": {Meaning: "then, so", PartOfSpeech: "particle"},
	"phir": {Meaning: "again, then", PartOfSpeech: "adverb"},
	"na": {Meaning: "no, not", PartOfSpeech: "particle"},
	"nahin": {Meaning: "no, not", PartOfSpeech: "particle"},
	"koi": {Meaning: "someone, anyone, any", PartOfSpeech: "pronoun"},
}
