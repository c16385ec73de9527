package glossary

// builtin is the glossary shipped with the published poems. Headwords are
// Devanagari; Roman spellings follow the romanized poem text.
var builtin = map[string]Translation{
	// poem 1
	"संजोये": {Meaning: "cherished", Roman: "sanjoye"},
	"पिरोए": {Meaning: "strung together", Roman: "piroe"},
	"हालातों": {Meaning: "situations", Roman: "haalaaton"},

	// poem 2
	"तना-तनी": {Meaning: "tension, struggle", Roman: "tanaa-tanii"},
	"दुहराये": {Meaning: "repeat", Roman: "duhraaye"},
	"सागर अथाह": {Meaning: "endless ocean", Roman: "saagar athaah"},
	"निर्झर": {Meaning: "spring, waterfall", Roman: "nirjhar"},
	"निष्प्राण": {Meaning: "lifeless, without spirit", Roman: "nishpraaN"},
	"उजियाले": {Meaning: "light, brightness", Roman: "ujiyaale"},
	"ज़ंजीरें": {Meaning: "chains", Roman: "zanjiiren"},

	// poem 3
	"सब्र": {Meaning: "patience", Roman: "sabr"},
	"हर्फ़": {Meaning: "letter, word", Roman: "harf"},
	"गूंजते": {Meaning: "echoing", Roman: "goonjate"},
	"बेशक": {Meaning: "indeed, no doubt", Roman: "beshak"},
	"चली पुरवाई": {Meaning: "gentle breeze of the east (associated with memories)", Roman: "chalii puravaaii"},
	"धुँध": {Meaning: "fog, haze", Roman: "dhundh"},
	"लम्हा": {Meaning: "moment", Roman: "lamhaa"},
	"फ़ासले": {Meaning: "distances", Roman: "faasale"},
	"दरम्यान": {Meaning: "between", Roman: "daramyaan"},

	// poem 4
	"ख़्वाब": {Meaning: "dream", Roman: "khvaab"},
	"चैन": {Meaning: "peace, tranquility", Roman: "chain"},
	"पहर": {Meaning: "period of time, watch (of day/night)", Roman: "pahar"},
	"दौर-ए-तन्हा": {Meaning: "era/period of loneliness", Roman: "daur-e-tanhaa"},
	"हमबशर": {Meaning: "fellow human being, companion", Roman: "hambashar"},
	"मुज़्तर": {Meaning: "restless, distressed", Roman: "muzstar"},
	"शज़र": {Meaning: "tree", Roman: "shazar"},
	"चराग़-ए-उम्मीद": {Meaning: "lamp of hope", Roman: "charaag-e-ummiid"},
	"आँधियों": {Meaning: "storms", Roman: "aandhiyon"},
	"ख्वाहिशों": {Meaning: "desires", Roman: "khvaahishon"},
	"जान-ओ-दौलत": {Meaning: "life and wealth", Roman: "jaan-o-daulat"},
	"कूचा": {Meaning: "street, lane", Roman: "koochaa"},
	"रहगुज़र": {Meaning: "path, way, road", Roman: "rahaguzar"},
	"जानिब": {Meaning: "towards, in the direction of", Roman: "jaanib"},

	// poem 5
	"चौखट": {Meaning: "threshold", Roman: "chaukhat"},
	"गुज़री उम्र": {Meaning: "passed age, past life", Roman: "guzrii umr"},
	"क़िस्से": {Meaning: "stories", Roman: "qisse"},
	"चंद बातों": {Meaning: "a few matters/conversations", Roman: "chand baaton"},
	"टीस": {Meaning: "pang, ache", Roman: "tiis"},

	// poem 6
	"जगाए": {Meaning: "awaken", Roman: "jagaae"},
	"खामोशियाँ": {Meaning: "silences", Roman: "khaamoshiyaan"},
	"सुकून": {Meaning: "peace, tranquility", Roman: "sukoon"},
	"ज़ख़्म": {Meaning: "wounds", Roman: "zakhm"},
	"ज़हन": {Meaning: "mind", Roman: "zahan"},
	"निशां": {Meaning: "marks/scars", Roman: "nishaan"},
	"गुज़श्ता": {Meaning: "past", Roman: "guzashtaa"},
	"मुक़द्दर": {Meaning: "destiny/fate", Roman: "muqaddar"},
	"कार-ज़ार-ए-ज़िश्त": {Meaning: "harsh/ugly battlefield of life", Roman: "kaar-zaar-e-zisht"},
	"शम'-ए-उम्मीद": {Meaning: "lamp of hope", Roman: "sham'-e-ummiid"},
	"इमरोज़": {Meaning: "today", Roman: "imroz"},
	"बुझाए": {Meaning: "extinguish", Roman: "buzhaae"},

	// poem 7
	"ढल जाएगी": {Meaning: "will pass, will set", Roman: "Dhal jaaegii"},
	"गुमनाम": {Meaning: "unnamed, unknown", Roman: "gumanaam"},
	"दस्तक": {Meaning: "knock", Roman: "dastak"},
	"मचल जाएगी": {Meaning: "will stir, become restless", Roman: "machal jaaegii"},
	"वीरानी": {Meaning: "desolation, emptiness", Roman: "viiraanii"},
	"रवानी": {Meaning: "flow", Roman: "ravaanii"},
	"बिखर जाएँगे": {Meaning: "will scatter", Roman: "bikhar jaaenge"},
	"तक़दीर": {Meaning: "destiny, fate", Roman: "taqdiir"},

	// poem 8
	"कसक": {Meaning: "pang, ache, yearning", Roman: "kasak"},
	"आहट": {Meaning: "sound of footsteps, presence", Roman: "aahat"},
	"शम्मा": {Meaning: "lamp", Roman: "shammaa"},
	"तनहाइयों": {Meaning: "loneliness", Roman: "tanhaaiyon"},
	"आग़ाज़": {Meaning: "beginning", Roman: "aagaaz"},

	// poem 9
	"परस्पर": {Meaning: "mutually, with each other", Roman: "paraspar"},
	"चंद": {Meaning: "a few", Roman: "chand"},
	"सिरहाने": {Meaning: "by the head (bedside)", Roman: "sirahaane"},
	"लॉ": {Meaning: "flame (of a lamp/desire)", Roman: "lau"},

	// poem 10
	"ख़याल": {Meaning: "thought", Roman: "khayaal"},
	"मलाल": {Meaning: "regret", Roman: "malaal"},
	"सवाल": {Meaning: "question", Roman: "savaal"},
	"चाक-ए-दिल": {Meaning: "wounded/torn heart", Roman: "chaak-e-dil"},
	"जमाल": {Meaning: "beauty", Roman: "jamaal"},
	"अल्फ़ाज़": {Meaning: "words", Roman: "alfaaz"},
	"एहसास": {Meaning: "feeling, sense", Roman: "ehasaas"},
	"देरीना": {Meaning: "long-held, old", Roman: "deriina"},
	"सहरा": {Meaning: "desert, waste, wilderness", Roman: "sahraa"},

	// poem 11
	"फ़ज़ा": {Meaning: "ambience", Roman: "fazaa"},
	"दरख़्तों": {Meaning: "trees", Roman: "daraKto.n"},
	"सिहरता": {Meaning: "shivered", Roman: "siharta"},
	"नक़्श-ए-क़दम": {Meaning: "footprints/footsteps", Roman: "naqsh-e-qadam"},
	"मंज़र": {Meaning: "spectacle, a scene, view", Roman: "ma.nzar"},
	"साहिल": {Meaning: "the sea-shore, beach, coast", Roman: "saahil"},
	"फ़क़त": {Meaning: "merely, simply, only", Roman: "faqat"},

	// poem 12
	"तसव्वुर": {Meaning: "imagination, fancy", Roman: "tasavvur"},

	// poem 16
	"तह": {Meaning: "layer, fold", Roman: "teh"},
	"रंजिशें": {Meaning: "grievances, resentments", Roman: "ranjishein"},

	// poem 17
	"बा-कमाल": {Meaning: "wonderful, excellent", Roman: "ba-kamaal"},
	"हिज्र": {Meaning: "separation (from a lover)", Roman: "hijr"},
	"मयस्सर": {Meaning: "available, obtainable", Roman: "mayassar"},
	"बा'द-ए-विसाल": {Meaning: "after the union", Roman: "ba'ad-e-visaal"},
	"रिवायत": {Meaning: "tradition, custom", Roman: "riwaayat"},
	"उसूलों": {Meaning: "principles", Roman: "usoolon"},
	"पाएमाल": {Meaning: "trampled, ruined", Roman: "paayemaal"},
	"ताउम्र": {Meaning: "lifelong", Roman: "ta-umr"},
	"मिसाल": {Meaning: "example", Roman: "misaal"},
	"नक़्स-ए-कमाल": {Meaning: "flaw in perfection", Roman: "naqs-e-kamaal"},
	"पुर-अमन": {Meaning: "peaceful", Roman: "pur-aman"},
	"शहर-ए-वबाल": {Meaning: "city of calamity/affliction", Roman: "sheher-e-wabaal"},
	"वक़्त-ए-रुख़सत": {Meaning: "time of departure", Roman: "waqt-e-rukhsat"},
	"बयाँ": {Meaning: "narration, description", Roman: "bayaan"},
	"अर्ज़-ए-हाल": {Meaning: "statement of one's condition", Roman: "arz-e-haal"},
	"इत्मीनान-ए-दिल": {Meaning: "peace of heart, contentment", Roman: "itminaan-e-dil"},
	"बे-मलाल": {Meaning: "without regret", Roman: "be-malaal"},
}
