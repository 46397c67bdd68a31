package usecases

// Output locales. Anything unrecognized renders in French.
const (
	LocaleFrench  = "fr"
	LocaleKirundi = "rn"
)

// NormalizeLocale maps a client language tag to a supported output locale.
// "kirundi" is a legacy alias kept for older clients.
func NormalizeLocale(language string) string {
	if language == LocaleKirundi || language == "kirundi" {
		return LocaleKirundi
	}
	return LocaleFrench
}

type phraseKey string

const (
	phrasePriceFound phraseKey = "price_found"
	phrasePriceNone  phraseKey = "price_none"
	phrasePriceAsk   phraseKey = "price_ask"
	phrasePriceError phraseKey = "price_error"
	phraseAvailFound phraseKey = "availability_found"
	phraseAvailNone  phraseKey = "availability_none"
	phraseAvailAsk   phraseKey = "availability_ask"
	phraseAvailError phraseKey = "availability_error"
	phraseWeather    phraseKey = "weather"
	phraseGreeting   phraseKey = "greeting"
	phraseFallback   phraseKey = "fallback"
)

// phrases holds every templated sentence the assistant can produce, per key
// and locale. Loaded once at process start; the first entry of a list is the
// one rendered.
var phrases = map[phraseKey]map[string][]string{
	phrasePriceFound: {
		LocaleFrench:  {"Le prix de %s à %s est de %.0f FBu/kg."},
		LocaleKirundi: {"Igiciro ca %s kuri %s ni %.0f FBu/kg."},
	},
	phrasePriceNone: {
		LocaleFrench:  {"Désolé, je n'ai pas de prix récent pour %s."},
		LocaleKirundi: {"Mbabarira, nta giciro gishasha mfise ca %s."},
	},
	phrasePriceAsk: {
		LocaleFrench:  {"De quel produit voulez-vous connaître le prix ?"},
		LocaleKirundi: {"Ni igiterwa ikihe ushaka kumenya igiciro?"},
	},
	phrasePriceError: {
		LocaleFrench:  {"Je ne peux pas vérifier les prix pour le moment. Réessayez plus tard."},
		LocaleKirundi: {"Sinshobora kuraba ibiciro ubu. Gerageza kandi mu kanya."},
	},
	phraseAvailFound: {
		LocaleFrench:  {"Oui, %d offres de %s sont disponibles. Consultez le marché pour les détails."},
		LocaleKirundi: {"Ego, hari amatangazo %d ya %s ariho. Raba ku isoko kugira urabe ibisobanuro."},
	},
	phraseAvailNone: {
		LocaleFrench:  {"Désolé, %s n'est pas disponible pour le moment."},
		LocaleKirundi: {"Mbabarira, %s ntiboneka ubu."},
	},
	phraseAvailAsk: {
		LocaleFrench:  {"Que voulez-vous acheter ?"},
		LocaleKirundi: {"Ushaka kugura iki?"},
	},
	phraseAvailError: {
		LocaleFrench:  {"Je ne peux pas vérifier la disponibilité pour le moment. Réessayez plus tard."},
		LocaleKirundi: {"Sinshobora kuraba ibiboneka ubu. Gerageza kandi mu kanya."},
	},
	phraseWeather: {
		LocaleFrench:  {"La météo pour demain sera ensoleillée avec une température de 25°C."},
		LocaleKirundi: {"Ikirere c'ejo kizoba ciza kandi ubushyuhe buzoba 25°C."},
	},
	phraseGreeting: {
		LocaleFrench:  {"Bonjour ! Je suis votre assistant agricole. Posez-moi vos questions sur les prix et la disponibilité des produits."},
		LocaleKirundi: {"Bwakeye! Ndi umufasha wawe mu buhinzi. Mbaza ku biciro no ku vyoboneka ku isoko."},
	},
	phraseFallback: {
		LocaleFrench:  {"Pouvez-vous préciser votre question ? Je peux vous aider avec les prix et la disponibilité des produits."},
		LocaleKirundi: {"Urashobora gusobanura ikibazo cawe? Ndashobora kugufasha ku biciro no ku vyoboneka ku isoko."},
	},
}

func phrase(key phraseKey, locale string) string {
	byLocale, ok := phrases[key]
	if !ok {
		return ""
	}
	list, ok := byLocale[locale]
	if !ok || len(list) == 0 {
		list = byLocale[LocaleFrench]
	}
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
