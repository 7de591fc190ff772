package domain

// Static phrase lists shipped with the binary, used only when the network
// fetch fails outright. A successful fetch that yields zero rows is "no work
// available", never a fallback.

var fallbackKirundi = []string{
	"Muraho",
	"Amakuru yawe?",
	"Ndagukunda cane",
	"Uraho neza",
	"Ndashaka amazi",
	"Ejo ni umusi mukuru",
	"Twese turi kumwe",
	"Urakoze cane",
	"Ndaje ejo mu gitondo",
	"Ikirundi ni ururimi rwiza",
}

var fallbackFrench = []string{
	"Bonjour, comment allez-vous ?",
	"Je voudrais de l'eau",
	"Merci beaucoup pour votre aide",
	"Où se trouve le marché ?",
	"Il pleut depuis ce matin",
	"Nous sommes tous ensemble",
	"Je viendrai demain matin",
	"C'est une belle journée",
	"Quel est ton nom ?",
	"La récolte sera bonne cette année",
}

// Fallback returns a copy of the embedded list for a direction; callers
// consume it freely.
func Fallback(direction Direction) []string {
	var src []string
	switch direction {
	case KirundiToFrench:
		src = fallbackKirundi
	case FrenchToKirundi:
		src = fallbackFrench
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
