package input

// Choice is one discrete rating button
type Choice struct {
	Value int
	Label string
	Emoji string
}

// Palette is the fixed set of rating buttons, lowest first
var Palette = []Choice{
	{Value: 20, Label: "TF BRO", Emoji: "💀"},
	{Value: 40, Label: "Perhaps", Emoji: "🤨"},
	{Value: 60, Label: "It's alright", Emoji: "🫡"},
	{Value: 80, Label: "Hell yeah", Emoji: "🔥"},
	{Value: 100, Label: "LFG!!!", Emoji: "🤑"},
}

// ChoiceForKey maps the number keys "1".."5" onto the palette
func ChoiceForKey(k string) (Choice, bool) {
	if len(k) != 1 || k[0] < '1' || int(k[0]-'1') >= len(Palette) {
		return Choice{}, false
	}
	return Palette[k[0]-'1'], true
}
