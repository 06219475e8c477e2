package cards

// Recognized special slot ids and the row keys that feed them.
const (
	SlotTitle    = "title"
	SlotSubtitle = "subtitle"

	rowKeyName  = "name"
	rowKeyGroup = "group"
)

// ResolveText returns the display text for one text item on one card.
// The "title" slot shows the row's "name" value and the "subtitle" slot
// the row's "group" value; every other id shows the template's literal
// text regardless of row contents.
func ResolveText(item TextItem, row DataRow) string {
	switch item.ID {
	case SlotTitle:
		return row[rowKeyName]
	case SlotSubtitle:
		return row[rowKeyGroup]
	default:
		return item.Text
	}
}
