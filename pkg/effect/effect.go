// Package effect describes the notifications produced by luggage operations.
// The core only emits them; how they are shown is up to the Sink.
package effect

import "fmt"

// Kind tags an Effect.
type Kind int

const (
	// None means the operation produced nothing worth telling the user.
	None Kind = iota
	AddedItem
	IncreasedQuantity
	RemovedItem
	Merged
	AddedBaggage
	DeletedBaggage
	ClearedAll
	Exported
	Imported
	Error
)

var kindNames = map[Kind]string{
	None:              "none",
	AddedItem:         "added-item",
	IncreasedQuantity: "increased-quantity",
	RemovedItem:       "removed-item",
	Merged:            "merged",
	AddedBaggage:      "added-baggage",
	DeletedBaggage:    "deleted-baggage",
	ClearedAll:        "cleared-all",
	Exported:          "exported",
	Imported:          "imported",
	Error:             "error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Effect is a tagged notification. Only the payload fields relevant to Kind
// are set.
type Effect struct {
	Kind Kind

	Name        string // item name
	Icon        string // item icon key
	Quantity    int    // merged quantity
	BaggageType string
	Nickname    string
	Path        string // export destination
	Rows        int
	Baggages    int
	Items       int
	Err         error
}

// Constructors keep call sites short and payloads consistent.

func NewAddedItem(name, icon string) Effect {
	return Effect{Kind: AddedItem, Name: name, Icon: icon}
}

func NewIncreasedQuantity(name, icon string) Effect {
	return Effect{Kind: IncreasedQuantity, Name: name, Icon: icon}
}

func NewRemovedItem(name string) Effect {
	return Effect{Kind: RemovedItem, Name: name}
}

func NewMerged(name string, quantity int) Effect {
	return Effect{Kind: Merged, Name: name, Quantity: quantity}
}

func NewAddedBaggage(baggageType string) Effect {
	return Effect{Kind: AddedBaggage, BaggageType: baggageType}
}

func NewDeletedBaggage(nickname string) Effect {
	return Effect{Kind: DeletedBaggage, Nickname: nickname}
}

func NewClearedAll() Effect {
	return Effect{Kind: ClearedAll}
}

func NewExported(path string, rows int) Effect {
	return Effect{Kind: Exported, Path: path, Rows: rows}
}

func NewImported(baggages, items int) Effect {
	return Effect{Kind: Imported, Baggages: baggages, Items: items}
}

func NewError(err error) Effect {
	return Effect{Kind: Error, Err: err}
}

// Message renders the effect as a short sentence.
func (e Effect) Message() string {
	switch e.Kind {
	case AddedItem:
		return fmt.Sprintf("Added item: '%s'", e.Name)
	case IncreasedQuantity:
		return fmt.Sprintf("Increased quantity of '%s'", e.Name)
	case RemovedItem:
		return fmt.Sprintf("Removed item: '%s'", e.Name)
	case Merged:
		return fmt.Sprintf("Merged '%s' (now %d)", e.Name, e.Quantity)
	case AddedBaggage:
		return "Added new baggage: " + labelOf(e.BaggageType)
	case DeletedBaggage:
		if e.Nickname != "" {
			return "Baggage deleted: " + e.Nickname
		}
		return "Baggage deleted"
	case ClearedAll:
		return "All luggage data cleared"
	case Exported:
		return "CSV exported successfully"
	case Imported:
		return "CSV imported successfully"
	case Error:
		if e.Err == nil {
			return "Something went wrong"
		}
		return e.Err.Error()
	default:
		return ""
	}
}

func labelOf(t string) string {
	for i := 0; i < len(t); i++ {
		if t[i] == '-' {
			return t[:i] + " " + t[i+1:]
		}
	}
	return t
}

// IsError reports whether e is an Error effect.
func (e Effect) IsError() bool { return e.Kind == Error }
