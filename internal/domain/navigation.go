package domain

// IntentKind enumerates the abstract navigation targets the core emits.
// The routing layer resolves them to concrete views.
type IntentKind string

const (
	IntentCatalog IntentKind = "catalog"
	IntentDetail  IntentKind = "detail"
	IntentEdit    IntentKind = "edit"
)

type NavigationIntent struct {
	Kind     IntentKind `json:"kind"`
	ItemType ItemType   `json:"itemType,omitempty"`
	ID       string     `json:"id,omitempty"`
}

func GoToCatalog() NavigationIntent {
	return NavigationIntent{Kind: IntentCatalog}
}

func GoToDetail(t ItemType, id string) NavigationIntent {
	return NavigationIntent{Kind: IntentDetail, ItemType: t, ID: id}
}

func GoToEdit(t ItemType, id string) NavigationIntent {
	return NavigationIntent{Kind: IntentEdit, ItemType: t, ID: id}
}
